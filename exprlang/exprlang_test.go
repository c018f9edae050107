package exprlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/english/value"
)

type fakeResolver struct {
	vars  map[string]value.Value
	calls map[string]func(args []value.Value) (value.Value, error)
}

func (f *fakeResolver) Lookup(name string) (value.Value, bool) {
	v, ok := f.vars[name]
	return v, ok
}

func (f *fakeResolver) Call(name string, args []value.Value, line int) (value.Value, error) {
	fn, ok := f.calls[name]
	if !ok {
		return nil, errAt(line, UndefinedName, "undefined function: %s", name)
	}
	return fn(args)
}

func newResolver() *fakeResolver {
	return &fakeResolver{
		vars:  map[string]value.Value{},
		calls: map[string]func(args []value.Value) (value.Value, error){},
	}
}

func evalStr(t *testing.T, src string, r *fakeResolver) value.Value {
	t.Helper()
	v, err := EvalText(src, 1, r)
	require.NoError(t, err, "src=%q", src)
	return v
}

func TestEval_Arithmetic(t *testing.T) {
	r := newResolver()
	v := evalStr(t, "1 + 2 * 3", r)
	assert.Equal(t, value.Integer{Value: 7}, v)

	v = evalStr(t, "(1 + 2) * 3", r)
	assert.Equal(t, value.Integer{Value: 9}, v)

	v = evalStr(t, "7 % 2", r)
	assert.Equal(t, value.Integer{Value: 1}, v)
}

func TestEval_StringConcat(t *testing.T) {
	r := newResolver()
	v := evalStr(t, `"hi " + "there"`, r)
	assert.Equal(t, value.String{Value: "hi there"}, v)
}

func TestEval_VariableLookup(t *testing.T) {
	r := newResolver()
	r.vars["x"] = value.Integer{Value: 10}
	v := evalStr(t, "x + 5", r)
	assert.Equal(t, value.Integer{Value: 15}, v)
}

func TestEval_UndefinedNameError(t *testing.T) {
	r := newResolver()
	_, err := EvalText("missing", 3, r)
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, UndefinedName, re.Kind)
	assert.Equal(t, 3, re.Line)
}

func TestEval_ConditionPhrasings(t *testing.T) {
	r := newResolver()
	r.vars["score"] = value.Integer{Value: 85}
	cases := map[string]bool{
		"score is at least 80":                       true,
		"score is at most 80":                        false,
		"score is greater than 90":                   false,
		"score is less than 90":                      true,
		"score equals 85":                            true,
		"score is not 85":                            false,
		"score is not equal to 85":                   false,
		"score is greater than or equal to 85":        true,
		"score is less than or equal to 85":           true,
	}
	for src, want := range cases {
		v := evalStr(t, src, r)
		assert.Equal(t, value.Bool{Value: want}, v, "src=%q", src)
	}
}

func TestEval_LogicalAndOr(t *testing.T) {
	r := newResolver()
	r.vars["a"] = value.Bool{Value: true}
	r.vars["b"] = value.Bool{Value: false}
	assert.Equal(t, value.Bool{Value: false}, evalStr(t, "a and b", r))
	assert.Equal(t, value.Bool{Value: true}, evalStr(t, "a or b", r))
	assert.Equal(t, value.Bool{Value: false}, evalStr(t, "not a", r))
}

func TestEval_ListLiteralAndIndexing(t *testing.T) {
	r := newResolver()
	v := evalStr(t, "[1, 2, 3][1]", r)
	assert.Equal(t, value.Integer{Value: 2}, v)
}

func TestEval_Slicing(t *testing.T) {
	r := newResolver()
	v := evalStr(t, `"hello"[1:3]`, r)
	assert.Equal(t, value.String{Value: "el"}, v)
}

func TestEval_BadIndexOutOfRange(t *testing.T) {
	r := newResolver()
	_, err := EvalText("[1,2,3][9]", 7, r)
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, BadIndex, re.Kind)
	assert.Equal(t, 7, re.Line)
}

func TestEval_Contains(t *testing.T) {
	r := newResolver()
	assert.Equal(t, value.Bool{Value: true}, evalStr(t, `"hello" contains "ell"`, r))
	assert.Equal(t, value.Bool{Value: true}, evalStr(t, `"hello" does not contain "xyz"`, r))
}

func TestEval_CallExpressionBothForms(t *testing.T) {
	r := newResolver()
	r.calls["square"] = func(args []value.Value) (value.Value, error) {
		n := args[0].(value.Integer).Value
		return value.Integer{Value: n * n}, nil
	}
	assert.Equal(t, value.Integer{Value: 144}, evalStr(t, "square(12)", r))
	assert.Equal(t, value.Integer{Value: 144}, evalStr(t, "call square with 12", r))
}

func TestEval_DivisionByZero(t *testing.T) {
	r := newResolver()
	_, err := EvalText("1 / 0", 9, r)
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, DivisionByZero, re.Kind)
	assert.Equal(t, 9, re.Line)
}

func TestEval_RandomBetweenShortcut(t *testing.T) {
	r := newResolver()
	r.calls["random_int"] = func(args []value.Value) (value.Value, error) {
		lo := args[0].(value.Integer).Value
		hi := args[1].(value.Integer).Value
		return value.Integer{Value: lo + hi}, nil
	}
	v := evalStr(t, "random between 1 and 10", r)
	assert.Equal(t, value.Integer{Value: 11}, v)
}

func TestEval_RandomChoiceShortcut(t *testing.T) {
	r := newResolver()
	r.vars["items"] = &value.List{Items: []value.Value{value.Integer{Value: 1}}}
	r.calls["choice"] = func(args []value.Value) (value.Value, error) {
		l := args[0].(*value.List)
		return l.Items[0], nil
	}
	v := evalStr(t, "random choice from items", r)
	assert.Equal(t, value.Integer{Value: 1}, v)
}

func TestEval_BareRandomCallsZeroArg(t *testing.T) {
	r := newResolver()
	r.calls["random"] = func(args []value.Value) (value.Value, error) {
		return value.Float{Value: 0.5}, nil
	}
	v := evalStr(t, "random", r)
	assert.Equal(t, value.Float{Value: 0.5}, v)
}
