package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/english/ast"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := Parse(src)
	require.NoError(t, err)
	return stmts
}

func TestParse_AssignAliasesProduceEquivalentNodes(t *testing.T) {
	forms := []string{
		"set x to 1",
		"let x be 1",
		"put 1 into x",
	}
	for _, src := range forms {
		stmts := mustParse(t, src)
		require.Len(t, stmts, 1)
		a, ok := stmts[0].(*ast.Assign)
		require.True(t, ok, "src=%q", src)
		assert.Equal(t, "x", a.Target)
		assert.Equal(t, "1", a.Value.Text)
		assert.Equal(t, 1, a.Line())
	}
}

func TestParse_MathMutAliasesShareFieldOrder(t *testing.T) {
	stmts := mustParse(t, "add 5 to total")
	add := stmts[0].(*ast.MathMut)
	assert.Equal(t, ast.OpAdd, add.Op)
	assert.Equal(t, "total", add.Target)
	assert.Equal(t, "5", add.Operand.Text)

	stmts = mustParse(t, "increase total by 5")
	inc := stmts[0].(*ast.MathMut)
	assert.Equal(t, ast.OpAdd, inc.Op)
	assert.Equal(t, "total", inc.Target)
	assert.Equal(t, "5", inc.Operand.Text)
}

func TestParse_SayAliases(t *testing.T) {
	for _, kw := range []string{"say", "print", "show"} {
		stmts := mustParse(t, kw+" \"hi\"")
		say := stmts[0].(*ast.Say)
		assert.Equal(t, "\"hi\"", say.Value.Text)
	}
}

func TestParse_Ask(t *testing.T) {
	stmts := mustParse(t, "ask \"name?\" and store in name")
	ask := stmts[0].(*ast.Ask)
	assert.Equal(t, "\"name?\"", ask.Prompt.Text)
	assert.Equal(t, "name", ask.Target)
}

func TestParse_LineNumbersFollowOpeningKeyword(t *testing.T) {
	src := "set x to 1\n\n# comment\nsay x\n"
	stmts := mustParse(t, src)
	require.Len(t, stmts, 2)
	assert.Equal(t, 1, stmts[0].Line())
	assert.Equal(t, 4, stmts[1].Line())
}

func TestParse_IfChain(t *testing.T) {
	src := `if x is greater than 1 then
say "big"
otherwise if x is 1 then
say "one"
otherwise
say "small"
end if
`
	stmts := mustParse(t, src)
	require.Len(t, stmts, 1)
	n := stmts[0].(*ast.If)
	require.Len(t, n.Branches, 2)
	assert.Equal(t, "x is greater than 1", n.Branches[0].Condition.Text)
	assert.Equal(t, "x is 1", n.Branches[1].Condition.Text)
	require.Len(t, n.Else, 1)
}

func TestParse_IfRejectsOtherwiseIfAfterOtherwise(t *testing.T) {
	src := `if x is 1 then
say "one"
otherwise
say "other"
otherwise if x is 2 then
say "two"
end if
`
	_, err := Parse(src)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedCloser, pe.Kind)
}

func TestParse_IfRejectsSecondOtherwise(t *testing.T) {
	src := `if x is 1 then
say "one"
otherwise
say "a"
otherwise
say "b"
end if
`
	_, err := Parse(src)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedCloser, pe.Kind)
}

func TestParse_IfMissingCloser(t *testing.T) {
	src := "if x is 1 then\nsay \"one\"\n"
	_, err := Parse(src)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MissingCloser, pe.Kind)
}

func TestParse_RepeatCountAliases(t *testing.T) {
	for _, src := range []string{
		"repeat 3 times\nsay x\nend repeat\n",
		"do 3 times\nsay x\nfinish repeat\n",
	} {
		stmts := mustParse(t, src)
		n := stmts[0].(*ast.RepeatCount)
		assert.Equal(t, "3", n.Count.Text)
		require.Len(t, n.Body, 1)
	}
}

func TestParse_RepeatWhileAliases(t *testing.T) {
	stmts := mustParse(t, "repeat while x is less than 10\nadd 1 to x\nend repeat\n")
	n := stmts[0].(*ast.RepeatWhile)
	assert.Equal(t, "x is less than 10", n.Condition.Text)

	stmts = mustParse(t, "while x is less than 10 do\nadd 1 to x\nend repeat\n")
	n = stmts[0].(*ast.RepeatWhile)
	assert.Equal(t, "x is less than 10", n.Condition.Text)
}

func TestParse_ForEachAliases(t *testing.T) {
	for _, src := range []string{
		"for each item in items\nsay item\nend for\n",
		"for every item in items\nsay item\nfinish for\n",
	} {
		stmts := mustParse(t, src)
		n := stmts[0].(*ast.ForEach)
		assert.Equal(t, "item", n.Var)
		assert.Equal(t, "items", n.Iterable.Text)
	}
}

func TestParse_DefineWithCommaParams(t *testing.T) {
	src := "define greet with name, greeting\nsay greeting\nend define\n"
	stmts := mustParse(t, src)
	fn := stmts[0].(*ast.DefineFn)
	assert.Equal(t, "greet", fn.Name)
	assert.Equal(t, []string{"name", "greeting"}, fn.Params)
}

func TestParse_DefineWithAndParams(t *testing.T) {
	src := "function greet with name and greeting\nsay greeting\nfinish function\n"
	stmts := mustParse(t, src)
	fn := stmts[0].(*ast.DefineFn)
	assert.Equal(t, []string{"name", "greeting"}, fn.Params)
}

func TestParse_DefineRejectsMixedParamStyles(t *testing.T) {
	src := "define greet with name, greeting and extra\nsay greeting\nend define\n"
	_, err := Parse(src)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MixedParamStyles, pe.Kind)
}

func TestParse_ReturnAndGiveBack(t *testing.T) {
	stmts := mustParse(t, "return x")
	r := stmts[0].(*ast.Return)
	require.NotNil(t, r.Value)
	assert.Equal(t, "x", r.Value.Text)

	stmts = mustParse(t, "return")
	r = stmts[0].(*ast.Return)
	assert.Nil(t, r.Value)

	stmts = mustParse(t, "give back x")
	r = stmts[0].(*ast.Return)
	require.NotNil(t, r.Value)
	assert.Equal(t, "x", r.Value.Text)
}

func TestParse_CallWithArgs(t *testing.T) {
	stmts := mustParse(t, "call greet with \"a\", \"b\"")
	c := stmts[0].(*ast.CallStmt)
	assert.Equal(t, "greet", c.Name)
	require.Len(t, c.Args, 2)
	assert.Equal(t, "\"a\"", c.Args[0].Text)
	assert.Equal(t, "\"b\"", c.Args[1].Text)

	stmts = mustParse(t, "run greet")
	c = stmts[0].(*ast.CallStmt)
	assert.Empty(t, c.Args)
}

func TestParse_StopAndSkipAliases(t *testing.T) {
	stmts := mustParse(t, "stop loop")
	lc := stmts[0].(*ast.LoopCtrl)
	assert.Equal(t, ast.CtrlBreak, lc.Kind)

	stmts = mustParse(t, "break")
	lc = stmts[0].(*ast.LoopCtrl)
	assert.Equal(t, ast.CtrlBreak, lc.Kind)

	stmts = mustParse(t, "skip")
	lc = stmts[0].(*ast.LoopCtrl)
	assert.Equal(t, ast.CtrlContinue, lc.Kind)

	stmts = mustParse(t, "next repeat")
	lc = stmts[0].(*ast.LoopCtrl)
	assert.Equal(t, ast.CtrlContinue, lc.Kind)
}

func TestParse_ListCreateAndRemoveAliases(t *testing.T) {
	stmts := mustParse(t, "create list items")
	lc := stmts[0].(*ast.ListCreate)
	assert.Equal(t, "items", lc.Target)

	stmts = mustParse(t, "make list items")
	lc = stmts[0].(*ast.ListCreate)
	assert.Equal(t, "items", lc.Target)

	stmts = mustParse(t, "remove 1 from items")
	lr := stmts[0].(*ast.ListRemove)
	assert.Equal(t, "items", lr.Target)
	assert.Equal(t, "1", lr.Value.Text)

	stmts = mustParse(t, "take 1 from items")
	lr = stmts[0].(*ast.ListRemove)
	assert.Equal(t, "items", lr.Target)
}

func TestParse_ExprStmtForBareBuiltinCall(t *testing.T) {
	stmts := mustParse(t, "sleep(1)")
	es := stmts[0].(*ast.ExprStmt)
	assert.Equal(t, "sleep(1)", es.Value.Text)
}

func TestParse_UnknownStatementSuggestsClosestKeyword(t *testing.T) {
	_, err := Parse("sai x\n")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnknownStatement, pe.Kind)
	assert.Equal(t, "say", pe.Suggestion)
}

func TestParse_BadParameterListRejectsInvalidName(t *testing.T) {
	_, err := Parse("define greet with 1bad\nend define\n")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BadParameterList, pe.Kind)
}

func TestParse_MalformedConditionMissingThen(t *testing.T) {
	_, err := Parse("if x is 1\nsay x\nend if\n")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MalformedCondition, pe.Kind)
}

func TestParse_UnbalancedParensRejected(t *testing.T) {
	_, err := Parse("set x to (1 + 2\n")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MalformedCondition, pe.Kind)
}

func TestParse_TopLevelUnexpectedCloser(t *testing.T) {
	_, err := Parse("end if\n")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedCloser, pe.Kind)
}

func TestParse_SecondOtherwiseIsUnexpectedCloser(t *testing.T) {
	src := `if 1 is equal to 1 then
say "a"
otherwise
say "b"
otherwise
say "c"
end if
`
	_, err := Parse(src)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedCloser, pe.Kind)
}

func TestParse_OtherwiseIfAfterOtherwiseIsUnexpectedCloser(t *testing.T) {
	src := `if 1 is equal to 1 then
say "a"
otherwise
say "b"
otherwise if 2 is equal to 2 then
say "c"
end if
`
	_, err := Parse(src)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedCloser, pe.Kind)
}

func TestParse_NestedBlocksRecurse(t *testing.T) {
	src := `define add_all with items
set total to 0
for each item in items
add item to total
end for
return total
end define
`
	stmts := mustParse(t, src)
	fn := stmts[0].(*ast.DefineFn)
	require.Len(t, fn.Body, 3)
	forEach, ok := fn.Body[1].(*ast.ForEach)
	require.True(t, ok)
	require.Len(t, forEach.Body, 1)
}

// TestParse_RepeatAliasesProduceIdenticalTrees checks structural
// equivalence with go-cmp rather than field-by-field assertions, since
// a true alias should yield byte-for-byte identical trees once the
// source text lines up.
func TestParse_RepeatAliasesProduceIdenticalTrees(t *testing.T) {
	want := mustParse(t, "repeat 3 times\nsay \"hi\"\nend repeat\n")
	got := mustParse(t, "do 3 times\nsay \"hi\"\nfinish repeat\n")
	if diff := cmp.Diff(want, got, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("alias forms produced different trees (-want +got):\n%s", diff)
	}
}
