package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/english/parser"
	"github.com/akashmaji946/english/value"
)

func runProgram(t *testing.T, src string) (string, *Interpreter, error) {
	t.Helper()
	stmts, err := parser.Parse(src)
	require.NoError(t, err, "parse: %s", src)
	in := New()
	var buf bytes.Buffer
	in.SetWriter(&buf)
	err = in.Run(stmts)
	return buf.String(), in, err
}

func TestScenario_BasicAssignAndSay(t *testing.T) {
	out, _, err := runProgram(t, "set x to 10\nsay x + 5\n")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestScenario_ListAppendAndRemove(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"create list nums",
		"add 5 to nums",
		"add 8 to nums",
		"remove 5 from nums",
		"say nums",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "[8]\n", out)
}

func TestScenario_IfOtherwiseIfOtherwise(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"set score to 85",
		"if score is at least 90 then",
		"say \"A\"",
		"otherwise if score is at least 80 then",
		"say \"B\"",
		"otherwise",
		"say \"C\"",
		"end if",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "B\n", out)
}

func TestScenario_DefineAndCallAsExpression(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"define square with n",
		"return n * n",
		"end define",
		"say call square with 12",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "144\n", out)
}

func TestScenario_RepeatWhile(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"set x to 0",
		"repeat while x is less than 3",
		"add 1 to x",
		"say x",
		"end repeat",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestScenario_StopOutsideLoopIsRuntimeError(t *testing.T) {
	_, _, err := runProgram(t, "stop\n")
	require.Error(t, err)
	var re *value.RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, value.ControlOutsideLoop, re.Kind)
	assert.Contains(t, re.Error(), "outside a loop")
}

func TestScopeLocality_LocalAssignmentDoesNotLeakToGlobals(t *testing.T) {
	_, in, err := runProgram(t, strings.Join([]string{
		"define f",
		"set y to 99",
		"end define",
		"call f",
	}, "\n"))
	require.NoError(t, err)
	_, ok := in.Global["y"]
	assert.False(t, ok, "local assignment inside a function must not leak into globals")
}

func TestArityStrictness_WrongArgCountRaisesArityMismatch(t *testing.T) {
	_, _, err := runProgram(t, strings.Join([]string{
		"define add2 with a, b",
		"return a + b",
		"end define",
		"say call add2 with 1",
	}, "\n"))
	require.Error(t, err)
	var re *value.RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, value.ArityMismatch, re.Kind)
}

func TestLoopSafety_RunawayLoopIsCaught(t *testing.T) {
	stmts, err := parser.Parse(strings.Join([]string{
		"set x to 0",
		"repeat while x is at least 0",
		"add 1 to x",
		"end repeat",
	}, "\n"))
	require.NoError(t, err)
	in := New()
	in.MaxLoopIterations = 100
	var buf bytes.Buffer
	in.SetWriter(&buf)
	err = in.Run(stmts)
	require.Error(t, err)
	var re *value.RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, value.RunawayLoop, re.Kind)
}

func TestForEach_IteratesStringAsRunes(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"for each ch in \"ab\"",
		"say ch",
		"end for",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestBreakStopsLoopImmediately(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"set x to 0",
		"repeat while x is less than 10",
		"add 1 to x",
		"if x is equal to 3 then",
		"stop",
		"end if",
		"say x",
		"end repeat",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestSkipContinuesToNextIteration(t *testing.T) {
	out, _, err := runProgram(t, strings.Join([]string{
		"set x to 0",
		"repeat while x is less than 4",
		"add 1 to x",
		"if x is equal to 2 then",
		"skip",
		"end if",
		"say x",
		"end repeat",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n4\n", out)
}
