package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/builtins"
	"github.com/akashmaji946/english/exprlang"
	"github.com/akashmaji946/english/host"
	"github.com/akashmaji946/english/value"
)

// Interpreter is the tree walker: it owns the global frame, the single
// active call frame (if any), the runaway-loop cap, and the I/O streams
// `say`/`ask` write to and read from. Unlike the teacher's Evaluator,
// which threads a parent-chain scope.Scope through every call, this
// type holds at most two frames at once: Global and (while a user
// function body is executing) local. Block bodies — if, repeat, for
// each — never push a frame of their own; only a function call does,
// pushing a fresh frame that is always popped on return.
type Interpreter struct {
	Global Frame
	local  Frame // nil outside a function call; named to avoid colliding with the Call method below

	MaxLoopIterations int

	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Interpreter with the default runaway-loop cap and
// stdio streams, matching the teacher's NewEvaluator default wiring.
func New() *Interpreter {
	in := &Interpreter{
		Global:            newFrame(),
		MaxLoopIterations: 100000,
		Writer:            os.Stdout,
		Reader:            bufio.NewReader(os.Stdin),
	}
	for name, fn := range builtins.All() {
		in.Global[name] = fn
	}
	for name, fn := range host.All() {
		in.Global[name] = fn
	}
	return in
}

// SetWriter redirects `say` output, mainly for tests.
func (in *Interpreter) SetWriter(w io.Writer) { in.Writer = w }

// SetReader redirects `ask` input, mainly for tests.
func (in *Interpreter) SetReader(r io.Reader) { in.Reader = bufio.NewReader(r) }

// ctrlKind distinguishes the three control signals this interpreter
// models as an explicit result-variant threaded through exec_block /
// exec_stmt return values, rather than as Go panics/exceptions.
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlReturn
	ctrlBreak
	ctrlContinue
)

// control is that explicit result-variant: exec_stmt and exec_block
// return one alongside any error, and the caller (function-call
// machinery for ctrlReturn, loop bodies for ctrlBreak/ctrlContinue)
// decides whether to catch it or keep propagating it upward.
type control struct {
	kind  ctrlKind
	value value.Value
	line  int
}

var noControl = control{kind: ctrlNone}

// lookup implements the scope-stack read: name lookup searches
// top-down and stops at the first hit. With only two frames possible,
// top-down means local first (if present) then Global.
func (in *Interpreter) lookup(name string) (value.Value, bool) {
	if in.local != nil {
		if v, ok := in.local[name]; ok {
			return v, true
		}
	}
	if v, ok := in.Global[name]; ok {
		return v, true
	}
	return nil, false
}

// setVar implements `set x to e`'s write rule: "if x exists in any
// enclosing frame, overwrite there; else bind in the topmost frame."
func (in *Interpreter) setVar(name string, v value.Value) {
	if in.local != nil {
		if _, ok := in.local[name]; ok {
			in.local[name] = v
			return
		}
		if _, ok := in.Global[name]; ok {
			in.Global[name] = v
			return
		}
		in.local[name] = v
		return
	}
	in.Global[name] = v
}

// topFrame returns the frame writes bind new names into: the call
// frame when one is active, else the global frame.
func (in *Interpreter) topFrame() Frame {
	if in.local != nil {
		return in.local
	}
	return in.Global
}

// Lookup implements exprlang.Resolver.
func (in *Interpreter) Lookup(name string) (value.Value, bool) {
	return in.lookup(name)
}

// Call implements exprlang.Resolver: dispatch a name as a callable,
// found via the same scope lookup as a variable reference, since
// functions are first-class values and built-ins are invoked through
// the same call path as user functions.
func (in *Interpreter) Call(name string, args []value.Value, line int) (value.Value, error) {
	v, ok := in.lookup(name)
	if !ok {
		return nil, value.Errf(line, value.UndefinedVariable, "undefined function: %s", name)
	}
	callable, ok := v.(value.Callable)
	if !ok {
		return nil, value.Errf(line, value.TypeMismatch, "%s is not callable", name)
	}
	return in.invoke(callable, args, line)
}

// invoke runs a callable to completion, converting a user function's
// ctrlReturn signal (if any) into a plain value. Host built-ins are plain Go functions; user
// functions are UserFunction values defined below.
func (in *Interpreter) invoke(c value.Callable, args []value.Value, line int) (value.Value, error) {
	switch fn := c.(type) {
	case *UserFunction:
		return in.callUserFunction(fn, args, line)
	case builtins.Builtin:
		return fn.Fn(args, line)
	case host.Builtin:
		return fn.Fn(args, line)
	default:
		return nil, value.Errf(line, value.TypeMismatch, "%s is not callable", c.Name())
	}
}

// UserFunction is the callable produced by `define`/`function`. It
// captures no scope at all — only its name, parameter list, and body —
// since a user function sees the globals that exist at call time
// rather than any lexical environment.
type UserFunction struct {
	FnName string
	Params []string
	Body   []ast.Stmt
}

func (f *UserFunction) Kind() value.Type { return value.CallableType }
func (f *UserFunction) String() string   { return fmt.Sprintf("<function %s>", f.FnName) }
func (f *UserFunction) Name() string     { return f.FnName }

// callUserFunction implements the call mechanics: argument count must
// match exactly, a fresh frame is pushed and always popped (even on
// error or an uncaught control signal), and falling off the body's end
// yields nothing.
func (in *Interpreter) callUserFunction(fn *UserFunction, args []value.Value, line int) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, value.Errf(line, value.ArityMismatch,
			"%s expects %d argument(s), got %d", fn.FnName, len(fn.Params), len(args))
	}

	frame := newFrame()
	for i, p := range fn.Params {
		frame[p] = args[i]
	}

	// Only one call frame can ever be active at a time in this
	// language (user functions do not close over a caller's locals),
	// so a recursive or nested call simply swaps in a new frame and
	// restores the caller's on the way out — there is no stack of
	// frames to maintain beyond this single save/restore.
	outer := in.local
	in.local = frame
	defer func() { in.local = outer }()

	ctl, err := in.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}
	if ctl.kind == ctrlReturn {
		if ctl.value == nil {
			return value.Nothing{}, nil
		}
		return ctl.value, nil
	}
	if ctl.kind == ctrlBreak || ctl.kind == ctrlContinue {
		errLine := ctl.line
		if errLine == 0 {
			errLine = line
		}
		return nil, value.Errf(errLine, value.ControlOutsideLoop,
			"stop/skip used outside a loop")
	}
	return value.Nothing{}, nil
}

// evalExpr is the one path every ast.Expr in the program goes through:
// exprlang parses and evaluates the text against this Interpreter as
// the exprlang.Resolver.
func (in *Interpreter) evalExpr(e ast.Expr) (value.Value, error) {
	return exprlang.EvalText(e.Text, e.Ln, in)
}

var _ exprlang.Resolver = (*Interpreter)(nil)
