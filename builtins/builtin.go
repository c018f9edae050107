/*
Package builtins implements the interpreter's fixed built-in table: the
global frame is pre-populated with a fixed set of callables before any
user code runs. This mirrors the teacher's std package layout
(github.com/akashmaji946/go-mix/std) — one Builtin value per function,
grouped into files by concern (math, collections, conversion) — but
each Builtin here takes the already-evaluated argument slice directly
rather than a Runtime/io.Writer pair, since none of this language's
built-ins need to call back into user code or write to a stream (`say`
is a statement, not a builtin, and owns its own Writer in package
interp).
*/
package builtins

import (
	"fmt"

	"github.com/akashmaji946/english/value"
)

// Fn is a builtin's implementation: already-evaluated arguments plus
// the call site's line number (for RuntimeError reporting), returning
// a value or a *value.RuntimeError.
type Fn func(args []value.Value, line int) (value.Value, error)

// Builtin is a host-provided callable, satisfying value.Callable the
// same way interp.UserFunction does so both are invoked through one
// call path.
type Builtin struct {
	FnName string
	Fn     Fn
}

func (b Builtin) Kind() value.Type { return value.CallableType }
func (b Builtin) String() string   { return fmt.Sprintf("<builtin %s>", b.FnName) }
func (b Builtin) Name() string     { return b.FnName }

var table = map[string]Fn{}

func register(name string, fn Fn) {
	table[name] = fn
}

// All returns a fresh map of every registered builtin as a
// value.Callable, ready to seed an Interpreter's global frame.
func All() map[string]value.Value {
	out := make(map[string]value.Value, len(table))
	for name, fn := range table {
		out[name] = Builtin{FnName: name, Fn: fn}
	}
	return out
}

func arityErr(line int, name string, want string, got int) error {
	return value.Errf(line, value.ArityMismatch, "%s expects %s argument(s), got %d", name, want, got)
}

func typeErr(line int, format string, args ...any) error {
	return value.Errf(line, value.TypeMismatch, format, args...)
}
