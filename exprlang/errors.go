package exprlang

import "github.com/akashmaji946/english/value"

// RuntimeError is an alias for the one runtime-error type the whole
// interpreter shares (package value), so expression-evaluation
// failures and statement-level failures raised by package interp
// compose under a single error family.
type RuntimeError = value.RuntimeError

// The expression-evaluator-specific subset of value.RuntimeErrorKind,
// aliased here under names that read naturally at this package's call
// sites.
const (
	UndefinedName  = value.UndefinedVariable
	TypeMismatch   = value.TypeMismatch
	DivisionByZero = value.DivisionByZero
	BadIndex       = value.BadIndex
	ArityMismatch  = value.ArityMismatch
)

func errAt(line int, kind value.RuntimeErrorKind, format string, args ...any) *RuntimeError {
	return value.Errf(line, kind, format, args...)
}
