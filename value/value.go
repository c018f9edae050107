/*
Package value implements the tagged value variant that every runtime
value in the language is built from: integer, float, string, boolean,
nothing, list, or callable. This mirrors the teacher's objects package
(GoMixObject / Integer / Float / ... in
github.com/akashmaji946/go-mix/objects), trimmed to the types this
language actually has — no structs, maps, sets, or tuples, since this
language has no user-defined record types.
*/
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type names the runtime tag of a Value, used for type-mismatch
// messages and dispatch in arithmetic/comparison.
type Type string

const (
	IntegerType  Type = "integer"
	FloatType    Type = "float"
	StringType   Type = "string"
	BooleanType  Type = "boolean"
	NothingType  Type = "nothing"
	ListType     Type = "list"
	CallableType Type = "callable"
)

// Value is the interface every runtime value implements. Kind reports
// the tagged type; String renders the value the way `say` prints it.
type Value interface {
	Kind() Type
	String() string
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (i Integer) Kind() Type     { return IntegerType }
func (i Integer) String() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating point value.
type Float struct{ Value float64 }

func (f Float) Kind() Type { return FloatType }
func (f Float) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// String is a text value.
type String struct{ Value string }

func (s String) Kind() Type     { return StringType }
func (s String) String() string { return s.Value }

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b Bool) Kind() Type     { return BooleanType }
func (b Bool) String() string { return strconv.FormatBool(b.Value) }

// Nothing is the single absence-of-a-value, produced when a function
// falls off its end without a `return` and usable anywhere a value is
// expected.
type Nothing struct{}

func (Nothing) Kind() Type     { return NothingType }
func (Nothing) String() string { return "nothing" }

// List is a mutable, ordered, shared container: a list value is a
// single shared container, and mutation operations modify it in place,
// visible through any alias. It is always held behind a pointer so
// that aliasing and in-place mutation work.
type List struct {
	Items []Value
}

func (l *List) Kind() Type { return ListType }
func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Callable is either a user-defined function or a host-provided
// built-in. Both are invoked through the same call path, so both
// satisfy this one interface; interp.UserFunction and builtins.Builtin
// are two of its implementations.
type Callable interface {
	Value
	Name() string
}

// Truthy implements the language's truthiness rule: numeric nonzero,
// non-empty string, non-empty list, boolean-true, or not-nothing.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Integer:
		return x.Value != 0
	case Float:
		return x.Value != 0
	case String:
		return x.Value != ""
	case Bool:
		return x.Value
	case Nothing:
		return false
	case *List:
		return len(x.Items) > 0
	default:
		return true
	}
}

// Equal implements the `==` / `equals` / `is equal to` comparison.
// Numbers compare across int/float by numeric value; other types
// compare only against their own kind.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return x.Value == y.Value
		case Float:
			return float64(x.Value) == y.Value
		}
		return false
	case Float:
		switch y := b.(type) {
		case Integer:
			return x.Value == float64(y.Value)
		case Float:
			return x.Value == y.Value
		}
		return false
	case String:
		y, ok := b.(String)
		return ok && x.Value == y.Value
	case Bool:
		y, ok := b.(Bool)
		return ok && x.Value == y.Value
	case Nothing:
		_, ok := b.(Nothing)
		return ok
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AsFloat64 extracts the numeric value of an Integer or Float as a
// float64, for arithmetic that must promote to floating point.
func AsFloat64(v Value) (float64, bool) {
	switch x := v.(type) {
	case Integer:
		return float64(x.Value), true
	case Float:
		return x.Value, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is an Integer or a Float.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Integer, Float:
		return true
	default:
		return false
	}
}

// TypeName renders a friendly name for a value's type, used in
// RuntimeError messages (e.g. "expected a number, got a string").
func TypeName(v Value) string {
	return string(v.Kind())
}

// Fmt is a small helper for building "%v (a %s)"-shaped diagnostic
// strings without every caller importing fmt directly.
func Fmt(v Value) string {
	return fmt.Sprintf("%s (a %s)", v.String(), TypeName(v))
}
