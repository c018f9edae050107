package exprlang

import "github.com/akashmaji946/english/value"

// Resolver is the controlled symbol table this package evaluates
// against: name resolution and call dispatch delegate to the
// interpreter's scope and built-in tables. Package interp's
// Interpreter implements this so exprlang never touches a scope frame
// directly.
type Resolver interface {
	Lookup(name string) (value.Value, bool)
	Call(name string, args []value.Value, line int) (value.Value, error)
}
