package exprlang

import "github.com/akashmaji946/english/value"

// EvalText parses and evaluates src in one call; it is the entry point
// package interp uses for every ast.Expr it carries: given an
// expression string and a Resolver to look up names against, it
// returns a value or a runtime error. Parse/lex failures are reported
// as type_mismatch since the runtime-error taxonomy has no dedicated
// "bad expression syntax" kind.
func EvalText(src string, line int, r Resolver) (value.Value, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, errAt(line, TypeMismatch, "%s", err.Error())
	}
	return Eval(node, line, r)
}
