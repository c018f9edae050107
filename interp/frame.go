/*
Package interp implements a tree-walking interpreter that executes the
ast.Stmt program produced by package parser against a scope stack,
dispatching expression text to package exprlang. This mirrors the
teacher's eval package layout (github.com/akashmaji946/go-mix/eval),
split one file per statement family, but replaces its parent-chain
scope.Scope with a two-level frame model: user functions capture a
reference to the globals only, with no lexical closure over local
frames.
*/
package interp

import "github.com/akashmaji946/english/value"

// Frame is one scope-stack entry: a flat mapping from name to value.
// Unlike the teacher's scope.Scope, a Frame has no parent pointer — this
// language has only two visibility levels (the current frame and the
// global frame), not an arbitrary chain.
type Frame map[string]value.Value

func newFrame() Frame { return make(Frame) }
