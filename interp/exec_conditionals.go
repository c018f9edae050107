package interp

import (
	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/value"
)

// execIf evaluates branches in source order: the first truthy one
// executes and the rest (including any otherwise) are skipped.
func (in *Interpreter) execIf(n *ast.If) (control, error) {
	for _, branch := range n.Branches {
		cond, err := in.evalExpr(branch.Condition)
		if err != nil {
			return noControl, err
		}
		if value.Truthy(cond) {
			return in.execBlock(branch.Body)
		}
	}
	if n.Else != nil {
		return in.execBlock(n.Else)
	}
	return noControl, nil
}
