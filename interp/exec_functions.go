package interp

import (
	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/value"
)

// execDefineFn implements `define F with P1, P2 / ... / end define`
// (and `function F with P1 and P2`): binds a UserFunction value under
// F's name in the current frame, since functions are first-class
// values.
func (in *Interpreter) execDefineFn(n *ast.DefineFn) error {
	in.topFrame()[n.Name] = &UserFunction{
		FnName: n.Name,
		Params: n.Params,
		Body:   n.Body,
	}
	return nil
}

// execCallStmt implements `call F with A1, A2` (and `run F with ...`)
// used as a statement: the return value is evaluated for side effect
// only and discarded.
func (in *Interpreter) execCallStmt(n *ast.CallStmt) error {
	args, err := in.evalArgs(n.Args)
	if err != nil {
		return err
	}
	_, err = in.Call(n.Name, args, n.Ln)
	return err
}

// execExprStmt implements a bare expression used as a statement, used
// rarely and mainly for built-in side-effect calls. The value, if any,
// is discarded exactly like execCallStmt.
func (in *Interpreter) execExprStmt(n *ast.ExprStmt) error {
	_, err := in.evalExpr(n.Value)
	return err
}

// evalArgs evaluates an argument-expression list left to right,
// including argument lists.
func (in *Interpreter) evalArgs(exprs []ast.Expr) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, e := range exprs {
		v, err := in.evalExpr(e)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
