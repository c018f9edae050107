package interp

import (
	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/value"
)

// execAssign implements `set X to E` (and `let X be E`, `put E into X`):
// overwrite an existing binding wherever it lives on the two-frame
// stack, else bind in the topmost frame.
func (in *Interpreter) execAssign(n *ast.Assign) error {
	v, err := in.evalExpr(n.Value)
	if err != nil {
		return err
	}
	in.setVar(n.Target, v)
	return nil
}

// execMathMut implements `add E to X`, `subtract E from X`,
// `multiply X by E`, `divide X by E`. X must already exist and be a
// number (or, for add, a list — the list-append overload); otherwise it
// is a RuntimeError, since mutation ops require x to exist and be of a
// compatible type.
func (in *Interpreter) execMathMut(n *ast.MathMut) error {
	cur, ok := in.lookup(n.Target)
	if !ok {
		return value.Errf(n.Ln, value.UndefinedVariable, "undefined variable: %s", n.Target)
	}
	operand, err := in.evalExpr(n.Operand)
	if err != nil {
		return err
	}

	if n.Op == ast.OpAdd {
		if list, ok := cur.(*value.List); ok {
			list.Items = append(list.Items, operand)
			return nil
		}
	}

	if !value.IsNumeric(cur) {
		return value.Errf(n.Ln, value.TypeMismatch, "%s is not a number or list: %s", n.Target, value.Fmt(cur))
	}

	var result value.Value
	switch n.Op {
	case ast.OpAdd:
		result, err = value.Add(cur, operand)
	case ast.OpSub:
		result, err = value.Sub(cur, operand)
	case ast.OpMul:
		result, err = value.Mul(cur, operand)
	case ast.OpDiv:
		result, err = value.Div(cur, operand)
	}
	if err != nil {
		return wrapArithErr(err, n.Ln)
	}
	in.setVar(n.Target, result)
	return nil
}

// execListCreate implements `create list X` / `make list X`: binds a
// fresh, empty list in the topmost frame.
func (in *Interpreter) execListCreate(n *ast.ListCreate) error {
	in.topFrame()[n.Target] = &value.List{}
	return nil
}

// execListRemove implements `remove E from X` / `take E from X`:
// removes the first element equal to E, or raises
// RuntimeError{list_remove_missing} when none matches.
func (in *Interpreter) execListRemove(n *ast.ListRemove) error {
	cur, ok := in.lookup(n.Target)
	if !ok {
		return value.Errf(n.Ln, value.UndefinedVariable, "undefined variable: %s", n.Target)
	}
	list, ok := cur.(*value.List)
	if !ok {
		return value.Errf(n.Ln, value.TypeMismatch, "%s is not a list", n.Target)
	}
	target, err := in.evalExpr(n.Value)
	if err != nil {
		return err
	}
	for i, it := range list.Items {
		if value.Equal(it, target) {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			return nil
		}
	}
	return value.Errf(n.Ln, value.ListRemoveMissing, "%s not found in %s", value.Fmt(target), n.Target)
}


// wrapArithErr converts a value.ArithError (produced by the value
// package's stateless arithmetic helpers) into the RuntimeError
// taxonomy, attaching the statement's line.
func wrapArithErr(err error, line int) error {
	ae, ok := err.(*value.ArithError)
	if !ok {
		return err
	}
	if ae.DivByZero {
		return value.Errf(line, value.DivisionByZero, "%s", ae.Msg)
	}
	return value.Errf(line, value.TypeMismatch, "%s", ae.Msg)
}
