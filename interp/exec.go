package interp

import (
	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/value"
)

// Run executes a whole program: the sequence of top-level statements a
// parse produced. It is the entry point both the batch driver and the
// REPL use (the REPL calls it once per submitted chunk against the same
// Interpreter, so Global persists across submissions).
func (in *Interpreter) Run(program []ast.Stmt) error {
	ctl, err := in.execBlock(program)
	if err != nil {
		return err
	}
	switch ctl.kind {
	case ctrlReturn:
		return value.Errf(ctl.line, value.ReturnOutsideFunction, "return used outside a function")
	case ctrlBreak, ctrlContinue:
		return value.Errf(ctl.line, value.ControlOutsideLoop, "stop/skip used outside a loop")
	}
	return nil
}

// execBlock runs stmts in order — statements within a block execute
// strictly in source order — stopping early the moment any statement
// yields a non-none control signal or an error.
func (in *Interpreter) execBlock(stmts []ast.Stmt) (control, error) {
	for _, s := range stmts {
		ctl, err := in.execStmt(s)
		if err != nil {
			return noControl, err
		}
		if ctl.kind != ctrlNone {
			return ctl, nil
		}
	}
	return noControl, nil
}

// execStmt dispatches one statement to its handler by concrete AST
// type, mirroring the teacher's per-node-type Eval switch
// (github.com/akashmaji946/go-mix/eval) but returning an explicit
// control value instead of raising a Go panic.
func (in *Interpreter) execStmt(s ast.Stmt) (control, error) {
	switch n := s.(type) {
	case *ast.Assign:
		return noControl, in.execAssign(n)
	case *ast.Say:
		return noControl, in.execSay(n)
	case *ast.Ask:
		return noControl, in.execAsk(n)
	case *ast.MathMut:
		return noControl, in.execMathMut(n)
	case *ast.ListCreate:
		return noControl, in.execListCreate(n)
	case *ast.ListRemove:
		return noControl, in.execListRemove(n)
	case *ast.If:
		return in.execIf(n)
	case *ast.RepeatCount:
		return in.execRepeatCount(n)
	case *ast.RepeatWhile:
		return in.execRepeatWhile(n)
	case *ast.ForEach:
		return in.execForEach(n)
	case *ast.DefineFn:
		return noControl, in.execDefineFn(n)
	case *ast.CallStmt:
		return noControl, in.execCallStmt(n)
	case *ast.Return:
		return in.execReturn(n)
	case *ast.LoopCtrl:
		return in.execLoopCtrl(n)
	case *ast.ExprStmt:
		return noControl, in.execExprStmt(n)
	default:
		return noControl, value.Errf(s.Line(), value.TypeMismatch, "unhandled statement node")
	}
}
