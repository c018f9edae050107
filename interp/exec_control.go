package interp

import "github.com/akashmaji946/english/ast"

// execReturn implements `return E` / `give back E`: raises a ctrlReturn
// control signal carrying E's value (or nil for a bare `return`),
// caught by callUserFunction. Reaching the top of the program with an
// uncaught ctrlReturn is itself a RuntimeError, enforced by Run.
func (in *Interpreter) execReturn(n *ast.Return) (control, error) {
	if n.Value == nil {
		return control{kind: ctrlReturn, line: n.Ln}, nil
	}
	v, err := in.evalExpr(*n.Value)
	if err != nil {
		return noControl, err
	}
	return control{kind: ctrlReturn, value: v, line: n.Ln}, nil
}

// execLoopCtrl implements `stop`/`break` and `skip`/`continue`: raises
// the matching control signal, caught by runLoopBody.
func (in *Interpreter) execLoopCtrl(n *ast.LoopCtrl) (control, error) {
	if n.Kind == ast.CtrlBreak {
		return control{kind: ctrlBreak, line: n.Ln}, nil
	}
	return control{kind: ctrlContinue, line: n.Ln}, nil
}
