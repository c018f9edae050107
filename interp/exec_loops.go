package interp

import (
	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/value"
)

// runLoopBody executes one iteration's body and interprets its control
// signal the way every loop form shares: ctrlBreak stops the loop
// (swallowed here), ctrlContinue stops just this iteration (also
// swallowed — the caller simply moves to the next one), and
// ctrlReturn/errors propagate straight out of the loop to the nearest
// enclosing function call.
//
// It returns (stop, ctl, err): stop is true when the loop must end
// (break, return, or error); ctl carries a ctrlReturn that must keep
// propagating past this loop.
func (in *Interpreter) runLoopBody(body []ast.Stmt) (stop bool, ctl control, err error) {
	c, err := in.execBlock(body)
	if err != nil {
		return true, noControl, err
	}
	switch c.kind {
	case ctrlBreak:
		return true, noControl, nil
	case ctrlContinue:
		return false, noControl, nil
	case ctrlReturn:
		return true, c, nil
	default:
		return false, noControl, nil
	}
}

func (in *Interpreter) checkLoopBudget(count, line int) error {
	if count > in.MaxLoopIterations {
		return value.Errf(line, value.RunawayLoop,
			"loop exceeded %d iterations", in.MaxLoopIterations)
	}
	return nil
}

// execRepeatCount implements `repeat N times` / `do N times`: evaluate
// the count once to an integer, then run the body that many times.
func (in *Interpreter) execRepeatCount(n *ast.RepeatCount) (control, error) {
	countVal, err := in.evalExpr(n.Count)
	if err != nil {
		return noControl, err
	}
	count, ok := countVal.(value.Integer)
	if !ok {
		return noControl, value.Errf(n.Ln, value.TypeMismatch,
			"repeat count must be a number, got %s", value.Fmt(countVal))
	}
	for i := int64(0); i < count.Value; i++ {
		if err := in.checkLoopBudget(int(i)+1, n.Ln); err != nil {
			return noControl, err
		}
		stop, ctl, err := in.runLoopBody(n.Body)
		if err != nil {
			return noControl, err
		}
		if stop {
			return ctl, nil
		}
	}
	return noControl, nil
}

// execRepeatWhile implements `repeat while C` / `while C do`:
// re-evaluate C before every iteration.
func (in *Interpreter) execRepeatWhile(n *ast.RepeatWhile) (control, error) {
	iterations := 0
	for {
		cond, err := in.evalExpr(n.Condition)
		if err != nil {
			return noControl, err
		}
		if !value.Truthy(cond) {
			return noControl, nil
		}
		iterations++
		if err := in.checkLoopBudget(iterations, n.Ln); err != nil {
			return noControl, err
		}
		stop, ctl, err := in.runLoopBody(n.Body)
		if err != nil {
			return noControl, err
		}
		if stop {
			return ctl, nil
		}
	}
}

// execForEach implements `for each x in E` / `for every x in E`:
// evaluate E once to a list or string, then iterate its elements,
// binding x in the current frame on every step. Iterating a string
// walks its Unicode code points one rune at a time.
func (in *Interpreter) execForEach(n *ast.ForEach) (control, error) {
	iterable, err := in.evalExpr(n.Iterable)
	if err != nil {
		return noControl, err
	}

	var items []value.Value
	switch v := iterable.(type) {
	case *value.List:
		items = v.Items
	case value.String:
		for _, r := range v.Value {
			items = append(items, value.String{Value: string(r)})
		}
	default:
		return noControl, value.Errf(n.Ln, value.TypeMismatch,
			"cannot iterate over %s", value.Fmt(iterable))
	}

	for i, item := range items {
		if err := in.checkLoopBudget(i+1, n.Ln); err != nil {
			return noControl, err
		}
		in.topFrame()[n.Var] = item
		stop, ctl, err := in.runLoopBody(n.Body)
		if err != nil {
			return noControl, err
		}
		if stop {
			return ctl, nil
		}
	}
	return noControl, nil
}
