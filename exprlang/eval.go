package exprlang

import (
	"github.com/akashmaji946/english/value"
)

// Eval walks a parsed expression tree against r, converting every
// failure into the shared runtime-error taxonomy. line is the
// originating statement's line, stamped onto every error produced
// here since expression nodes carry no line of their own.
func Eval(node Node, line int, r Resolver) (value.Value, error) {
	switch n := node.(type) {
	case *NumberLit:
		if n.IsFloat {
			return value.Float{Value: n.Float}, nil
		}
		return value.Integer{Value: n.Int}, nil
	case *StringLit:
		return value.String{Value: n.Value}, nil
	case *BoolLit:
		return value.Bool{Value: n.Value}, nil
	case *NothingLit:
		return value.Nothing{}, nil
	case *Ident:
		v, ok := r.Lookup(n.Name)
		if !ok {
			return nil, errAt(line, UndefinedName, "undefined name: %s", n.Name)
		}
		return v, nil
	case *Unary:
		return evalUnary(n, line, r)
	case *Binary:
		return evalBinary(n, line, r)
	case *ListLit:
		items := make([]value.Value, len(n.Items))
		for i, it := range n.Items {
			v, err := Eval(it, line, r)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return &value.List{Items: items}, nil
	case *IndexExpr:
		return evalIndex(n, line, r)
	case *SliceExpr:
		return evalSlice(n, line, r)
	case *CallExpr:
		return evalCall(n, line, r)
	case *RandomBetween:
		low, err := Eval(n.Low, line, r)
		if err != nil {
			return nil, err
		}
		high, err := Eval(n.High, line, r)
		if err != nil {
			return nil, err
		}
		return r.Call("random_int", []value.Value{low, high}, line)
	case *RandomChoice:
		src, err := Eval(n.Source, line, r)
		if err != nil {
			return nil, err
		}
		return r.Call("choice", []value.Value{src}, line)
	default:
		return nil, errAt(line, TypeMismatch, "unsupported expression form")
	}
}

func evalUnary(n *Unary, line int, r Resolver) (value.Value, error) {
	v, err := Eval(n.Operand, line, r)
	if err != nil {
		return nil, err
	}
	if !n.Negate {
		return value.Bool{Value: !value.Truthy(v)}, nil
	}
	switch x := v.(type) {
	case value.Integer:
		return value.Integer{Value: -x.Value}, nil
	case value.Float:
		return value.Float{Value: -x.Value}, nil
	default:
		return nil, errAt(line, TypeMismatch, "cannot negate %s", value.Fmt(v))
	}
}

func evalBinary(n *Binary, line int, r Resolver) (value.Value, error) {
	if n.Op == OpAnd || n.Op == OpOr {
		left, err := Eval(n.Left, line, r)
		if err != nil {
			return nil, err
		}
		lt := value.Truthy(left)
		if n.Op == OpAnd && !lt {
			return value.Bool{Value: false}, nil
		}
		if n.Op == OpOr && lt {
			return value.Bool{Value: true}, nil
		}
		right, err := Eval(n.Right, line, r)
		if err != nil {
			return nil, err
		}
		return value.Bool{Value: value.Truthy(right)}, nil
	}

	left, err := Eval(n.Left, line, r)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, line, r)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case OpAdd:
		v, err := value.Add(left, right)
		return v, wrapArith(err, line)
	case OpSub:
		v, err := value.Sub(left, right)
		return v, wrapArith(err, line)
	case OpMul:
		v, err := value.Mul(left, right)
		return v, wrapArith(err, line)
	case OpDiv:
		v, err := value.Div(left, right)
		return v, wrapArith(err, line)
	case OpMod:
		v, err := value.Mod(left, right)
		return v, wrapArith(err, line)
	case OpEq:
		return value.Bool{Value: value.Equal(left, right)}, nil
	case OpNe:
		return value.Bool{Value: !value.Equal(left, right)}, nil
	case OpLt, OpLe, OpGt, OpGe:
		cmp, err := value.Compare(left, right)
		if err != nil {
			return nil, wrapArith(err, line)
		}
		switch n.Op {
		case OpLt:
			return value.Bool{Value: cmp < 0}, nil
		case OpLe:
			return value.Bool{Value: cmp <= 0}, nil
		case OpGt:
			return value.Bool{Value: cmp > 0}, nil
		default:
			return value.Bool{Value: cmp >= 0}, nil
		}
	case OpContains:
		ok, err := value.Contains(left, right)
		if err != nil {
			return nil, wrapArith(err, line)
		}
		return value.Bool{Value: ok}, nil
	case OpNotContains:
		ok, err := value.Contains(left, right)
		if err != nil {
			return nil, wrapArith(err, line)
		}
		return value.Bool{Value: !ok}, nil
	default:
		return nil, errAt(line, TypeMismatch, "unsupported operator")
	}
}

func wrapArith(err error, line int) error {
	if err == nil {
		return nil
	}
	ae, ok := err.(*value.ArithError)
	if !ok {
		return errAt(line, TypeMismatch, "%s", err.Error())
	}
	if ae.DivByZero {
		return errAt(line, DivisionByZero, "%s", ae.Msg)
	}
	return errAt(line, TypeMismatch, "%s", ae.Msg)
}

func evalIndex(n *IndexExpr, line int, r Resolver) (value.Value, error) {
	target, err := Eval(n.Target, line, r)
	if err != nil {
		return nil, err
	}
	idxVal, err := Eval(n.Index, line, r)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Integer)
	if !ok {
		return nil, errAt(line, TypeMismatch, "index must be an integer, got %s", value.Fmt(idxVal))
	}
	switch t := target.(type) {
	case *value.List:
		i := int(idx.Value)
		if i < 0 || i >= len(t.Items) {
			return nil, errAt(line, BadIndex, "list index %d out of range", i)
		}
		return t.Items[i], nil
	case value.String:
		runes := []rune(t.Value)
		i := int(idx.Value)
		if i < 0 || i >= len(runes) {
			return nil, errAt(line, BadIndex, "string index %d out of range", i)
		}
		return value.String{Value: string(runes[i])}, nil
	default:
		return nil, errAt(line, TypeMismatch, "cannot index %s", value.Fmt(target))
	}
}

func evalSlice(n *SliceExpr, line int, r Resolver) (value.Value, error) {
	target, err := Eval(n.Target, line, r)
	if err != nil {
		return nil, err
	}
	lowVal, err := Eval(n.Low, line, r)
	if err != nil {
		return nil, err
	}
	highVal, err := Eval(n.High, line, r)
	if err != nil {
		return nil, err
	}
	low, ok1 := lowVal.(value.Integer)
	high, ok2 := highVal.(value.Integer)
	if !ok1 || !ok2 {
		return nil, errAt(line, TypeMismatch, "slice bounds must be integers")
	}
	switch t := target.(type) {
	case *value.List:
		lo, hi := int(low.Value), int(high.Value)
		if lo < 0 || hi > len(t.Items) || lo > hi {
			return nil, errAt(line, BadIndex, "list slice [%d:%d] out of range", lo, hi)
		}
		items := make([]value.Value, hi-lo)
		copy(items, t.Items[lo:hi])
		return &value.List{Items: items}, nil
	case value.String:
		runes := []rune(t.Value)
		lo, hi := int(low.Value), int(high.Value)
		if lo < 0 || hi > len(runes) || lo > hi {
			return nil, errAt(line, BadIndex, "string slice [%d:%d] out of range", lo, hi)
		}
		return value.String{Value: string(runes[lo:hi])}, nil
	default:
		return nil, errAt(line, TypeMismatch, "cannot slice %s", value.Fmt(target))
	}
}

func evalCall(n *CallExpr, line int, r Resolver) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, line, r)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return r.Call(n.Name, args, line)
}
