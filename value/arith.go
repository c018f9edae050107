package value

import "fmt"

// ArithError is returned by the arithmetic helpers below when the pair
// of runtime tags cannot be combined; exprlang and interp convert it
// into a RuntimeError (type_mismatch or division_by_zero).
type ArithError struct {
	Msg        string
	DivByZero  bool
	TypeClash  bool
}

func (e *ArithError) Error() string { return e.Msg }

func typeClash(op string, a, b Value) *ArithError {
	return &ArithError{
		Msg:       fmt.Sprintf("cannot apply %q to %s and %s", op, Fmt(a), Fmt(b)),
		TypeClash: true,
	}
}

// Add implements `+`: numeric addition with the usual int/float
// promotion, or string concatenation when both operands are strings.
func Add(a, b Value) (Value, error) {
	if as, ok := a.(String); ok {
		if bs, ok := b.(String); ok {
			return String{Value: as.Value + bs.Value}, nil
		}
		return nil, typeClash("+", a, b)
	}
	return numericOp(a, b, "+", func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y })
}

// Sub implements binary `-`.
func Sub(a, b Value) (Value, error) {
	return numericOp(a, b, "-", func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y })
}

// Mul implements `*`.
func Mul(a, b Value) (Value, error) {
	return numericOp(a, b, "*", func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y })
}

// Div implements `/`. Division is float-valued whenever either operand
// is a Float; integer/integer division truncates toward zero, matching
// Go's native int64 division.
func Div(a, b Value) (Value, error) {
	if ai, aok := a.(Integer); aok {
		if bi, bok := b.(Integer); bok {
			if bi.Value == 0 {
				return nil, &ArithError{Msg: "division by zero", DivByZero: true}
			}
			return Integer{Value: ai.Value / bi.Value}, nil
		}
	}
	af, aok := AsFloat64(a)
	bf, bok := AsFloat64(b)
	if !aok || !bok {
		return nil, typeClash("/", a, b)
	}
	if bf == 0 {
		return nil, &ArithError{Msg: "division by zero", DivByZero: true}
	}
	return Float{Value: af / bf}, nil
}

// Mod implements `%`, defined only between two integers.
func Mod(a, b Value) (Value, error) {
	ai, aok := a.(Integer)
	bi, bok := b.(Integer)
	if !aok || !bok {
		return nil, typeClash("%", a, b)
	}
	if bi.Value == 0 {
		return nil, &ArithError{Msg: "division by zero", DivByZero: true}
	}
	return Integer{Value: ai.Value % bi.Value}, nil
}

// numericOp applies intOp when both operands are Integer, otherwise
// promotes to float64 and applies floatOp.
func numericOp(a, b Value, op string, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) (Value, error) {
	if ai, aok := a.(Integer); aok {
		if bi, bok := b.(Integer); bok {
			return Integer{Value: intOp(ai.Value, bi.Value)}, nil
		}
	}
	af, aok := AsFloat64(a)
	bf, bok := AsFloat64(b)
	if !aok || !bok {
		return nil, typeClash(op, a, b)
	}
	return Float{Value: floatOp(af, bf)}, nil
}

// Compare implements the ordering comparisons (`<`, `<=`, `>`, `>=`)
// between two numeric values.
func Compare(a, b Value) (int, error) {
	af, aok := AsFloat64(a)
	bf, bok := AsFloat64(b)
	if !aok || !bok {
		return 0, typeClash("compare", a, b)
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

// Contains implements `contains` / `does not contain`: membership in a
// list by value equality, or substring search in a string.
func Contains(container, needle Value) (bool, error) {
	switch c := container.(type) {
	case *List:
		for _, it := range c.Items {
			if Equal(it, needle) {
				return true, nil
			}
		}
		return false, nil
	case String:
		n, ok := needle.(String)
		if !ok {
			return false, typeClash("contains", container, needle)
		}
		return stringContains(c.Value, n.Value), nil
	default:
		return false, typeClash("contains", container, needle)
	}
}

func stringContains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
