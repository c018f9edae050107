package builtins

import (
	"math"
	"math/rand"

	"github.com/akashmaji946/english/value"
)

func init() {
	register("abs", biAbs)
	register("min", biMin)
	register("max", biMax)
	register("round", biRound)
	register("sum", biSum)
	register("random", biRandom)
	register("random_int", biRandomInt)
	register("random_float", biRandomFloat)
	register("choice", biChoice)
}

func asNumber(v value.Value) (float64, bool, bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n.Value), true, true
	case value.Float:
		return n.Value, false, true
	default:
		return 0, false, false
	}
}

// abs returns the absolute value of a number, preserving int/float kind.
func biAbs(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "abs", "1", len(args))
	}
	switch n := args[0].(type) {
	case value.Integer:
		if n.Value < 0 {
			return value.Integer{Value: -n.Value}, nil
		}
		return n, nil
	case value.Float:
		return value.Float{Value: math.Abs(n.Value)}, nil
	default:
		return nil, typeErr(line, "abs expects a number, got %s", value.Fmt(args[0]))
	}
}

// min returns the smaller of two numbers.
func biMin(args []value.Value, line int) (value.Value, error) {
	return minMax(args, line, "min", false)
}

// max returns the larger of two numbers.
func biMax(args []value.Value, line int) (value.Value, error) {
	return minMax(args, line, "max", true)
}

func minMax(args []value.Value, line int, name string, wantMax bool) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErr(line, name, "2", len(args))
	}
	af, aInt, aOk := asNumber(args[0])
	bf, _, bOk := asNumber(args[1])
	if !aOk || !bOk {
		return nil, typeErr(line, "%s expects two numbers, got %s and %s", name, value.Fmt(args[0]), value.Fmt(args[1]))
	}
	pick0 := af < bf
	if wantMax {
		pick0 = af > bf
	}
	if pick0 {
		return args[0], nil
	}
	if af == bf && aInt {
		return args[0], nil
	}
	return args[1], nil
}

// round returns the nearest integer to a number.
func biRound(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "round", "1", len(args))
	}
	f, _, ok := asNumber(args[0])
	if !ok {
		return nil, typeErr(line, "round expects a number, got %s", value.Fmt(args[0]))
	}
	return value.Integer{Value: int64(math.Round(f))}, nil
}

// sum adds every element of a list of numbers, returning an integer
// when every element is an integer and a float otherwise.
func biSum(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "sum", "1", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErr(line, "sum expects a list, got %s", value.Fmt(args[0]))
	}
	var fsum float64
	allInt := true
	for _, it := range list.Items {
		f, isInt, ok := asNumber(it)
		if !ok {
			return nil, typeErr(line, "sum expects a list of numbers, found %s", value.Fmt(it))
		}
		fsum += f
		allInt = allInt && isInt
	}
	if allInt {
		return value.Integer{Value: int64(fsum)}, nil
	}
	return value.Float{Value: fsum}, nil
}

// random overloads on argument count: with no arguments it returns a
// float in [0.0, 1.0); with two integer arguments it behaves like
// random_int.
func biRandom(args []value.Value, line int) (value.Value, error) {
	switch len(args) {
	case 0:
		return value.Float{Value: rand.Float64()}, nil
	case 2:
		return biRandomInt(args, line)
	default:
		return nil, arityErr(line, "random", "0 or 2", len(args))
	}
}

// random_int returns a random integer in the inclusive range [lo, hi].
func biRandomInt(args []value.Value, line int) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErr(line, "random_int", "2", len(args))
	}
	lo, loOk := args[0].(value.Integer)
	hi, hiOk := args[1].(value.Integer)
	if !loOk || !hiOk {
		return nil, typeErr(line, "random_int expects two integers, got %s and %s", value.Fmt(args[0]), value.Fmt(args[1]))
	}
	if hi.Value < lo.Value {
		lo, hi = hi, lo
	}
	span := hi.Value - lo.Value + 1
	return value.Integer{Value: lo.Value + rand.Int63n(span)}, nil
}

// random_float returns a random float in [lo, hi).
func biRandomFloat(args []value.Value, line int) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityErr(line, "random_float", "2", len(args))
	}
	lo, _, loOk := asNumber(args[0])
	hi, _, hiOk := asNumber(args[1])
	if !loOk || !hiOk {
		return nil, typeErr(line, "random_float expects two numbers, got %s and %s", value.Fmt(args[0]), value.Fmt(args[1]))
	}
	return value.Float{Value: lo + rand.Float64()*(hi-lo)}, nil
}

// choice picks a uniformly random element from a non-empty list,
// backing the `random choice from E` expression shortcut.
func biChoice(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "choice", "1", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErr(line, "choice expects a list, got %s", value.Fmt(args[0]))
	}
	if len(list.Items) == 0 {
		return nil, value.Errf(line, value.BadIndex, "choice called on an empty list")
	}
	return list.Items[rand.Intn(len(list.Items))], nil
}
