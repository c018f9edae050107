package builtins

import (
	"strconv"

	"github.com/akashmaji946/english/value"
)

func init() {
	register("str", biStr)
	register("int", biInt)
	register("float", biFloat)
	register("bool", biBool)
}

// str converts any value to its textual rendering; numeric coercion to
// string is always explicit, through this built-in.
func biStr(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "str", "1", len(args))
	}
	return value.String{Value: args[0].String()}, nil
}

// int converts a string, float, or bool to an integer, truncating
// floats toward zero.
func biInt(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "int", "1", len(args))
	}
	switch v := args[0].(type) {
	case value.Integer:
		return v, nil
	case value.Float:
		return value.Integer{Value: int64(v.Value)}, nil
	case value.Bool:
		if v.Value {
			return value.Integer{Value: 1}, nil
		}
		return value.Integer{Value: 0}, nil
	case value.String:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, typeErr(line, "cannot convert %q to an integer", v.Value)
		}
		return value.Integer{Value: n}, nil
	default:
		return nil, typeErr(line, "cannot convert %s to an integer", value.Fmt(args[0]))
	}
}

// float converts a string, integer, or bool to a floating-point value.
func biFloat(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "float", "1", len(args))
	}
	switch v := args[0].(type) {
	case value.Float:
		return v, nil
	case value.Integer:
		return value.Float{Value: float64(v.Value)}, nil
	case value.Bool:
		if v.Value {
			return value.Float{Value: 1}, nil
		}
		return value.Float{Value: 0}, nil
	case value.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, typeErr(line, "cannot convert %q to a float", v.Value)
		}
		return value.Float{Value: f}, nil
	default:
		return nil, typeErr(line, "cannot convert %s to a float", value.Fmt(args[0]))
	}
}

// bool converts any value to a boolean following the language's
// truthiness rule.
func biBool(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "bool", "1", len(args))
	}
	return value.Bool{Value: value.Truthy(args[0])}, nil
}
