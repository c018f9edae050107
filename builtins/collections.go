package builtins

import (
	"sort"

	"github.com/akashmaji946/english/value"
)

func init() {
	register("len", biLen)
	register("range", biRange)
	register("list", biList)
	register("sorted", biSorted)
}

// len returns the length of a string or list.
func biLen(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "len", "1", len(args))
	}
	switch v := args[0].(type) {
	case value.String:
		return value.Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *value.List:
		return value.Integer{Value: int64(len(v.Items))}, nil
	default:
		return nil, typeErr(line, "len expects a string or list, got %s", value.Fmt(args[0]))
	}
}

// range builds a list of integers, overloaded the way Python's range
// is: range(stop), range(start, stop), range(start, stop, step).
func biRange(args []value.Value, line int) (value.Value, error) {
	start, stop, step := int64(0), int64(0), int64(1)
	ints := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(value.Integer)
		if !ok {
			return nil, typeErr(line, "range expects integer arguments, got %s", value.Fmt(a))
		}
		ints[i] = n.Value
	}
	switch len(ints) {
	case 1:
		stop = ints[0]
	case 2:
		start, stop = ints[0], ints[1]
	case 3:
		start, stop, step = ints[0], ints[1], ints[2]
	default:
		return nil, arityErr(line, "range", "1 to 3", len(args))
	}
	if step == 0 {
		return nil, typeErr(line, "range step must not be zero")
	}

	var items []value.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			items = append(items, value.Integer{Value: i})
		}
	} else {
		for i := start; i > stop; i += step {
			items = append(items, value.Integer{Value: i})
		}
	}
	return &value.List{Items: items}, nil
}

// list builds a new list from its arguments, or an empty list when
// called with none.
func biList(args []value.Value, line int) (value.Value, error) {
	items := make([]value.Value, len(args))
	copy(items, args)
	return &value.List{Items: items}, nil
}

// sorted returns a new list holding the input list's elements in
// ascending numeric or lexical order, without mutating the original:
// lists are shared containers only across explicit mutation
// operations, not through a builtin that returns a fresh value.
func biSorted(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "sorted", "1", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, typeErr(line, "sorted expects a list, got %s", value.Fmt(args[0]))
	}
	out := make([]value.Value, len(list.Items))
	copy(out, list.Items)

	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		if as, ok := out[i].(value.String); ok {
			bs, ok := out[j].(value.String)
			if !ok {
				sortErr = typeErr(line, "sorted cannot compare %s with %s", value.Fmt(out[i]), value.Fmt(out[j]))
				return false
			}
			return as.Value < bs.Value
		}
		cmp, err := value.Compare(out[i], out[j])
		if err != nil {
			sortErr = typeErr(line, "sorted cannot compare %s with %s", value.Fmt(out[i]), value.Fmt(out[j]))
			return false
		}
		return cmp < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return &value.List{Items: out}, nil
}
