package builtins

import (
	"time"

	"github.com/akashmaji946/english/value"
)

func init() {
	register("sleep", biSleep)
}

// sleep blocks the executing thread for the given number of seconds.
func biSleep(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(line, "sleep", "1", len(args))
	}
	secs, _, ok := asNumber(args[0])
	if !ok {
		return nil, typeErr(line, "sleep expects a number of seconds, got %s", value.Fmt(args[0]))
	}
	if secs > 0 {
		time.Sleep(time.Duration(secs * float64(time.Second)))
	}
	return value.Nothing{}, nil
}
