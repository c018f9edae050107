/*
Package host implements two built-ins whose effects reach outside the
interpreter's own memory: graphical window primitives and an embedded
HTTP demo. The retrieval pack has no GUI toolkit or embeddable window
library anywhere in it (the teacher's own std/http.go wraps net/http
directly for its HTTP built-ins), so both surfaces here are implemented
against the standard library only — net/http and net/http/httptest.
Built-ins in this package are registered into the same global frame as
package builtins and invoked through the identical call path user
functions use.
*/
package host

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/akashmaji946/english/value"
)

// Fn mirrors builtins.Fn so host callables compose with the
// interpreter's global frame the same way.
type Fn func(args []value.Value, line int) (value.Value, error)

// Builtin is a host-provided callable.
type Builtin struct {
	FnName string
	Fn     Fn
}

func (b Builtin) Kind() value.Type { return value.CallableType }
func (b Builtin) String() string   { return fmt.Sprintf("<host %s>", b.FnName) }
func (b Builtin) Name() string     { return b.FnName }

// All returns every host-provided callable, ready to seed an
// Interpreter's global frame alongside builtins.All().
func All() map[string]value.Value {
	return map[string]value.Value{
		"web_demo_get": Builtin{FnName: "web_demo_get", Fn: webDemoGet},
		"pixel_window": Builtin{FnName: "pixel_window", Fn: pixelWindow},
	}
}

func typeErr(line int, format string, args ...any) error {
	return value.Errf(line, value.TypeMismatch, format, args...)
}

// webDemoGet is a small embedded web demo: it spins up an in-process
// httptest server that echoes the requested path back in its response
// body, issues one GET against it, and returns the body as a string.
// This is a synchronous call that returns a value; the window
// primitive below is a no-op that also returns at once.
//
// Syntax: web_demo_get(path)
func webDemoGet(args []value.Value, line int) (value.Value, error) {
	if len(args) != 1 {
		return nil, value.Errf(line, value.ArityMismatch, "web_demo_get expects 1 argument, got %d", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, typeErr(line, "web_demo_get expects a string path, got %s", value.Fmt(args[0]))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "hello from %s", r.URL.Path)
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + path.Value)
	if err != nil {
		return nil, value.Errf(line, value.TypeMismatch, "web_demo_get failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, value.Errf(line, value.TypeMismatch, "web_demo_get failed to read response: %v", err)
	}
	return value.String{Value: string(body)}, nil
}

// pixelWindow is the opaque graphical-window primitive: a synchronous
// call that would normally block until the window is closed. No window
// toolkit exists anywhere in the retrieval pack, so this stands in as a
// documented no-op rather than fabricating a GUI dependency.
//
// Syntax: pixel_window(width, height)
func pixelWindow(args []value.Value, line int) (value.Value, error) {
	if len(args) != 2 {
		return nil, value.Errf(line, value.ArityMismatch, "pixel_window expects 2 arguments, got %d", len(args))
	}
	if _, ok := args[0].(value.Integer); !ok {
		return nil, typeErr(line, "pixel_window width must be an integer, got %s", value.Fmt(args[0]))
	}
	if _, ok := args[1].(value.Integer); !ok {
		return nil, typeErr(line, "pixel_window height must be an integer, got %s", value.Fmt(args[1]))
	}
	return value.Nothing{}, nil
}
