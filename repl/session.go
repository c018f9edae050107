package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/english/interp"
	"github.com/akashmaji946/english/parser"
)

// Session holds the REPL's accumulating-input state machine, factored
// out of Start so it can run (and be tested) without a real terminal:
// Start feeds it one readline result at a time; tests feed it a
// scripted sequence of lines directly.
type Session struct {
	in      *interp.Interpreter
	writer  io.Writer
	pending []string
}

// NewSession builds a Session with a fresh Interpreter writing to w.
func NewSession(w io.Writer) *Session {
	in := interp.New()
	in.SetWriter(w)
	return &Session{in: in, writer: w}
}

// InBlock reports whether the session is mid-way through an open
// block, i.e. the next prompt should be the continuation prompt.
func (s *Session) InBlock() bool { return len(s.pending) > 0 }

// exitSignal is returned by Submit to tell Start the session is over.
type exitSignal struct{}

func (exitSignal) Error() string { return "exit" }

// Submit feeds one line of raw input (meta-commands and plain
// statements alike) through the REPL's rules: blank lines and
// exit/quit are only recognized at a statement boundary; a statement
// that parses as missing its closer is buffered for the next line
// instead of reported as an error.
func (s *Session) Submit(line string) error {
	trimmed := strings.TrimSpace(line)

	if !s.InBlock() {
		switch trimmed {
		case "":
			return nil
		case "exit", "quit":
			return exitSignal{}
		}
		if s.runMeta(trimmed) {
			return nil
		}
	}

	s.pending = append(s.pending, line)
	stmts, perr := parser.Parse(strings.Join(s.pending, "\n"))
	if perr == nil {
		if err := s.in.Run(stmts); err != nil {
			redColor.Fprintf(s.writer, "%s\n", err.Error())
		}
		s.pending = nil
		return nil
	}
	if isMissingCloser(perr) {
		return nil
	}
	redColor.Fprintf(s.writer, "%s\n", perr.Error())
	s.pending = nil
	return nil
}

func (s *Session) runMeta(trimmed string) bool {
	switch {
	case trimmed == ":help":
		cyanColor.Fprintln(s.writer, "Meta-commands: :help  :vars  :reset  :load <path>")
		return true
	case trimmed == ":vars":
		for name, v := range s.in.Global {
			fmt.Fprintf(s.writer, "%s = %s\n", name, v.String())
		}
		return true
	case trimmed == ":reset":
		s.in = interp.New()
		s.in.SetWriter(s.writer)
		greenColor.Fprintln(s.writer, "Global state reset.")
		return true
	case strings.HasPrefix(trimmed, ":load "):
		path := strings.TrimSpace(strings.TrimPrefix(trimmed, ":load "))
		s.loadFile(path)
		return true
	}
	return false
}

func (s *Session) loadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(s.writer, "cannot read %s: %v\n", path, err)
		return
	}
	stmts, perr := parser.Parse(string(data))
	if perr != nil {
		redColor.Fprintf(s.writer, "%s\n", perr.Error())
		return
	}
	if err := s.in.Run(stmts); err != nil {
		redColor.Fprintf(s.writer, "%s\n", err.Error())
	}
}

func isMissingCloser(err error) bool {
	pe, ok := err.(*parser.ParseError)
	return ok && pe.Kind == parser.MissingCloser
}
