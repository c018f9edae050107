/*
Package repl implements the interactive shell: a line-oriented loop
with a statement-boundary prompt, an inside-an-open-block prompt,
meta-commands, and a global frame that survives across submissions
until `:reset`. This mirrors the teacher's repl.Repl
(github.com/akashmaji946/go-mix/repl) — same readline + fatih/color
wiring, same NewRepl/Start/PrintBannerInfo shape — rebuilt against this
language's parser/interpreter pair and its multi-line, missing-closer
continuation rule instead of go-mix's always-single-line input. The
state machine itself lives in session.go so it can run without a real
terminal; this file only drives readline.
*/
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's fixed presentation: banner text,
// version, and the two prompts the shell displays.
type Repl struct {
	Banner         string
	Version        string
	Line           string
	StmtPrompt     string // shown at a statement boundary, e.g. ">>> "
	ContinuePrompt string // shown while inside an open block, e.g. "... "
}

// New builds a Repl with the canonical prompts for this shell.
func New(banner, version, line string) *Repl {
	return &Repl{
		Banner:         banner,
		Version:        version,
		Line:           line,
		StmtPrompt:     ">>> ",
		ContinuePrompt: "... ",
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type a statement and press enter.")
	cyanColor.Fprintln(w, "Meta-commands: :help  :vars  :reset  :load <path>")
	cyanColor.Fprintln(w, "Type 'exit' or 'quit' to leave.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against writer, preserving the Interpreter's
// global frame across submissions until `:reset`.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.StmtPrompt})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := NewSession(writer)
	for {
		if sess.InBlock() {
			rl.SetPrompt(r.ContinuePrompt)
		} else {
			rl.SetPrompt(r.StmtPrompt)
		}

		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Goodbye!")
			return
		}
		rl.SaveHistory(line)

		if err := sess.Submit(line); err != nil {
			fmt.Fprintln(writer, "Goodbye!")
			return
		}
	}
}
