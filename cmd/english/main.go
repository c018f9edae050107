/*
cmd/english is the command-line driver: it owns flag parsing, file/REPL
dispatch, and exit codes, delegating all language behavior to packages
lexer/parser/interp. Flags are parsed with spf13/cobra's rootCmd/Flags()
idiom (github.com/aledsdavies/opal/cli/main.go), the one command-line
parsing library anywhere in the retrieval pack.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/english/interp"
	"github.com/akashmaji946/english/parser"
	"github.com/akashmaji946/english/repl"
)

const version = "0.1.0"

// Exit codes: 0 success, 1 parse/runtime error, 2 CLI usage error.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is the testable core of main: it builds and executes the cobra
// command tree against args, writing program/REPL output to stdout,
// and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	var (
		checkOnly bool
		maxLoop   int
		showVer   bool
	)

	code := exitSuccess
	rootCmd := &cobra.Command{
		Use:           "english [file]",
		Short:         "Run or check a plain-English program",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if showVer {
				fmt.Fprintln(cmd.OutOrStdout(), "english version "+version)
				return nil
			}

			if len(positional) == 0 {
				r := repl.New("english", version, "----------------------------------------")
				r.Start(cmd.OutOrStdout())
				return nil
			}

			path := positional[0]
			src, err := os.ReadFile(path)
			if err != nil {
				code = exitUsage
				return fmt.Errorf("cannot read %s: %w", path, err)
			}

			stmts, perr := parser.Parse(string(src))
			if perr != nil {
				code = exitFailure
				return perr
			}
			if checkOnly {
				return nil
			}

			in := interp.New()
			in.MaxLoopIterations = maxLoop
			in.SetWriter(cmd.OutOrStdout())
			if rerr := in.Run(stmts); rerr != nil {
				code = exitFailure
				return rerr
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "parse only; exit 0 if parsing succeeds")
	rootCmd.Flags().IntVar(&maxLoop, "max-loop-iterations", 100000, "per-loop iteration cap before runaway_loop fires")
	rootCmd.Flags().BoolVar(&showVer, "version", false, "print the version string and exit")
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if code == exitSuccess {
			code = exitUsage
		}
		return code
	}
	return code
}
