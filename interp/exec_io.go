package interp

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/value"
)

// execSay implements `say E` (and `print E`, `show E`): evaluate E and
// write its textual rendering followed by a newline to in.Writer.
func (in *Interpreter) execSay(n *ast.Say) error {
	v, err := in.evalExpr(n.Value)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Writer, v.String())
	return nil
}

// execAsk implements `ask E and store in X`: write the prompt, read one
// line of input, and bind the typed text (always a string — there is
// no implicit numeric coercion on input) to X.
func (in *Interpreter) execAsk(n *ast.Ask) error {
	prompt, err := in.evalExpr(n.Prompt)
	if err != nil {
		return err
	}
	fmt.Fprint(in.Writer, prompt.String())
	line, _ := in.Reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	in.setVar(n.Target, value.String{Value: line})
	return nil
}
