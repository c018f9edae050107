/*
Package lexer performs the first stage of the pipeline: it splits a
source text into physical lines and classifies each one, without
attempting to understand the words on the line. Classification is
deliberately shallow — the parser is the component that knows what a
"set x to 10" or "repeat 5 times" line means.
*/
package lexer

import "fmt"

// Kind identifies what a source line is, before the parser ever looks
// at the words on it.
type Kind int

const (
	// STATEMENT is a non-blank, non-comment line, handed to the parser.
	STATEMENT Kind = iota
	// COMMENT is a line whose trimmed form starts with '#'.
	COMMENT
	// BLANK is a line that is empty once trimmed.
	BLANK
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case STATEMENT:
		return "STATEMENT"
	case COMMENT:
		return "COMMENT"
	case BLANK:
		return "BLANK"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one classified physical line. Line is 1-based and is carried
// forward unchanged into every AST node and diagnostic the parser and
// interpreter produce, so that an error always points at real source.
type Token struct {
	Line int
	Kind Kind
	// Text is the trimmed line for STATEMENT tokens, or the raw,
	// untrimmed line for COMMENT tokens. BLANK tokens carry an empty
	// Text.
	Text string
}
