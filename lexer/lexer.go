package lexer

import (
	"fmt"
	"strings"
)

// LexicalError reports a source line that the lexer refuses to hand to
// the parser at all — currently only an embedded NUL byte. It carries
// the 1-based line number the way every later diagnostic in the
// pipeline does (see parser.ParseError, value.RuntimeError).
type LexicalError struct {
	Line   int
	Reason string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// bom is the UTF-8 encoding of U+FEFF, tolerated only at the very start
// of the source.
const bom = string(rune(0xFEFF))

// Lex splits src into physical lines and classifies each one. Line
// numbers are 1-based and counted on the raw (pre-trim) text, so that a
// BOM or embedded blank line never shifts later diagnostics.
//
// A leading BOM is stripped before splitting. An embedded NUL anywhere
// in the source is rejected with a LexicalError naming the line it
// occurs on — the lexer is the only stage that ever rejects a whole
// source outright; everything after it works line by line.
func Lex(src string) ([]Token, error) {
	src = strings.TrimPrefix(src, bom)

	lines := splitLines(src)
	tokens := make([]Token, 0, len(lines))
	for i, raw := range lines {
		lineNo := i + 1
		if strings.IndexByte(raw, 0) >= 0 {
			return nil, &LexicalError{Line: lineNo, Reason: "source contains a null byte"}
		}
		tokens = append(tokens, classify(lineNo, raw))
	}
	return tokens, nil
}

// splitLines breaks src on '\n', tolerating a trailing '\r' from
// CRLF-terminated files. A trailing newline does not produce a
// synthetic final empty line, matching how editors count lines.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	raw := strings.Split(src, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}

// classify turns one raw physical line into a Token: BLANK if nothing
// remains after trimming, COMMENT if the trimmed form opens with '#',
// otherwise STATEMENT carrying the trimmed text.
func classify(lineNo int, raw string) Token {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Token{Line: lineNo, Kind: BLANK}
	case strings.HasPrefix(trimmed, "#"):
		return Token{Line: lineNo, Kind: COMMENT, Text: raw}
	default:
		return Token{Line: lineNo, Kind: STATEMENT, Text: trimmed}
	}
}
