/*
Package parser consumes the lexer's token stream and produces the
ordered statement tree from package ast, or a ParseError. Block-opening
statements ("if", "repeat", "for each",
"define") recursively parse their body until a matching closer is
found; expressions themselves are kept as raw text (package exprlang
parses and evaluates them later).

This mirrors the teacher's parser package layout
(github.com/akashmaji946/go-mix/parser), split into one file per
statement family (parser_assignments.go, parser_loops.go, ...), with
the dispatch table and cursor machinery here in parser.go.
*/
package parser

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/akashmaji946/english/ast"
	"github.com/akashmaji946/english/lexer"
)

// Parser walks a filtered stream of STATEMENT tokens (COMMENT and
// BLANK tokens are dropped up front, since the lexer already stamped
// every surviving token with its true source line).
type Parser struct {
	lines []lexer.Token
	pos   int
}

// New builds a Parser over tokens, discarding COMMENT and BLANK lines.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{}
	for _, t := range tokens {
		if t.Kind == lexer.STATEMENT {
			p.lines = append(p.lines, t)
		}
	}
	return p
}

// Parse lexes and parses src in one call; it is the convenience entry
// point cmd/english and the REPL use.
func Parse(src string) ([]ast.Stmt, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

// ParseProgram parses the whole token stream as a top-level block: no
// closer is ever expected, so reaching the end of input is success.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	stmts, err := p.parseBlock(nil)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		// parseBlock(nil) returns only at EOF, so this is a defensive
		// check; a closer with no matching opener is reported as
		// UnexpectedCloser by parseStatement.
		return nil, &ParseError{Line: p.peek().Line, Kind: UnexpectedCloser, Detail: "unexpected block closer: " + p.peek().Text}
	}
	return stmts, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.lines) }

func (p *Parser) peek() *lexer.Token {
	if p.atEnd() {
		return nil
	}
	return &p.lines[p.pos]
}

func (p *Parser) next() lexer.Token {
	t := p.lines[p.pos]
	p.pos++
	return t
}

// terminator decides whether the current line ends the block being
// parsed; nil terminator means "top level, never terminate early".
type terminator func(line string) bool

// parseBlock consumes statements until isTerminator matches the
// current line (without consuming that line) or input is exhausted.
// Reaching EOF with a non-nil isTerminator is a missing_closer error:
// the parser never produces an unclosed block node.
func (p *Parser) parseBlock(isTerminator terminator) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		if p.atEnd() {
			if isTerminator == nil {
				return stmts, nil
			}
			return nil, &ParseError{Line: p.lastLine(), Kind: MissingCloser, Detail: "block is missing its closing statement"}
		}
		line := p.peek()
		if isTerminator != nil && isTerminator(line.Text) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) lastLine() int {
	if len(p.lines) == 0 {
		return 0
	}
	return p.lines[len(p.lines)-1].Line
}

// parseStatement dispatches on the leading word of the current line.
// This is the one place alias folding happens: every alias leading
// word names the same handler as its canonical spelling, so handlers
// themselves never branch on synonyms.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.next()
	word, rest := splitLeadingWord(tok.Text)

	handler, ok := dispatch[word]
	if !ok {
		if ifTerminators(tok.Text) || repeatTrailingCloser.has(tok.Text) ||
			forTrailingCloser.has(tok.Text) || defineTrailingCloser.has(tok.Text) {
			return nil, &ParseError{Line: tok.Line, Kind: UnexpectedCloser, Detail: "unexpected block closer: " + tok.Text}
		}
		if stmt, ok := tryExprStmt(tok); ok {
			return stmt, nil
		}
		return nil, p.unknownStatementError(tok)
	}
	return handler(p, tok.Line, rest)
}

// stmtHandler parses one statement form given the text remaining after
// its leading keyword has already been consumed.
type stmtHandler func(p *Parser, line int, rest string) (ast.Stmt, error)

var dispatch = map[string]stmtHandler{
	"set": parseSet,
	"let": parseLet,
	"put": parsePut,

	"say":   parseSay,
	"print": parseSay,
	"show":  parseSay,

	"ask": parseAsk,

	"add":      parseAdd,
	"increase": parseIncrease,

	"subtract": parseSubtract,
	"decrease": parseDecrease,

	"multiply": parseMultiply,
	"divide":   parseDivide,

	"create": parseCreateList,
	"make":   parseMakeList,

	"remove": parseRemove,
	"take":   parseTake,

	"if":   parseIf,
	"when": parseIf,

	"repeat": parseRepeatKeyword,
	"do":     parseDoKeyword,
	"while":  parseWhileKeyword,

	"for": parseForKeyword,

	"define":   parseDefineKeyword,
	"function": parseDefineKeyword,

	"return": parseReturn,
	"give":   parseGiveBack,

	"call": parseCallStmt,
	"run":  parseCallStmt,

	"stop":  parseStop,
	"break": parseStop,

	"skip": parseSkip,
	"next": parseSkip,
}

// unknownStatementError builds the UnknownStatement ParseError, adding
// a fuzzy "did you mean" suggestion when the leading word is close
// (edit distance <= 2) to a known opener. A bare expression is also a
// legal statement (ExprStmt), so the line is only an error if it does
// not even parse as one — in practice that almost never rejects a
// truly-unknown line, so unknown leading words here are rare typos of
// a keyword rather than stray expressions; we still prefer reporting
// the typo over silently treating every unrecognized line as an
// expression statement, since the parser should never silently skip an
// unparsed line, and ExprStmt is meant to stay rare (mainly built-in
// side-effect calls).
func (p *Parser) unknownStatementError(tok lexer.Token) error {
	word, _ := splitLeadingWord(tok.Text)
	suggestion := bestSuggestion(word)
	return &ParseError{
		Line:       tok.Line,
		Kind:       UnknownStatement,
		Detail:     "unrecognized statement: " + tok.Text,
		Suggestion: suggestion,
	}
}

// tryExprStmt recognizes a line as a bare expression statement only
// when it looks like a call (the documented rare case: "mainly for
// built-in side-effect calls"), i.e. it contains a '(' — this avoids
// ExprStmt silently swallowing genuine typos of keyword statements.
func tryExprStmt(tok lexer.Token) (ast.Stmt, bool) {
	if !containsRune(tok.Text, '(') {
		return nil, false
	}
	if err := validateBalanced(tok.Text); err != nil {
		return nil, false
	}
	return &ast.ExprStmt{Base: ast.Base{Ln: tok.Line}, Value: ast.Expr{Text: tok.Text, Ln: tok.Line}}, true
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// bestSuggestion finds the closest known opener word to word within
// edit distance 2, using the fuzzy-matching library the rest of this
// retrieval pack already relies on for exactly this kind of ranked
// near-miss lookup (opal-lang/opal's decorator-name suggestions).
func bestSuggestion(word string) string {
	best, bestDist := "", 3
	for _, target := range openerWords {
		if d := fuzzy.LevenshteinDistance(word, target); d < bestDist {
			best, bestDist = target, d
		}
	}
	return best
}
