package parser

import "github.com/akashmaji946/english/ast"

// parseCreateList handles the canonical `create list X`.
func parseCreateList(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseListCreateForm(line, rest)
}

// parseMakeList handles the alias `make list X`.
func parseMakeList(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseListCreateForm(line, rest)
}

func parseListCreateForm(line int, rest string) (ast.Stmt, error) {
	after, ok := expectWord(rest, "list")
	if !ok || after == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"list <name>\""}
	}
	if !isIdentifier(after) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + after}
	}
	return &ast.ListCreate{Base: ast.Base{Ln: line}, Target: after}, nil
}

// parseRemove handles the canonical `remove E from X`.
func parseRemove(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseListRemoveForm(line, rest)
}

// parseTake handles the alias `take E from X`.
func parseTake(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseListRemoveForm(line, rest)
}

func parseListRemoveForm(line int, rest string) (ast.Stmt, error) {
	exprText, name, ok := splitOnWord(rest, "from")
	if !ok || name == "" || exprText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<expression> from <name>\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.ListRemove{
		Base:   ast.Base{Ln: line},
		Target: name,
		Value:  ast.Expr{Text: exprText, Ln: line},
	}, nil
}
