package parser

import "github.com/akashmaji946/english/ast"

// parseDefineKeyword handles `define F [with P...]` and its alias
// `function F [with P...]`.
func parseDefineKeyword(p *Parser, line int, rest string) (ast.Stmt, error) {
	name, after, _ := splitLeadingWord(rest)
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected a function name after \"define\""}
	}
	var params []string
	if after != "" {
		paramText, ok := expectWord(after, "with")
		if !ok {
			return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"with\" before parameters"}
		}
		var err error
		params, err = parseParamList(paramText, line)
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock(defineTrailingCloser.has)
	if err != nil {
		return nil, err
	}
	p.expectCloser(defineTrailingCloser, "end define")
	return &ast.DefineFn{
		Base:   ast.Base{Ln: line},
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

// parseReturn handles the canonical `return E` and bare `return`.
func parseReturn(p *Parser, line int, rest string) (ast.Stmt, error) {
	return finishReturn(line, rest)
}

// parseGiveBack handles the alias `give back E`.
func parseGiveBack(p *Parser, line int, rest string) (ast.Stmt, error) {
	after, ok := expectWord(rest, "back")
	if !ok {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"give back <expression>\""}
	}
	return finishReturn(line, after)
}

func finishReturn(line int, exprText string) (ast.Stmt, error) {
	if exprText == "" {
		return &ast.Return{Base: ast.Base{Ln: line}}, nil
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	e := ast.Expr{Text: exprText, Ln: line}
	return &ast.Return{Base: ast.Base{Ln: line}, Value: &e}, nil
}

// parseCallStmt handles `call F [with A...]` (and its alias `run F
// [with A...]`) used as a statement: `call F ...` at the start of a
// statement is always a call statement, and its return value is
// discarded.
func parseCallStmt(p *Parser, line int, rest string) (ast.Stmt, error) {
	name, after, _ := splitLeadingWord(rest)
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected a function name after \"call\""}
	}
	var argTexts []string
	if after != "" {
		argsText, ok := expectWord(after, "with")
		if !ok {
			return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"with\" before call arguments"}
		}
		parts, err := splitTopLevelArgs(argsText)
		if err != nil {
			return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
		}
		argTexts = parts
	}
	args := make([]ast.Expr, len(argTexts))
	for i, t := range argTexts {
		args[i] = ast.Expr{Text: t, Ln: line}
	}
	return &ast.CallStmt{Base: ast.Base{Ln: line}, Name: name, Args: args}, nil
}
