package parser

import "github.com/akashmaji946/english/ast"

// parseRepeatKeyword handles lines opening with "repeat": either the
// canonical `repeat N times` or the canonical `repeat while C`.
func parseRepeatKeyword(p *Parser, line int, rest string) (ast.Stmt, error) {
	if after, ok := expectWord(rest, "while"); ok {
		return finishRepeatWhile(p, line, after, "do" /* no trailing word for canonical form */, false)
	}
	return finishRepeatCount(p, line, rest, "times")
}

// parseDoKeyword handles the alias opener `do N times`.
func parseDoKeyword(p *Parser, line int, rest string) (ast.Stmt, error) {
	return finishRepeatCount(p, line, rest, "times")
}

// parseWhileKeyword handles the alias opener `while C do`, whose
// trailing keyword "do" sits at the end of the line rather than after
// a separate "while" keyword.
func parseWhileKeyword(p *Parser, line int, rest string) (ast.Stmt, error) {
	return finishRepeatWhile(p, line, rest, "do", true)
}

func finishRepeatCount(p *Parser, line int, rest string, trailing string) (ast.Stmt, error) {
	countText, ok := stripTrailingWord(rest, trailing)
	if !ok || countText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<count> " + trailing + "\""}
	}
	if err := validateBalanced(countText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	body, err := p.parseBlock(repeatTrailingCloser.has)
	if err != nil {
		return nil, err
	}
	p.expectCloser(repeatTrailingCloser, "end repeat")
	return &ast.RepeatCount{
		Base:  ast.Base{Ln: line},
		Count: ast.Expr{Text: countText, Ln: line},
		Body:  body,
	}, nil
}

// finishRepeatWhile parses the condition for a while-loop opener. When
// hasTrailing is true the condition is followed by a trailing keyword
// (the `while C do` alias); otherwise the condition runs to end of
// line (the canonical `repeat while C`).
func finishRepeatWhile(p *Parser, line int, rest string, trailing string, hasTrailing bool) (ast.Stmt, error) {
	condText := rest
	if hasTrailing {
		stripped, ok := stripTrailingWord(rest, trailing)
		if !ok || stripped == "" {
			return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<condition> " + trailing + "\""}
		}
		condText = stripped
	}
	if condText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected a loop condition"}
	}
	if err := validateBalanced(condText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	body, err := p.parseBlock(repeatTrailingCloser.has)
	if err != nil {
		return nil, err
	}
	p.expectCloser(repeatTrailingCloser, "end repeat")
	return &ast.RepeatWhile{
		Base:      ast.Base{Ln: line},
		Condition: ast.Expr{Text: condText, Ln: line},
		Body:      body,
	}, nil
}

// parseForKeyword handles `for each X in E` and `for every X in E`.
func parseForKeyword(p *Parser, line int, rest string) (ast.Stmt, error) {
	var after string
	var ok bool
	if after, ok = expectWord(rest, "each"); !ok {
		if after, ok = expectWord(rest, "every"); !ok {
			return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"each\" or \"every\" after \"for\""}
		}
	}
	name, exprText, ok := splitOnWord(after, "in")
	if !ok || name == "" || exprText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<name> in <expression>\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	body, err := p.parseBlock(forTrailingCloser.has)
	if err != nil {
		return nil, err
	}
	p.expectCloser(forTrailingCloser, "end for")
	return &ast.ForEach{
		Base:     ast.Base{Ln: line},
		Var:      name,
		Iterable: ast.Expr{Text: exprText, Ln: line},
		Body:     body,
	}, nil
}

// expectCloser consumes the current line, which parseBlock already
// confirmed matches set; it exists only to make call sites read as
// "and now consume the closer" rather than a bare p.next().
func (p *Parser) expectCloser(set closerSet, _ string) {
	p.next()
}
