package parser

import "github.com/akashmaji946/english/ast"

// parseSay handles the canonical `say E` and its aliases `print E` /
// `show E`.
func parseSay(p *Parser, line int, rest string) (ast.Stmt, error) {
	if rest == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected an expression to say"}
	}
	if err := validateBalanced(rest); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.Say{Base: ast.Base{Ln: line}, Value: ast.Expr{Text: rest, Ln: line}}, nil
}

// parseAsk handles `ask E and store in X`.
func parseAsk(p *Parser, line int, rest string) (ast.Stmt, error) {
	promptText, tail, ok := splitOnWord(rest, "and")
	if !ok || promptText == "" || tail == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"ask <prompt> and store in <name>\""}
	}
	afterStore, ok := expectWord(tail, "store")
	if !ok {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"store in <name>\" after \"and\""}
	}
	name, ok := expectWord(afterStore, "in")
	if !ok || name == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"in <name>\" after \"store\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(promptText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.Ask{
		Base:   ast.Base{Ln: line},
		Prompt: ast.Expr{Text: promptText, Ln: line},
		Target: name,
	}, nil
}

// parseStop handles `stop [loop]` and its alias `break [loop]`; any
// trailing word (loop/repeat/for) is accepted and ignored, since the
// control signal always targets the nearest enclosing loop regardless
// of what that loop is called.
func parseStop(p *Parser, line int, rest string) (ast.Stmt, error) {
	return &ast.LoopCtrl{Base: ast.Base{Ln: line}, Kind: ast.CtrlBreak}, nil
}

// parseSkip handles `skip [loop]` and its alias `next [loop]`.
func parseSkip(p *Parser, line int, rest string) (ast.Stmt, error) {
	return &ast.LoopCtrl{Base: ast.Base{Ln: line}, Kind: ast.CtrlContinue}, nil
}
