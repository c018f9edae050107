package parser

import "github.com/akashmaji946/english/ast"

// parseSet handles the canonical `set X to E`.
func parseSet(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseAssignForm(line, rest, "to")
}

// parseLet handles the alias `let X be E`.
func parseLet(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseAssignForm(line, rest, "be")
}

// parseAssignForm implements the shared shape of `set`/`let`: target
// name, separator keyword, expression.
func parseAssignForm(line int, rest string, sep string) (ast.Stmt, error) {
	name, exprText, ok := splitOnWord(rest, sep)
	if !ok || name == "" || exprText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<name> " + sep + " <expression>\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.Assign{
		Base:   ast.Base{Ln: line},
		Target: name,
		Value:  ast.Expr{Text: exprText, Ln: line},
	}, nil
}

// parsePut handles the alias `put E into X`, the one assignment form
// whose field order is reversed relative to the canonical `set`.
func parsePut(p *Parser, line int, rest string) (ast.Stmt, error) {
	exprText, name, ok := splitOnWord(rest, "into")
	if !ok || name == "" || exprText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<expression> into <name>\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.Assign{
		Base:   ast.Base{Ln: line},
		Target: name,
		Value:  ast.Expr{Text: exprText, Ln: line},
	}, nil
}

// parseAdd handles the canonical `add E to X`.
func parseAdd(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseMathMutEThenX(line, rest, "to", ast.OpAdd)
}

// parseIncrease handles the alias `increase X by E`.
func parseIncrease(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseMathMutXThenE(line, rest, "by", ast.OpAdd)
}

// parseSubtract handles the canonical `subtract E from X`.
func parseSubtract(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseMathMutEThenX(line, rest, "from", ast.OpSub)
}

// parseDecrease handles the alias `decrease X by E`.
func parseDecrease(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseMathMutXThenE(line, rest, "by", ast.OpSub)
}

// parseMultiply handles `multiply X by E` (canonical only — there is
// no alias for multiply/divide).
func parseMultiply(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseMathMutXThenE(line, rest, "by", ast.OpMul)
}

// parseDivide handles `divide X by E`.
func parseDivide(p *Parser, line int, rest string) (ast.Stmt, error) {
	return parseMathMutXThenE(line, rest, "by", ast.OpDiv)
}

// parseMathMutEThenX parses "<expr> <sep> <name>" (add/subtract's
// canonical field order: operand before target).
func parseMathMutEThenX(line int, rest string, sep string, op ast.MutOp) (ast.Stmt, error) {
	exprText, name, ok := splitOnWord(rest, sep)
	if !ok || name == "" || exprText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<expression> " + sep + " <name>\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.MathMut{
		Base:    ast.Base{Ln: line},
		Op:      op,
		Target:  name,
		Operand: ast.Expr{Text: exprText, Ln: line},
	}, nil
}

// parseMathMutXThenE parses "<name> <sep> <expr>" (increase/decrease's
// and multiply/divide's field order: target before operand).
func parseMathMutXThenE(line int, rest string, sep string, op ast.MutOp) (ast.Stmt, error) {
	name, exprText, ok := splitOnWord(rest, sep)
	if !ok || name == "" || exprText == "" {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected \"<name> " + sep + " <expression>\""}
	}
	if !isIdentifier(name) {
		return nil, &ParseError{Line: line, Kind: BadParameterList, Detail: "invalid variable name: " + name}
	}
	if err := validateBalanced(exprText); err != nil {
		return nil, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return &ast.MathMut{
		Base:    ast.Base{Ln: line},
		Op:      op,
		Target:  name,
		Operand: ast.Expr{Text: exprText, Ln: line},
	}, nil
}
