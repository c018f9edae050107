package parser

import "github.com/akashmaji946/english/ast"

// parseIf implements the if-chain state machine: seen_if -> (seen_elif
// | seen_else | closed), seen_elif -> (seen_elif | seen_else | closed),
// seen_else -> closed only. It handles both the canonical `if ... then`
// and the alias `when ... then` opener.
func parseIf(p *Parser, line int, rest string) (ast.Stmt, error) {
	cond, err := parseConditionThen(line, rest)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Base: ast.Base{Ln: line}}

	branch, err := p.parseIfBranch(cond, line)
	if err != nil {
		return nil, err
	}
	node.Branches = append(node.Branches, branch)

	state := "seen_if"
	for {
		if p.atEnd() {
			return nil, &ParseError{Line: p.lastLine(), Kind: MissingCloser, Detail: "if is missing \"end if\""}
		}
		closer := p.peek()
		switch {
		case otherwiseIfPrefixMatch(closer.Text) != "":
			if state == "seen_else" {
				return nil, &ParseError{Line: closer.Line, Kind: UnexpectedCloser, Detail: "\"otherwise if\" cannot follow \"otherwise\""}
			}
			prefix := otherwiseIfPrefixMatch(closer.Text)
			p.next()
			elifRest := closer.Text[len(prefix):]
			elifCond, err := parseConditionThen(closer.Line, elifRest)
			if err != nil {
				return nil, err
			}
			elifBranch, err := p.parseIfBranch(elifCond, closer.Line)
			if err != nil {
				return nil, err
			}
			node.Branches = append(node.Branches, elifBranch)
			state = "seen_elif"
		case otherwiseExact.has(closer.Text):
			if state == "seen_else" {
				return nil, &ParseError{Line: closer.Line, Kind: UnexpectedCloser, Detail: "an if may have only one \"otherwise\""}
			}
			p.next()
			body, err := p.parseBlock(ifTerminators)
			if err != nil {
				return nil, err
			}
			node.Else = body
			state = "seen_else"
		case ifTrailingCloser.has(closer.Text):
			p.next()
			return node, nil
		default:
			return nil, &ParseError{Line: closer.Line, Kind: UnexpectedCloser, Detail: "unexpected line inside if: " + closer.Text}
		}
	}
}

func otherwiseIfPrefixMatch(line string) string {
	for _, p := range otherwiseIfPrefixes {
		if hasPrefixWord(line, p) {
			return p
		}
	}
	return ""
}

// parseIfBranch parses one branch's body up to (but not consuming) the
// next if-chain transition.
func (p *Parser) parseIfBranch(cond ast.Expr, line int) (ast.IfBranch, error) {
	body, err := p.parseBlock(ifTerminators)
	if err != nil {
		return ast.IfBranch{}, err
	}
	return ast.IfBranch{Condition: cond, Body: body}, nil
}

// parseConditionThen strips the mandatory trailing " then" from a
// condition opener and validates the condition text's bracket/quote
// balance: the parser validates balance but never builds an expression
// tree.
func parseConditionThen(line int, rest string) (ast.Expr, error) {
	cond, ok := stripTrailingWord(rest, "then")
	if !ok || cond == "" {
		return ast.Expr{}, &ParseError{Line: line, Kind: MalformedCondition, Detail: "expected a condition ending in \"then\""}
	}
	if err := validateBalanced(cond); err != nil {
		return ast.Expr{}, &ParseError{Line: line, Kind: MalformedCondition, Detail: err.Error()}
	}
	return ast.Expr{Text: cond, Ln: line}, nil
}
