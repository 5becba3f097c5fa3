package parser

import (
	"minic/ast"
	"minic/report"
	"minic/token"
)

var compoundAssignOps = map[token.Kind]token.Kind{
	token.PLUS_EQUAL:     token.PLUS,
	token.MINUS_EQUAL:    token.MINUS,
	token.MULTIPLY_EQUAL: token.MULTIPLY,
	token.DIVIDE_EQUAL:   token.SLASH,
}

// parseExpression is the entry point for a full expression.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment implements:
//
//	assignment := logical_or ( ( = | += | -= | *= | /= ) assignment )?
//	            | logical_or ( ++ | -- )
//
// A compound assignment `x op= e` is rewritten to
// Assign(x, =, Binary(Identifier(x), op', e)). Assignment is
// right-associative; every other operator is left-associative.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseLogicalOr()

	switch p.current.Kind {
	case token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL, token.MULTIPLY_EQUAL, token.DIVIDE_EQUAL:
		opTok := p.current

		ident, ok := left.(*ast.Identifier)
		if !ok {
			panic(report.Raise(p.span(), "Invalid assignment target"))
		}

		p.advance()
		value := p.parseAssignment()

		if opTok.Kind == token.EQUAL {
			return &ast.Assign{Base: ast.Base{Line: opTok.Line}, Name: ident.Name, Op: token.EQUAL, Value: value}
		}

		underlying := compoundAssignOps[opTok.Kind]
		rewritten := &ast.Binary{
			Base:  ast.Base{Line: opTok.Line},
			Left:  &ast.Identifier{Base: ast.Base{Line: ident.Line}, Name: ident.Name},
			Op:    underlying,
			Right: value,
		}
		return &ast.Assign{Base: ast.Base{Line: opTok.Line}, Name: ident.Name, Op: token.EQUAL, Value: rewritten}

	case token.INCREMENT, token.DECREMENT:
		if ident, ok := left.(*ast.Identifier); ok {
			opTok := p.current
			p.advance()
			return &ast.Unary{Base: ast.Base{Line: opTok.Line}, Op: opTok.Kind, Operand: ident, Postfix: true}
		}
	}

	return left
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.check(token.OR) {
		opTok := p.advance()
		right := p.parseLogicalAnd()
		left = &ast.Logical{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.AND) {
		opTok := p.advance()
		right := p.parseEquality()
		left = &ast.Logical{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.check(token.EQUAL_EQUAL) || p.check(token.NOT_EQUAL) {
		opTok := p.advance()
		right := p.parseComparison()
		left = &ast.Binary{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseTerm()
	for p.check(token.LESS) || p.check(token.LESS_EQUAL) || p.check(token.GREATER) || p.check(token.GREATER_EQUAL) {
		opTok := p.advance()
		right := p.parseTerm()
		left = &ast.Binary{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		opTok := p.advance()
		right := p.parseFactor()
		left = &ast.Binary{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

func (p *Parser) parseFactor() ast.Expr {
	left := p.parsePrimary()
	for p.check(token.MULTIPLY) || p.check(token.SLASH) {
		opTok := p.advance()
		right := p.parsePrimary()
		left = &ast.Binary{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

var unaryOps = map[token.Kind]bool{
	token.NOT: true, token.MULTIPLY: true, token.AMPERSAND: true,
	token.INCREMENT: true, token.DECREMENT: true, token.PLUS: true, token.MINUS: true,
}

// parsePrimary implements:
//
//	primary := unary_op primary
//	         | literal
//	         | IDENTIFIER ( '(' argument_list? ')' )?
//	         | IDENTIFIER ( ++ | -- )
//	         | IDENTIFIER ( << | >> ) stream_chain
//	         | '(' expression ')'
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current

	if unaryOps[tok.Kind] {
		p.advance()
		operand := p.parsePrimary()
		return &ast.Unary{Base: ast.Base{Line: tok.Line}, Op: tok.Kind, Operand: operand}
	}

	switch tok.Kind {
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN, "expected ')'")
		return expr

	case token.IDENTIFIER:
		p.advance()
		name := tok.Lexeme

		switch p.current.Kind {
		case token.LPAREN:
			return p.finishCall(tok.Line, name)
		case token.INCREMENT, token.DECREMENT:
			opTok := p.advance()
			ident := &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: name}
			return &ast.Unary{Base: ast.Base{Line: opTok.Line}, Op: opTok.Kind, Operand: ident, Postfix: true}
		case token.LEFT_SHIFT, token.RIGHT_SHIFT:
			left := &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: name}
			return p.finishStreamChain(left)
		default:
			return &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: name}
		}

	// cout/cin are keywords, not identifiers, but the original grammar
	// treats them as the root of a stream chain the same way a plain
	// identifier would be.
	case token.COUT, token.CIN:
		p.advance()
		left := &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: tok.Lexeme}
		return p.finishStreamChain(left)

	default:
		return p.parseLiteral()
	}
}

func (p *Parser) finishCall(line int, callee string) ast.Expr {
	p.expect(token.LPAREN, "expected '('")

	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseAssignment())
		for p.check(token.COMMA) {
			p.advance()
			args = append(args, p.parseAssignment())
		}
	}

	p.expect(token.RPAREN, "expected ')' after arguments")
	return &ast.Call{Base: ast.Base{Line: line}, Callee: callee, Arguments: args}
}

// finishStreamChain greedily builds a left-associative Binary tree from a
// chain of << or >> operators.
func (p *Parser) finishStreamChain(left ast.Expr) ast.Expr {
	for p.check(token.LEFT_SHIFT) || p.check(token.RIGHT_SHIFT) {
		opTok := p.advance()
		right := p.parseStreamOperand()
		left = &ast.Binary{Base: ast.Base{Line: opTok.Line}, Left: left, Op: opTok.Kind, Right: right}
	}
	return left
}

// parseStreamOperand parses one operand of a stream chain: the
// pseudo-identifier endl, a parenthesized expression, a unary
// application, a plain identifier, or a literal. It never itself starts
// a nested chain — the enclosing finishStreamChain loop consumes each
// following << or >>. A call is not accepted as a bare operand.
func (p *Parser) parseStreamOperand() ast.Expr {
	tok := p.current

	switch tok.Kind {
	case token.ENDL:
		p.advance()
		return &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: "endl"}
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN, "expected ')'")
		return expr
	case token.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: tok.Lexeme}
	default:
		if unaryOps[tok.Kind] {
			p.advance()
			operand := p.parseStreamOperand()
			return &ast.Unary{Base: ast.Base{Line: tok.Line}, Op: tok.Kind, Operand: operand}
		}
		return p.parseLiteral()
	}
}

func (p *Parser) parseLiteral() ast.Expr {
	tok := p.current

	switch tok.Kind {
	case token.INTEGER_LITERAL, token.FLOAT_LITERAL, token.CHAR_LITERAL, token.STRING_LITERAL:
		p.advance()
		return &ast.Literal{Base: ast.Base{Line: tok.Line}, Value: tok.Lexeme, LiteralKind: tok.Kind}
	case token.TRUE:
		p.advance()
		return &ast.Literal{Base: ast.Base{Line: tok.Line}, Value: "true", LiteralKind: token.BOOL_LITERAL}
	case token.FALSE:
		p.advance()
		return &ast.Literal{Base: ast.Base{Line: tok.Line}, Value: "false", LiteralKind: token.BOOL_LITERAL}
	default:
		panic(report.Raise(p.span(), "expected expression, got %s", tok.Kind))
	}
}
