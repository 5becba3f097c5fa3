package parser

import (
	"minic/ast"
	"minic/report"
	"minic/token"
)

func unexpectedTypeError(p *Parser) *report.LocalCompileError {
	return report.Raise(p.span(), "expected type, got %s", p.current.Kind)
}

// parseStatement implements the top-level statement grammar. It does not
// itself recover from errors; parseStatementRecovering does that at
// every point a sequence of statements is parsed (top level and inside
// blocks), so a failure here unwinds to the nearest such loop.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current.Kind {
	case token.SEMICOLON:
		p.advance()
		return nil

	case token.HASH, token.INCLUDE:
		// Inert preprocessor directive. The lexer folds `#include <...>`
		// into one token; for any other directive only `#` and the
		// directive word are in this token.
		p.advance()
		return nil

	case token.USING:
		return p.parseUsingStmt()

	case token.RETURN:
		return p.parseReturnStmt()

	case token.IF:
		return p.parseIfStmt()

	case token.WHILE:
		return p.parseWhileStmt()

	case token.FOR:
		return p.parseForStmt()

	case token.INT, token.FLOAT, token.CHAR, token.VOID, token.BOOL, token.STRING_LITERAL:
		return p.parseTypeStart()

	case token.IDENTIFIER:
		if p.current.Lexeme == "string" {
			return p.parseTypeStart()
		}
		return p.parseExprStmt()

	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseAssignment()
	p.expect(token.SEMICOLON, "expected ';' after expression")
	return &ast.ExprStmt{Base: ast.Base{Line: expr.StartLine()}, Expression: expr}
}

// parseUsingStmt implements `'using' 'namespace' 'std' ';'`, emitting
// ExpressionStatement(Identifier("using_namespace_std")).
func (p *Parser) parseUsingStmt() ast.Stmt {
	tok := p.advance() // USING
	p.expect(token.NAMESPACE, "expected 'namespace'")
	p.expect(token.STD, "expected 'std'")
	p.expect(token.SEMICOLON, "expected ';'")

	return &ast.ExprStmt{
		Base:       ast.Base{Line: tok.Line},
		Expression: &ast.Identifier{Base: ast.Base{Line: tok.Line}, Name: "using_namespace_std"},
	}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	tok := p.advance() // RETURN

	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.parseAssignment()
	}
	p.expect(token.SEMICOLON, "expected ';' after return statement")

	return &ast.Return{Base: ast.Base{Line: tok.Line}, Value: value}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	tok := p.advance() // IF
	p.expect(token.LPAREN, "expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "expected ')' after condition")
	thenBlock := p.parseBlock()

	var elseBlock *ast.Block
	if p.check(token.ELSE) {
		p.advance()
		elseBlock = p.parseBlock()
	}

	return &ast.If{Base: ast.Base{Line: tok.Line}, Condition: cond, Then: thenBlock, ElseBranch: elseBlock}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	tok := p.advance() // WHILE
	p.expect(token.LPAREN, "expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "expected ')' after condition")
	body := p.parseBlock()

	return &ast.While{Base: ast.Base{Line: tok.Line}, Condition: cond, Body: body}
}

func (p *Parser) parseForStmt() ast.Stmt {
	tok := p.advance() // FOR
	p.expect(token.LPAREN, "expected '(' after 'for'")

	var init ast.Stmt
	if !p.check(token.SEMICOLON) {
		init = p.parseForInit()
	}
	p.expect(token.SEMICOLON, "expected ';' after for-loop initializer")

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.expect(token.SEMICOLON, "expected ';' after for-loop condition")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.parseExpression()
	}
	p.expect(token.RPAREN, "expected ')' after for-loop increment")

	body := p.parseBlock()

	return &ast.For{Base: ast.Base{Line: tok.Line}, Initializer: init, Condition: cond, Increment: incr, Body: body}
}

// parseForInit implements for_init: a variable declaration (without a
// function alternative and without consuming the trailing ';', which the
// enclosing for-loop grammar owns) or a bare expression.
func (p *Parser) parseForInit() ast.Stmt {
	if isTypeStart(p.current) {
		typeTok := p.advance()
		declaredType := normalizeTypeKind(typeTok)

		isPointer := false
		if p.check(token.MULTIPLY) {
			p.advance()
			isPointer = true
		}

		nameTok := p.expect(token.IDENTIFIER, "expected identifier")
		return p.parseVariableList(typeTok.Line, declaredType, isPointer, nameTok.Lexeme)
	}

	expr := p.parseExpression()
	return &ast.ExprStmt{Base: ast.Base{Line: expr.StartLine()}, Expression: expr}
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(token.LBRACE, "expected '{'")

	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.END_OF_FILE) {
		if stmt := p.parseStatementRecovering(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(token.RBRACE, "expected '}'")

	return &ast.Block{Base: ast.Base{Line: tok.Line}, Statements: stmts}
}

// parseTypeStart implements type_start declaration_or_function.
func (p *Parser) parseTypeStart() ast.Stmt {
	typeTok := p.advance()
	declaredType := normalizeTypeKind(typeTok)
	return p.parseDeclarationOrFunction(typeTok.Line, declaredType)
}

// parseDeclarationOrFunction implements:
//
//	declaration_or_function := '*'? IDENTIFIER
//	    ( '(' param_list? ')' '{' block '}'
//	    | ( '=' expression )? ( ',' IDENTIFIER ( '=' expression )? )* ';'
//	    )
func (p *Parser) parseDeclarationOrFunction(line int, declaredType token.Kind) ast.Stmt {
	isPointer := false
	if p.check(token.MULTIPLY) {
		p.advance()
		isPointer = true
	}

	nameTok := p.expect(token.IDENTIFIER, "expected identifier")

	if p.check(token.LPAREN) {
		return p.parseFunctionDeclaration(line, declaredType, nameTok.Lexeme)
	}

	decl := p.parseVariableList(line, declaredType, isPointer, nameTok.Lexeme)
	p.expect(token.SEMICOLON, "expected ';' after variable declaration")
	return decl
}

// parseVariableList parses the comma-separated variable tail shared by
// top-level declarations and for-loop initializers, without consuming a
// trailing terminator. A single variable yields a VariableDeclaration;
// more than one is wrapped in a synthetic Block, one declaration per
// variable.
func (p *Parser) parseVariableList(line int, declaredType token.Kind, isPointer bool, firstName string) ast.Stmt {
	decls := []*ast.VariableDeclaration{p.finishOneVariable(line, declaredType, isPointer, firstName)}

	for p.check(token.COMMA) {
		p.advance()
		nameTok := p.expect(token.IDENTIFIER, "expected identifier")
		decls = append(decls, p.finishOneVariable(nameTok.Line, declaredType, false, nameTok.Lexeme))
	}

	if len(decls) == 1 {
		return decls[0]
	}

	stmts := make([]ast.Stmt, len(decls))
	for i, d := range decls {
		stmts[i] = d
	}
	return &ast.Block{Base: ast.Base{Line: line}, Statements: stmts}
}

func (p *Parser) finishOneVariable(line int, declaredType token.Kind, isPointer bool, name string) *ast.VariableDeclaration {
	var init ast.Expr
	if p.check(token.EQUAL) {
		p.advance()
		init = p.parseAssignment()
	}
	return &ast.VariableDeclaration{
		Base: ast.Base{Line: line}, DeclaredType: declaredType, IsPointer: isPointer,
		Name: name, Initializer: init,
	}
}

func (p *Parser) parseFunctionDeclaration(line int, returnType token.Kind, name string) ast.Stmt {
	p.expect(token.LPAREN, "expected '('")

	var params []ast.Param
	if !p.check(token.RPAREN) {
		params = append(params, p.parseParam())
		for p.check(token.COMMA) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN, "expected ')'")

	body := p.parseBlock()

	return &ast.FunctionDeclaration{
		Base: ast.Base{Line: line}, Name: name, ReturnType: returnType,
		Parameters: params, Body: body,
	}
}

// parseParam parses one `type_start '*'? IDENTIFIER`. A pointer
// parameter's Type is recorded as POINTER outright, matching the
// checker's `is_pointer = (type == POINTER)` rule.
func (p *Parser) parseParam() ast.Param {
	if !isTypeStart(p.current) {
		panic(unexpectedTypeError(p))
	}
	typeTok := p.advance()
	paramType := normalizeTypeKind(typeTok)

	if p.check(token.MULTIPLY) {
		p.advance()
		paramType = token.POINTER
	}

	nameTok := p.expect(token.IDENTIFIER, "expected parameter name")
	return ast.Param{Name: nameTok.Lexeme, Type: paramType}
}
