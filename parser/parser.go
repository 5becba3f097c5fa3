// Package parser implements single-lookahead recursive descent over a
// token.Lexer, producing the ast sum types with synchronising error
// recovery.
package parser

import (
	"minic/ast"
	"minic/lexer"
	"minic/report"
	"minic/token"
)

// Parser pulls one token at construction, then one per advance().
type Parser struct {
	lex     *lexer.Lexer
	current token.Token
	errs    []error
}

// New constructs a Parser positioned at the first token of lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.current = *lex.NextToken()
	return p
}

// Parse consumes the whole token stream, returning every statement that
// parsed successfully and every diagnostic raised along the way. A
// statement that fails to parse is skipped after synchronize(); N
// statements with K errors yield up to N-K nodes.
func (p *Parser) Parse() ([]ast.Stmt, []error) {
	var stmts []ast.Stmt
	for !p.check(token.END_OF_FILE) {
		if stmt := p.parseStatementRecovering(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.errs
}

// parseStatementRecovering runs parseStatement, catching a raised
// LocalCompileError, recording it, and synchronizing to the next
// statement boundary. Internal errors (any other panic value) propagate.
func (p *Parser) parseStatementRecovering() (stmt ast.Stmt) {
	defer func() {
		if x := recover(); x != nil {
			lce, ok := x.(*report.LocalCompileError)
			if !ok {
				panic(x)
			}
			p.errs = append(p.errs, lce)
			p.synchronize()
			stmt = nil
		}
	}()

	return p.parseStatement()
}

// synchronize advances until it consumes ';' or '}', or until the next
// token starts a new statement.
func (p *Parser) synchronize() {
	for {
		if p.check(token.END_OF_FILE) {
			return
		}

		tok := p.advance()
		if tok.Kind == token.SEMICOLON || tok.Kind == token.RBRACE {
			return
		}

		switch p.current.Kind {
		case token.INT, token.FLOAT, token.CHAR, token.VOID,
			token.IF, token.WHILE, token.FOR, token.RETURN:
			return
		}
	}
}

// -----------------------------------------------------------------------------
// Lookahead helpers.

func (p *Parser) check(kind token.Kind) bool {
	return p.current.Kind == kind
}

func (p *Parser) advance() token.Token {
	prev := p.current
	p.current = *p.lex.NextToken()
	return prev
}

// expect asserts the current token's kind, consuming it, or raises a
// syntactic error.
func (p *Parser) expect(kind token.Kind, message string) token.Token {
	if !p.check(kind) {
		panic(report.Raise(p.span(), "%s, got %s", message, p.current.Kind))
	}
	return p.advance()
}

func (p *Parser) span() *report.TextSpan {
	return &report.TextSpan{
		StartLine: p.current.Line, StartCol: 1,
		EndLine: p.current.Line, EndCol: 1,
	}
}

// isTypeStart reports whether tok can begin a type_start production:
// INT | FLOAT | CHAR | VOID | BOOL | STRING, or (defensively, per the
// grammar's second alternative) an identifier whose lexeme is "string".
func isTypeStart(tok token.Token) bool {
	switch tok.Kind {
	case token.INT, token.FLOAT, token.CHAR, token.VOID, token.BOOL, token.STRING_LITERAL:
		return true
	case token.IDENTIFIER:
		return tok.Lexeme == "string"
	default:
		return false
	}
}

// normalizeTypeKind maps a type_start token to the declared_type kind:
// the lexer folds the "string" keyword to STRING_LITERAL already, so
// this only matters for the defensive IDENTIFIER("string") alternative.
func normalizeTypeKind(tok token.Token) token.Kind {
	if tok.Kind == token.IDENTIFIER {
		return token.STRING_LITERAL
	}
	return tok.Kind
}
