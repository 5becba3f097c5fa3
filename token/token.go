// Package token defines the terminal alphabet shared by the lexer, parser,
// checker, and IR emitter.
package token

// Kind enumerates every terminal kind the lexer can produce.
type Kind int

const (
	LPAREN Kind = iota
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	MULTIPLY

	AMPERSAND
	PIPE

	NOT
	NOT_EQUAL
	EQUAL
	EQUAL_EQUAL

	LESS
	LESS_EQUAL
	LEFT_SHIFT

	GREATER
	GREATER_EQUAL
	RIGHT_SHIFT

	AND
	OR
	INCREMENT
	DECREMENT
	ARROW

	PLUS_EQUAL
	MINUS_EQUAL
	MULTIPLY_EQUAL
	DIVIDE_EQUAL

	IDENTIFIER
	STRING_LITERAL
	CHAR_LITERAL
	INTEGER_LITERAL
	FLOAT_LITERAL
	BOOL_LITERAL

	IF
	ELSE
	WHILE
	FOR
	RETURN

	INT
	FLOAT
	CHAR
	VOID
	BOOL

	USING
	NAMESPACE
	STD
	COUT
	CIN
	ENDL
	TRUE
	FALSE

	HASH
	INCLUDE
	POINTER

	END_OF_FILE
)

var kindNames = map[Kind]string{
	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACE: "LBRACE", RBRACE: "RBRACE",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET",
	COMMA: "COMMA", DOT: "DOT", MINUS: "MINUS", PLUS: "PLUS",
	SEMICOLON: "SEMICOLON", SLASH: "SLASH", MULTIPLY: "MULTIPLY",
	AMPERSAND: "AMPERSAND", PIPE: "PIPE",
	NOT: "NOT", NOT_EQUAL: "NOT_EQUAL", EQUAL: "EQUAL", EQUAL_EQUAL: "EQUAL_EQUAL",
	LESS: "LESS", LESS_EQUAL: "LESS_EQUAL", LEFT_SHIFT: "LEFT_SHIFT",
	GREATER: "GREATER", GREATER_EQUAL: "GREATER_EQUAL", RIGHT_SHIFT: "RIGHT_SHIFT",
	AND: "AND", OR: "OR", INCREMENT: "INCREMENT", DECREMENT: "DECREMENT", ARROW: "ARROW",
	PLUS_EQUAL: "PLUS_EQUAL", MINUS_EQUAL: "MINUS_EQUAL",
	MULTIPLY_EQUAL: "MULTIPLY_EQUAL", DIVIDE_EQUAL: "DIVIDE_EQUAL",
	IDENTIFIER: "IDENTIFIER", STRING_LITERAL: "STRING_LITERAL", CHAR_LITERAL: "CHAR_LITERAL",
	INTEGER_LITERAL: "INTEGER_LITERAL", FLOAT_LITERAL: "FLOAT_LITERAL", BOOL_LITERAL: "BOOL_LITERAL",
	IF: "IF", ELSE: "ELSE", WHILE: "WHILE", FOR: "FOR", RETURN: "RETURN",
	INT: "INT", FLOAT: "FLOAT", CHAR: "CHAR", VOID: "VOID", BOOL: "BOOL",
	USING: "USING", NAMESPACE: "NAMESPACE", STD: "STD", COUT: "COUT", CIN: "CIN",
	ENDL: "ENDL", TRUE: "TRUE", FALSE: "FALSE",
	HASH: "HASH", INCLUDE: "INCLUDE", POINTER: "POINTER",
	END_OF_FILE: "END_OF_FILE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords maps reserved identifier spellings to their keyword kind, per
// the fixed table in spec.md §6.
var Keywords = map[string]Kind{
	"int":       INT,
	"float":     FLOAT,
	"char":      CHAR,
	"void":      VOID,
	"bool":      BOOL,
	"if":        IF,
	"else":      ELSE,
	"while":     WHILE,
	"for":       FOR,
	"return":    RETURN,
	"true":      TRUE,
	"false":     FALSE,
	"cout":      COUT,
	"cin":       CIN,
	"endl":      ENDL,
	"using":     USING,
	"namespace": NAMESPACE,
	"std":       STD,
	"include":   INCLUDE,
	"string":    STRING_LITERAL,
}

// Token is a single lexical unit: its kind, the exact or canonical source
// text it was built from, and the 1-based source line it starts on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}
