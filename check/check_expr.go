package check

import (
	"minic/ast"
	"minic/symtab"
	"minic/token"
)

// checkExpr walks e, returning its result type per the expression rule
// table. A failure is recorded in c.errs and errorType is returned so
// the caller can keep walking without a cascade.
func (c *Checker) checkExpr(e ast.Expr) token.Kind {
	switch expr := e.(type) {
	case *ast.Literal:
		return expr.LiteralKind

	case *ast.Identifier:
		return c.checkIdentifier(expr)

	case *ast.Unary:
		return c.checkUnary(expr)

	case *ast.Binary:
		return c.checkBinary(expr)

	case *ast.Logical:
		return c.checkLogical(expr)

	case *ast.Assign:
		return c.checkAssign(expr)

	case *ast.Call:
		return c.checkCall(expr)

	default:
		c.errorf("internal error: unknown expression node at line %d", e.StartLine())
		return errorType
	}
}

// streamPseudoIdentifiers never enter the symbol table: endl per the
// design notes, and cout/cin as the (also duck-typed) roots of a stream
// chain.
var streamPseudoIdentifiers = map[string]bool{"endl": true, "cout": true, "cin": true}

func (c *Checker) checkIdentifier(id *ast.Identifier) token.Kind {
	if streamPseudoIdentifiers[id.Name] {
		return token.STRING_LITERAL
	}
	// The parser's marker for `using namespace std;` is inert.
	if id.Name == "using_namespace_std" {
		return token.VOID
	}

	sym, ok := c.table.Resolve(id.Name)
	if !ok {
		c.errorf("Undefined variable '%s'", id.Name)
		return errorType
	}
	if sym.Kind == symtab.FUNCTION {
		c.errorf("'%s' names a function, not a variable", id.Name)
		return errorType
	}
	return effectiveType(sym.DeclaredType, sym.IsPointer)
}

func (c *Checker) checkUnary(u *ast.Unary) token.Kind {
	operandType := c.checkExpr(u.Operand)

	switch u.Op {
	case token.PLUS, token.MINUS, token.INCREMENT, token.DECREMENT:
		if !isNumeric(operandType) && operandType != errorType {
			c.errorf("operand of '%s' must be numeric", u.Op)
			return errorType
		}
		return operandType

	case token.NOT:
		return token.BOOL

	case token.MULTIPLY:
		if operandType != token.POINTER && operandType != errorType {
			c.errorf("cannot dereference non-pointer operand")
			return errorType
		}
		return token.INT

	case token.AMPERSAND:
		return token.POINTER

	default:
		c.errorf("internal error: unknown unary operator %s", u.Op)
		return errorType
	}
}

func (c *Checker) checkBinary(b *ast.Binary) token.Kind {
	leftType := c.checkExpr(b.Left)
	rightType := c.checkExpr(b.Right)

	switch b.Op {
	case token.PLUS:
		if leftType == token.STRING_LITERAL || rightType == token.STRING_LITERAL {
			return token.STRING_LITERAL
		}
		return c.checkPointerOrNumericArith(leftType, rightType)

	case token.MINUS:
		return c.checkPointerOrNumericArith(leftType, rightType)

	case token.MULTIPLY, token.SLASH:
		return c.checkNumericArith(leftType, rightType)

	case token.LEFT_SHIFT, token.RIGHT_SHIFT:
		return leftType

	case token.EQUAL_EQUAL, token.NOT_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		if !compatible(leftType, rightType) {
			c.errorf("incompatible operand types for '%s'", b.Op)
		}
		return token.BOOL

	default:
		c.errorf("internal error: unknown binary operator %s", b.Op)
		return errorType
	}
}

func (c *Checker) checkPointerOrNumericArith(leftType, rightType token.Kind) token.Kind {
	if leftType == token.POINTER && isNumeric(rightType) {
		return token.POINTER
	}
	if rightType == token.POINTER && isNumeric(leftType) {
		return token.POINTER
	}
	return c.checkNumericArith(leftType, rightType)
}

func (c *Checker) checkNumericArith(leftType, rightType token.Kind) token.Kind {
	if !isNumeric(leftType) && leftType != errorType {
		c.errorf("operand must be numeric")
	}
	if !isNumeric(rightType) && rightType != errorType {
		c.errorf("operand must be numeric")
	}
	if normalize(leftType) == token.FLOAT || normalize(rightType) == token.FLOAT {
		return token.FLOAT_LITERAL
	}
	return token.INTEGER_LITERAL
}

func (c *Checker) checkLogical(l *ast.Logical) token.Kind {
	leftType := c.checkExpr(l.Left)
	rightType := c.checkExpr(l.Right)

	if !isBoolean(leftType) && leftType != errorType {
		c.errorf("operand of '%s' must be boolean", l.Op)
	}
	if !isBoolean(rightType) && rightType != errorType {
		c.errorf("operand of '%s' must be boolean", l.Op)
	}
	return token.BOOL
}

func (c *Checker) checkAssign(a *ast.Assign) token.Kind {
	sym, ok := c.table.Resolve(a.Name)
	valueType := c.checkExpr(a.Value)

	if !ok {
		c.errorf("Undefined variable '%s'", a.Name)
		return errorType
	}
	if sym.Kind != symtab.VARIABLE && sym.Kind != symtab.PARAMETER {
		c.errorf("cannot assign to '%s'", a.Name)
		return errorType
	}

	targetType := effectiveType(sym.DeclaredType, sym.IsPointer)
	if !assignCompatible(targetType, valueType) {
		c.errorf("cannot assign value of incompatible type to '%s'", a.Name)
	}
	return targetType
}

func (c *Checker) checkCall(call *ast.Call) token.Kind {
	sym, ok := c.table.Resolve(call.Callee)
	if !ok {
		c.errorf("Undefined function '%s'", call.Callee)
		for _, arg := range call.Arguments {
			c.checkExpr(arg)
		}
		return errorType
	}
	if sym.Kind != symtab.FUNCTION {
		c.errorf("'%s' is not callable", call.Callee)
		for _, arg := range call.Arguments {
			c.checkExpr(arg)
		}
		return errorType
	}

	if len(sym.Parameters) != len(call.Arguments) {
		c.errorf("Function '%s' expects %d arguments, but got %d", call.Callee, len(sym.Parameters), len(call.Arguments))
	}

	for i, arg := range call.Arguments {
		argType := c.checkExpr(arg)
		if i >= len(sym.Parameters) {
			continue
		}
		param := sym.Parameters[i]
		paramType := effectiveType(param.Type, param.Type == token.POINTER)
		if !assignCompatible(paramType, argType) {
			c.errorf("argument %d to '%s' has an incompatible type", i+1, call.Callee)
		}
	}

	return sym.ReturnType
}
