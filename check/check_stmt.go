package check

import (
	"minic/ast"
	"minic/symtab"
	"minic/token"
)

// checkStmt walks s, mutating the checker's scope stack and
// current-function state as required and recording any diagnostic.
func (c *Checker) checkStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case nil:
		return

	case *ast.ExprStmt:
		c.checkExpr(stmt.Expression)

	case *ast.Block:
		c.checkBlock(stmt)

	case *ast.If:
		c.checkCondition(stmt.Condition, "if")
		c.checkBlock(stmt.Then)
		if stmt.ElseBranch != nil {
			c.checkBlock(stmt.ElseBranch)
		}

	case *ast.While:
		c.checkCondition(stmt.Condition, "while")
		c.checkBlock(stmt.Body)

	case *ast.For:
		c.checkFor(stmt)

	case *ast.Return:
		c.checkReturn(stmt)

	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(stmt)

	case *ast.FunctionDeclaration:
		c.checkFunctionDeclaration(stmt)

	default:
		c.errorf("internal error: unknown statement node at line %d", s.StartLine())
	}
}

// checkBlock pushes a scope, walks every statement, and guarantees the
// scope is popped even if a statement's expressions raised no error but
// left checker state otherwise untouched — there is no early-return path
// here, so the pop always runs via defer.
func (c *Checker) checkBlock(b *ast.Block) {
	c.table.EnterScope()
	defer c.table.ExitScope()

	for _, stmt := range b.Statements {
		c.checkStmt(stmt)
	}
}

func (c *Checker) checkCondition(cond ast.Expr, construct string) {
	condType := c.checkExpr(cond)
	if !isBoolean(condType) && condType != errorType {
		c.errorf("%s condition must be boolean", construct)
	}
}

// checkFor implements the for-loop's single enclosing scope. Per the
// documented open question, a synthetic multi-variable initializer Block
// is unwrapped into that same scope rather than opening a nested one;
// the loop body, itself a genuine Block, still gets its own.
func (c *Checker) checkFor(f *ast.For) {
	c.table.EnterScope()
	defer c.table.ExitScope()

	if f.Initializer != nil {
		if block, ok := f.Initializer.(*ast.Block); ok {
			for _, decl := range block.Statements {
				c.checkStmt(decl)
			}
		} else {
			c.checkStmt(f.Initializer)
		}
	}

	if f.Condition != nil {
		c.checkCondition(f.Condition, "for")
	}
	if f.Increment != nil {
		c.checkExpr(f.Increment)
	}

	c.checkBlock(f.Body)
}

func (c *Checker) checkReturn(r *ast.Return) {
	if !c.inFunctionBody {
		c.errorf("return outside of a function")
		return
	}

	if r.Value == nil {
		if c.currentReturnType != token.VOID {
			c.errorf("function '%s' must return a value", c.currentFunctionName)
		}
		return
	}

	valueType := c.checkExpr(r.Value)
	if c.currentReturnType == token.VOID {
		c.errorf("void function '%s' cannot return a value", c.currentFunctionName)
		return
	}
	if !assignCompatible(c.currentReturnType, valueType) {
		c.errorf("return value is incompatible with the declared return type of '%s'", c.currentFunctionName)
	}
}

func (c *Checker) checkVariableDeclaration(v *ast.VariableDeclaration) {
	if c.table.ResolveAny(v.Name) {
		c.errorf("redeclaration of '%s'", v.Name)
	}

	if v.Initializer != nil {
		initType := c.checkExpr(v.Initializer)
		targetType := effectiveType(v.DeclaredType, v.IsPointer)
		if !assignCompatible(targetType, initType) {
			c.errorf("initializer for '%s' has an incompatible type", v.Name)
		}
	}

	c.table.Define(&symtab.Symbol{
		Name: v.Name, Kind: symtab.VARIABLE,
		DeclaredType: v.DeclaredType, IsPointer: v.IsPointer,
	})
}

// checkFunctionDeclaration pushes one scope covering both the parameter
// list and the body — the body's own Block is not given a second,
// nested scope, matching "push scope, insert each parameter ...,
// check the body, pop scope" as a single unit.
func (c *Checker) checkFunctionDeclaration(fn *ast.FunctionDeclaration) {
	prevName, prevReturn, prevInBody := c.currentFunctionName, c.currentReturnType, c.inFunctionBody
	c.currentFunctionName = fn.Name
	c.currentReturnType = fn.ReturnType
	c.inFunctionBody = true

	c.table.EnterScope()

	defer func() {
		c.table.ExitScope()
		c.currentFunctionName, c.currentReturnType, c.inFunctionBody = prevName, prevReturn, prevInBody
	}()

	for _, param := range fn.Parameters {
		isPointer := param.Type == token.POINTER
		c.table.Define(&symtab.Symbol{
			Name: param.Name, Kind: symtab.PARAMETER,
			DeclaredType: param.Type, IsPointer: isPointer,
		})
	}

	for _, stmt := range fn.Body.Statements {
		c.checkStmt(stmt)
	}
}
