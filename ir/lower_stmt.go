package ir

import "minic/ast"

// lowerStmt lowers s according to spec.md's statement lowering rules.
func (e *Emitter) lowerStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case nil:
		return

	case *ast.VariableDeclaration:
		var initTemp string
		if stmt.Initializer != nil {
			initTemp = e.lowerExpr(stmt.Initializer)
		}
		e.emit(STORE, initTemp, "", stmt.Name)

	case *ast.FunctionDeclaration:
		e.emit(LABEL, stmt.Name, "", "")
		for _, inner := range stmt.Body.Statements {
			e.lowerStmt(inner)
		}
		if op, ok := e.lastOpcode(); !ok || op != RET {
			e.emit(RET, "", "", "")
		}

	case *ast.Block:
		for _, inner := range stmt.Statements {
			e.lowerStmt(inner)
		}

	case *ast.If:
		elseLabel := e.newLabel()
		endLabel := e.newLabel()

		e.lowerExpr(stmt.Condition)
		e.emit(JE, elseLabel, "", "")
		e.lowerStmt(stmt.Then)
		e.emit(JMP, endLabel, "", "")
		e.emit(LABEL, elseLabel, "", "")
		if stmt.ElseBranch != nil {
			e.lowerStmt(stmt.ElseBranch)
		}
		e.emit(LABEL, endLabel, "", "")

	case *ast.While:
		startLabel := e.newLabel()
		endLabel := e.newLabel()

		e.emit(LABEL, startLabel, "", "")
		e.lowerExpr(stmt.Condition)
		e.emit(JE, endLabel, "", "")
		e.lowerStmt(stmt.Body)
		e.emit(JMP, startLabel, "", "")
		e.emit(LABEL, endLabel, "", "")

	case *ast.For:
		e.lowerStmt(stmt.Initializer)

		startLabel := e.newLabel()
		endLabel := e.newLabel()
		e.emit(LABEL, startLabel, "", "")

		if stmt.Condition != nil {
			e.lowerExpr(stmt.Condition)
			e.emit(JE, endLabel, "", "")
		}

		e.lowerStmt(stmt.Body)

		if stmt.Increment != nil {
			e.lowerExpr(stmt.Increment)
		}

		e.emit(JMP, startLabel, "", "")
		e.emit(LABEL, endLabel, "", "")

	case *ast.Return:
		if stmt.Value != nil {
			e.lowerExpr(stmt.Value)
		}
		e.emit(RET, "", "", "")

	case *ast.ExprStmt:
		e.lowerExpr(stmt.Expression)
	}
}
