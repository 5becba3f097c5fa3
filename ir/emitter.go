package ir

import (
	"fmt"

	"minic/ast"
	"minic/token"
)

// Emitter performs syntax-directed emission of a checked AST into a flat
// instruction list, minting fresh temporaries and labels as it goes.
type Emitter struct {
	instructions []Instruction

	tempCounter  int
	labelCounter int
}

// New constructs an empty Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Emit lowers every top-level statement in program in order and returns
// the resulting instruction list.
func (e *Emitter) Emit(program []ast.Stmt) []Instruction {
	for _, stmt := range program {
		e.lowerStmt(stmt)
	}
	return e.instructions
}

func (e *Emitter) newTemp() string {
	e.tempCounter++
	return fmt.Sprintf("t%d", e.tempCounter)
}

func (e *Emitter) newLabel() string {
	e.labelCounter++
	return fmt.Sprintf("L%d", e.labelCounter)
}

func (e *Emitter) emit(op Opcode, arg1, arg2, result string) {
	e.instructions = append(e.instructions, Instruction{Opcode: op, Arg1: arg1, Arg2: arg2, Result: result})
}

func (e *Emitter) lastOpcode() (Opcode, bool) {
	if len(e.instructions) == 0 {
		return 0, false
	}
	return e.instructions[len(e.instructions)-1].Opcode, true
}

// -----------------------------------------------------------------------------
// Expression lowering.

// lowerExpr lowers e and returns the name of the temporary holding its
// result.
func (e *Emitter) lowerExpr(expr ast.Expr) string {
	switch node := expr.(type) {
	case *ast.Literal:
		t := e.newTemp()
		e.emit(STORE, node.Value, "", t)
		return t

	case *ast.Identifier:
		t := e.newTemp()
		e.emit(LOAD, node.Name, "", t)
		return t

	case *ast.Binary:
		return e.lowerBinary(node)

	case *ast.Unary:
		return e.lowerUnary(node)

	case *ast.Logical:
		return e.lowerLogical(node)

	case *ast.Assign:
		return e.lowerAssign(node)

	case *ast.Call:
		return e.lowerCall(node)

	default:
		t := e.newTemp()
		e.emit(STORE, "", "", t)
		return t
	}
}

// lowerBinary implements arithmetic/comparison lowering, plus the
// PRINT-based lowering for stream chains: `cout << x` lowers each
// right-hand operand of a `<<` link to a PRINT; `cin >> x` links carry no
// analogous instruction since the opcode set has no input primitive.
func (e *Emitter) lowerBinary(b *ast.Binary) string {
	if b.Op == token.LEFT_SHIFT || b.Op == token.RIGHT_SHIFT {
		return e.lowerStreamLink(b)
	}

	leftTemp := e.lowerExpr(b.Left)
	rightTemp := e.lowerExpr(b.Right)
	resultTemp := e.newTemp()

	switch b.Op {
	case token.PLUS:
		e.emit(ADD, leftTemp, rightTemp, resultTemp)
	case token.MINUS:
		e.emit(SUB, leftTemp, rightTemp, resultTemp)
	case token.MULTIPLY:
		e.emit(MUL, leftTemp, rightTemp, resultTemp)
	case token.SLASH:
		e.emit(DIV, leftTemp, rightTemp, resultTemp)
	case token.EQUAL_EQUAL, token.NOT_EQUAL, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		e.emit(CMP, leftTemp, rightTemp, resultTemp)
	default:
		e.emit(CMP, leftTemp, rightTemp, resultTemp)
	}

	return resultTemp
}

func (e *Emitter) lowerStreamLink(b *ast.Binary) string {
	if ident, ok := b.Left.(*ast.Identifier); !ok || (ident.Name != "cout" && ident.Name != "cin") {
		e.lowerExpr(b.Left)
	}

	rightTemp := e.lowerExpr(b.Right)
	if b.Op == token.LEFT_SHIFT {
		e.emit(PRINT, rightTemp, "", "")
	}
	return rightTemp
}

// lowerUnary lowers the six unary forms using only the closed opcode
// set; +/-/!/deref/addr-of/inc-dec have no dedicated opcodes, so each is
// expressed in terms of ADD/SUB/CMP/LOAD/STORE.
func (e *Emitter) lowerUnary(u *ast.Unary) string {
	switch u.Op {
	case token.PLUS:
		return e.lowerExpr(u.Operand)

	case token.MINUS:
		operandTemp := e.lowerExpr(u.Operand)
		zeroTemp := e.newTemp()
		e.emit(STORE, "0", "", zeroTemp)
		resultTemp := e.newTemp()
		e.emit(SUB, zeroTemp, operandTemp, resultTemp)
		return resultTemp

	case token.NOT:
		operandTemp := e.lowerExpr(u.Operand)
		zeroTemp := e.newTemp()
		e.emit(STORE, "0", "", zeroTemp)
		resultTemp := e.newTemp()
		e.emit(CMP, operandTemp, zeroTemp, resultTemp)
		return resultTemp

	case token.MULTIPLY:
		operandTemp := e.lowerExpr(u.Operand)
		resultTemp := e.newTemp()
		e.emit(LOAD, operandTemp, "", resultTemp)
		return resultTemp

	case token.AMPERSAND:
		ident, _ := u.Operand.(*ast.Identifier)
		resultTemp := e.newTemp()
		name := ""
		if ident != nil {
			name = "&" + ident.Name
		}
		e.emit(LOAD, name, "", resultTemp)
		return resultTemp

	case token.INCREMENT, token.DECREMENT:
		return e.lowerIncDec(u)

	default:
		return e.lowerExpr(u.Operand)
	}
}

func (e *Emitter) lowerIncDec(u *ast.Unary) string {
	ident, ok := u.Operand.(*ast.Identifier)
	if !ok {
		return e.lowerExpr(u.Operand)
	}

	loadedTemp := e.newTemp()
	e.emit(LOAD, ident.Name, "", loadedTemp)

	oneTemp := e.newTemp()
	e.emit(STORE, "1", "", oneTemp)

	resultTemp := e.newTemp()
	if u.Op == token.INCREMENT {
		e.emit(ADD, loadedTemp, oneTemp, resultTemp)
	} else {
		e.emit(SUB, loadedTemp, oneTemp, resultTemp)
	}
	e.emit(STORE, resultTemp, "", ident.Name)

	if u.Postfix {
		return loadedTemp
	}
	return resultTemp
}

// lowerLogical approximates && and || with CMP, matching the checker's
// treatment of comparisons — the opcode set has no dedicated boolean
// combinator.
func (e *Emitter) lowerLogical(l *ast.Logical) string {
	leftTemp := e.lowerExpr(l.Left)
	rightTemp := e.lowerExpr(l.Right)
	resultTemp := e.newTemp()
	e.emit(CMP, leftTemp, rightTemp, resultTemp)
	return resultTemp
}

func (e *Emitter) lowerAssign(a *ast.Assign) string {
	valueTemp := e.lowerExpr(a.Value)
	e.emit(STORE, valueTemp, "", a.Name)
	return valueTemp
}

// lowerCall lowers each argument in order, pushes them left to right,
// calls, pops one per argument, then materializes the return value.
func (e *Emitter) lowerCall(call *ast.Call) string {
	argTemps := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		argTemps[i] = e.lowerExpr(arg)
	}

	for _, argTemp := range argTemps {
		e.emit(PUSH, argTemp, "", "")
	}

	e.emit(CALL, call.Callee, "", "")

	for range argTemps {
		e.emit(POP, "", "", "")
	}

	resultTemp := e.newTemp()
	e.emit(STORE, "retval", "", resultTemp)
	return resultTemp
}
