// Package check implements the two-pass semantic/type analysis that
// decorates a parsed program with diagnostics before it may reach the
// emitter.
package check

import (
	"fmt"

	"minic/ast"
	"minic/symtab"
	"minic/token"
	"minic/util"
)

// errorType is an internal sentinel result kind for an expression whose
// own check already failed; it is compatible with everything so one
// mistake does not cascade into a wall of follow-on diagnostics.
const errorType token.Kind = -1

// Checker performs pass-1 function hoisting followed by a pass-2
// statement walk, collecting every diagnostic before raising a single
// aggregate failure.
type Checker struct {
	table *symtab.Table
	errs  []error

	currentFunctionName string
	currentReturnType   token.Kind
	inFunctionBody       bool
}

// New constructs a Checker with a fresh symbol table.
func New() *Checker {
	return &Checker{table: symtab.New()}
}

// AggregateError wraps every diagnostic collected across a full check
// pass; the checker raises exactly one of these rather than surfacing
// errors statement by statement.
type AggregateError struct {
	Errors []error
}

func (a *AggregateError) Error() string {
	if len(a.Errors) == 1 {
		return a.Errors[0].Error()
	}
	return fmt.Sprintf("%d semantic errors, first: %s", len(a.Errors), a.Errors[0].Error())
}

// Check runs both passes over program. It returns nil on success, or a
// single *AggregateError bundling every diagnostic collected across the
// whole program otherwise.
func (c *Checker) Check(program []ast.Stmt) error {
	c.hoistFunctions(program)
	for _, stmt := range program {
		c.checkStmt(stmt)
	}

	if len(c.errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: c.errs}
}

// hoistFunctions is pass 1: every top-level FunctionDeclaration is
// inserted into the global scope before any statement is walked, so
// forward calls resolve.
func (c *Checker) hoistFunctions(program []ast.Stmt) {
	for _, stmt := range program {
		fn, ok := stmt.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}

		sym := &symtab.Symbol{
			Name:       fn.Name,
			Kind:       symtab.FUNCTION,
			ReturnType: fn.ReturnType,
			Parameters: util.Map(fn.Parameters, toSymtabParam),
		}
		if !c.table.Define(sym) {
			c.errorf("duplicate function '%s'", fn.Name)
		}
	}
}

func toSymtabParam(p ast.Param) symtab.Param {
	return symtab.Param{Name: p.Name, Type: p.Type}
}

func (c *Checker) errorf(format string, args ...interface{}) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

// -----------------------------------------------------------------------------
// Type-kind classification shared by expression and statement rules.

// normalize collapses a literal kind onto the declared-type kind it
// widens to, so a variable's declared_type and an expression's
// literal_kind can be compared on equal footing.
func normalize(k token.Kind) token.Kind {
	switch k {
	case token.INTEGER_LITERAL:
		return token.INT
	case token.FLOAT_LITERAL:
		return token.FLOAT
	case token.CHAR_LITERAL:
		return token.CHAR
	case token.BOOL_LITERAL, token.TRUE, token.FALSE:
		return token.BOOL
	default:
		return k
	}
}

func isNumeric(k token.Kind) bool {
	n := normalize(k)
	return n == token.INT || n == token.FLOAT
}

func isBoolean(k token.Kind) bool {
	return normalize(k) == token.BOOL
}

// compatible implements the general Compatibility rule used by
// comparisons: identical kinds; any two numeric kinds; any two boolean
// kinds; POINTER <-> INTEGER_LITERAL for null-pointer comparisons.
func compatible(a, b token.Kind) bool {
	if a == errorType || b == errorType {
		return true
	}
	if normalize(a) == normalize(b) {
		return true
	}
	if isNumeric(a) && isNumeric(b) {
		return true
	}
	if isBoolean(a) && isBoolean(b) {
		return true
	}
	if (a == token.POINTER && b == token.INTEGER_LITERAL) || (b == token.POINTER && a == token.INTEGER_LITERAL) {
		return true
	}
	return false
}

// assignCompatible implements the narrower assignment/parameter rule:
// the value type must equal the target type, except FLOAT accepts
// INTEGER_LITERAL/INT.
func assignCompatible(target, value token.Kind) bool {
	if target == errorType || value == errorType {
		return true
	}
	if normalize(target) == normalize(value) {
		return true
	}
	if target == token.FLOAT && (value == token.INTEGER_LITERAL || value == token.INT) {
		return true
	}
	return false
}

// effectiveType returns the type a declared_type/is_pointer pair, or a
// POINTER-typed parameter, presents to the checker.
func effectiveType(declaredType token.Kind, isPointer bool) token.Kind {
	if isPointer || declaredType == token.POINTER {
		return token.POINTER
	}
	return declaredType
}
