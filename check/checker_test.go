package check

import (
	"strings"
	"testing"

	"minic/ast"
	"minic/lexer"
	"minic/parser"
)

func mustParse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	p := parser.New(lexer.New(source))
	stmts, errs := p.Parse()
	if len(errs) != 0 {
		t.Fatalf("parse(%q) failed: %v", source, errs)
	}
	return stmts
}

func checkErrors(source string) []error {
	p := parser.New(lexer.New(source))
	stmts, _ := p.Parse()

	err := New().Check(stmts)
	if err == nil {
		return nil
	}
	agg, ok := err.(*AggregateError)
	if !ok {
		return []error{err}
	}
	return agg.Errors
}

func TestCleanProgramPasses(t *testing.T) {
	stmts := mustParse(t, `int x = 5;`)
	if err := New().Check(stmts); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
}

// TestIdempotenceOnSuccess is testable property #5: a second check pass
// over the same AST, with a fresh symbol table, also passes.
func TestIdempotenceOnSuccess(t *testing.T) {
	stmts := mustParse(t, `
		int add(int a, int b) { return a + b; }
		int main() { int x = add(1, 2); return x; }
	`)

	if err := New().Check(stmts); err != nil {
		t.Fatalf("first Check() = %v, want nil", err)
	}
	if err := New().Check(stmts); err != nil {
		t.Fatalf("second Check() on the same AST = %v, want nil", err)
	}
}

// TestScenarioB is end-to-end scenario B: referencing an undeclared name
// is a semantic error naming the variable.
func TestScenarioB(t *testing.T) {
	errs := checkErrors(`int y = z;`)
	if len(errs) == 0 {
		t.Fatal("expected a semantic error, got none")
	}
	if !strings.Contains(errs[0].Error(), "Undefined variable 'z'") {
		t.Errorf("errs[0] = %q, want it to contain \"Undefined variable 'z'\"", errs[0])
	}
}

// TestScenarioC is end-to-end scenario C: a function may be called
// before its own textual declaration, thanks to pass-1 hoisting.
func TestScenarioC(t *testing.T) {
	stmts := mustParse(t, `int f() { return 1; } int main() { return f(); }`)
	if err := New().Check(stmts); err != nil {
		t.Fatalf("Check() = %v, want nil (forward reference should resolve)", err)
	}
}

// TestScenarioE is end-to-end scenario E: an arity mismatch names the
// function and both counts.
func TestScenarioE(t *testing.T) {
	errs := checkErrors(`int g(int a, int b) { return a; } int main() { return g(1); }`)

	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "Function 'g' expects 2 arguments, but got 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want one containing the arity-mismatch message", errs)
	}
}

// TestScenarioF is end-to-end scenario F: a for-loop's own scope hides
// its initializer's variables from the surrounding block.
func TestScenarioF(t *testing.T) {
	errs := checkErrors(`
		int main() {
			int x = 0;
			for (int i = 0; i < 3; ++i) { x = x + i; }
			return i;
		}
	`)

	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "Undefined variable 'i'") {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want an undefined-variable error for 'i' after the loop", errs)
	}
}

func TestNoShadowingInInnerScope(t *testing.T) {
	errs := checkErrors(`
		int main() {
			int x = 0;
			if (x < 1) { int x = 1; }
			return x;
		}
	`)

	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "redeclaration of 'x'") {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want a redeclaration error for shadowed 'x'", errs)
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	errs := checkErrors(`return 1;`)
	if len(errs) == 0 || !strings.Contains(errs[0].Error(), "return outside") {
		t.Errorf("errs = %v, want a return-outside-function error", errs)
	}
}

func TestVoidFunctionReturningValueIsAnError(t *testing.T) {
	errs := checkErrors(`void f() { return 1; }`)
	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "cannot return a value") {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want a void-returning-value error", errs)
	}
}

func TestStreamChainTypeChecksWithoutDeclaringPseudoIdentifiers(t *testing.T) {
	errs := checkErrors(`int main() { cout << "hi" << endl; return 0; }`)
	if len(errs) != 0 {
		t.Errorf("errs = %v, want none (cout/cin/endl must not require declaration)", errs)
	}
}

func TestNonBooleanConditionIsAnError(t *testing.T) {
	errs := checkErrors(`int main() { if (1 + 1) { return 0; } return 1; }`)
	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "condition must be boolean") {
			found = true
		}
	}
	if !found {
		t.Errorf("errs = %v, want a non-boolean-condition error", errs)
	}
}
