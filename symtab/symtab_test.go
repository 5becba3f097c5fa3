package symtab

import (
	"testing"

	"minic/token"
)

// TestStackDiscipline is testable property #4: for every balanced
// sequence of EnterScope/ExitScope calls, exactly one scope (the global
// scope) survives, and it is never popped even by an unbalanced ExitScope.
func TestStackDiscipline(t *testing.T) {
	table := New()
	if got := table.Depth(); got != 1 {
		t.Fatalf("fresh table Depth() = %d, want 1", got)
	}

	table.EnterScope()
	table.EnterScope()
	table.EnterScope()
	if got := table.Depth(); got != 4 {
		t.Fatalf("after 3 EnterScope, Depth() = %d, want 4", got)
	}

	table.ExitScope()
	table.ExitScope()
	table.ExitScope()
	if got := table.Depth(); got != 1 {
		t.Fatalf("after balancing ExitScope, Depth() = %d, want 1", got)
	}

	// An extra ExitScope beyond the global scope must be a no-op, not a
	// panic or an empty stack.
	table.ExitScope()
	if got := table.Depth(); got != 1 {
		t.Fatalf("ExitScope on global scope changed Depth() to %d, want 1", got)
	}
}

func TestDefineAndResolveAcrossScopes(t *testing.T) {
	table := New()
	table.Define(&Symbol{Name: "g", Kind: VARIABLE, DeclaredType: token.INT})

	table.EnterScope()
	table.Define(&Symbol{Name: "x", Kind: VARIABLE, DeclaredType: token.FLOAT})

	if _, ok := table.ResolveLocal("g"); ok {
		t.Error("ResolveLocal(\"g\") found the global symbol from an inner scope, want local-only")
	}
	if sym, ok := table.Resolve("g"); !ok || sym.DeclaredType != token.INT {
		t.Errorf("Resolve(\"g\") = %+v, %v, want the global INT symbol", sym, ok)
	}
	if sym, ok := table.Resolve("x"); !ok || sym.DeclaredType != token.FLOAT {
		t.Errorf("Resolve(\"x\") = %+v, %v, want the local FLOAT symbol", sym, ok)
	}

	table.ExitScope()
	if _, ok := table.Resolve("x"); ok {
		t.Error("Resolve(\"x\") found the popped scope's symbol")
	}
}

func TestDefineDuplicateInSameScopeFails(t *testing.T) {
	table := New()
	if ok := table.Define(&Symbol{Name: "x", Kind: VARIABLE, DeclaredType: token.INT}); !ok {
		t.Fatal("first Define(\"x\") failed")
	}
	if ok := table.Define(&Symbol{Name: "x", Kind: VARIABLE, DeclaredType: token.FLOAT}); ok {
		t.Error("second Define(\"x\") in the same scope succeeded, want failure")
	}
}
