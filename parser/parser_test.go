package parser

import (
	"testing"

	"github.com/kr/pretty"

	"minic/ast"
	"minic/lexer"
	"minic/token"
)

func parse(source string) ([]ast.Stmt, []error) {
	p := New(lexer.New(source))
	return p.Parse()
}

// TestDeterminism is testable property #2: parsing the same source twice
// yields structurally equal ASTs.
func TestDeterminism(t *testing.T) {
	sources := []string{
		`int x = 5;`,
		`int f(int a, int b) { return a + b; }`,
		`if (x < 2) { return 0; } else { return 1; }`,
		`for (int i = 0, j = 1; i < 3; ++i) { x = x + i; }`,
		`cout << "hi" << endl;`,
	}

	for _, src := range sources {
		first, errs1 := parse(src)
		second, errs2 := parse(src)

		if len(errs1) != 0 || len(errs2) != 0 {
			t.Fatalf("parse(%q) produced errors: %v / %v", src, errs1, errs2)
		}

		if diff := pretty.Diff(first, second); len(diff) != 0 {
			t.Errorf("parse(%q) not deterministic:\n%s", src, diff)
		}
	}
}

// TestCompoundAssignmentEquivalence is testable property #7: `x op= e;`
// parses to the same AST as `x = x op (e);`.
func TestCompoundAssignmentEquivalence(t *testing.T) {
	cases := []struct{ compound, expanded string }{
		{`x += 1;`, `x = x + (1);`},
		{`x -= y;`, `x = x - (y);`},
		{`x *= 2;`, `x = x * (2);`},
		{`x /= 2;`, `x = x / (2);`},
	}

	for _, c := range cases {
		compoundAST, errs1 := parse(c.compound)
		expandedAST, errs2 := parse(c.expanded)

		if len(errs1) != 0 || len(errs2) != 0 {
			t.Fatalf("parse errors for %q / %q: %v / %v", c.compound, c.expanded, errs1, errs2)
		}

		if diff := pretty.Diff(compoundAST, expandedAST); len(diff) != 0 {
			t.Errorf("%q and %q parsed differently:\n%s", c.compound, c.expanded, diff)
		}
	}
}

// TestSynchronizationProgress is testable property #3: after any parse
// error, the parser has consumed at least one token or reached EOF, so it
// can never loop forever on a malformed statement.
func TestSynchronizationProgress(t *testing.T) {
	sources := []string{
		`int x = ;`,
		`if (x < ) { }`,
		`int f(int) { }`,
		`x +;`,
	}

	for _, src := range sources {
		// parse() returning at all demonstrates progress: a parser that
		// failed to synchronize would loop forever inside Parse()'s
		// !check(END_OF_FILE) loop.
		_, errs := parse(src)
		if len(errs) == 0 {
			t.Errorf("parse(%q) expected at least one diagnostic", src)
		}
	}
}

func TestFunctionDeclarationShape(t *testing.T) {
	stmts, errs := parse(`int add(int a, int b) { return a + b; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}

	fn, ok := stmts[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("stmts[0] = %T, want *ast.FunctionDeclaration", stmts[0])
	}
	if fn.Name != "add" || fn.ReturnType != token.INT {
		t.Errorf("fn = %+v, want Name=add ReturnType=INT", fn)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("got %d parameters, want 2", len(fn.Parameters))
	}
	if fn.Parameters[0].Name != "a" || fn.Parameters[1].Name != "b" {
		t.Errorf("parameters = %+v", fn.Parameters)
	}
}

func TestPointerParameterTypeIsPointer(t *testing.T) {
	stmts, errs := parse(`void f(int* p) { }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn := stmts[0].(*ast.FunctionDeclaration)
	if fn.Parameters[0].Type != token.POINTER {
		t.Errorf("pointer parameter Type = %s, want POINTER", fn.Parameters[0].Type)
	}
}

func TestMultiVariableDeclarationWrapsInBlock(t *testing.T) {
	stmts, errs := parse(`int a = 1, b = 2;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	block, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("stmts[0] = %T, want *ast.Block", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d declarations, want 2", len(block.Statements))
	}
}

func TestStreamChainBuildsLeftAssociativeBinary(t *testing.T) {
	stmts, errs := parse(`cout << "hi" << endl;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	exprStmt := stmts[0].(*ast.ExprStmt)
	outer, ok := exprStmt.Expression.(*ast.Binary)
	if !ok {
		t.Fatalf("expression = %T, want *ast.Binary", exprStmt.Expression)
	}
	if outer.Op != token.LEFT_SHIFT {
		t.Errorf("outer op = %s, want LEFT_SHIFT", outer.Op)
	}
	rightIdent, ok := outer.Right.(*ast.Identifier)
	if !ok || rightIdent.Name != "endl" {
		t.Errorf("outer.Right = %#v, want Identifier(endl)", outer.Right)
	}
	inner, ok := outer.Left.(*ast.Binary)
	if !ok {
		t.Fatalf("outer.Left = %T, want *ast.Binary", outer.Left)
	}
	coutIdent, ok := inner.Left.(*ast.Identifier)
	if !ok || coutIdent.Name != "cout" {
		t.Errorf("inner.Left = %#v, want Identifier(cout)", inner.Left)
	}
}
