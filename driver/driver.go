// Package driver orchestrates the compilation pipeline: lex, parse,
// check, emit, optimize. It aggregates diagnostics and aborts after the
// first phase that reports one, per spec.md §7's propagation policy.
package driver

import (
	"minic/ast"
	"minic/check"
	"minic/ir"
	"minic/lexer"
	"minic/parser"
	"minic/report"
)

// Result carries the outcome of one compilation. Instructions is nil
// whenever Diagnostics is non-empty: only a fully clean program reaches
// the emitter.
type Result struct {
	Instructions []ir.Instruction
	Diagnostics  []error
}

// Compiler runs the pipeline over one source file's text, reporting
// diagnostics through Reporter as they are found.
type Compiler struct {
	Reporter *report.Reporter
	Path     string
}

// New constructs a Compiler bound to a Reporter and the source path used
// for diagnostic display.
func New(rep *report.Reporter, path string) *Compiler {
	return &Compiler{Reporter: rep, Path: path}
}

// Run executes Lex→Parse→Check→Emit→Optimize over source. A lexical
// error raised while a statement is parsed is recorded by the parser's
// per-statement recovery like a syntax error; one that escapes the
// parser is caught by parseSource. Parse errors accumulate across the
// whole file before aborting; semantic errors are collected into a
// single AggregateError before aborting. Only a program that clears all
// three reaches the emitter.
func (c *Compiler) Run(source string) Result {
	c.Reporter.SetSource(c.Path, source)

	stmts, lexOrParseErrs := c.parseSource(source)
	if len(lexOrParseErrs) > 0 {
		for _, err := range lexOrParseErrs {
			c.reportError(err)
		}
		return Result{Diagnostics: lexOrParseErrs}
	}

	checker := check.New()
	if err := checker.Check(stmts); err != nil {
		errs := c.flattenCheckError(err)
		for _, sub := range errs {
			c.reportError(sub)
		}
		return Result{Diagnostics: errs}
	}

	emitter := ir.New()
	instructions := emitter.Emit(stmts)
	instructions = ir.Optimize(instructions)

	return Result{Instructions: instructions}
}

// parseSource runs the lexer and parser, converting a lexical panic
// (unterminated literal, unrecognised character) into a single-element
// diagnostic slice, since the lexer never recovers from one itself.
func (c *Compiler) parseSource(source string) (stmts []ast.Stmt, errs []error) {
	defer func() {
		if x := recover(); x != nil {
			lce, ok := x.(*report.LocalCompileError)
			if !ok {
				panic(x)
			}
			stmts = nil
			errs = []error{lce}
		}
	}()

	lx := lexer.New(source)
	p := parser.New(lx)
	stmts, errs = p.Parse()
	return stmts, errs
}

func (c *Compiler) flattenCheckError(err error) []error {
	if agg, ok := err.(*check.AggregateError); ok {
		return agg.Errors
	}
	return []error{err}
}

func (c *Compiler) reportError(err error) {
	if lce, ok := err.(*report.LocalCompileError); ok {
		c.Reporter.ReportError(c.Path, lce.Span, "%s", lce.Message)
		return
	}
	c.Reporter.ReportError(c.Path, nil, "%s", err.Error())
}
