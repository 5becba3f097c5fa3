package driver

import (
	"strings"
	"testing"

	"minic/ir"
	"minic/report"
)

func compile(source string) (Result, *report.Reporter) {
	rep := report.New(report.LogLevelSilent)
	c := New(rep, "test.mc")
	return c.Run(source), rep
}

func TestCleanProgramReachesEmitter(t *testing.T) {
	result, rep := compile(`int x = 5;`)
	if rep.AnyErrors() {
		t.Fatalf("unexpected diagnostics: %d", rep.ErrorCount())
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", result.Diagnostics)
	}
	if len(result.Instructions) == 0 {
		t.Error("Instructions is empty for a clean program")
	}
}

// TestParseErrorAbortsBeforeCheck: a syntax error must prevent the
// checker and emitter from ever running, per spec.md §7's "never runs
// subsequent phases once the current phase reports any error".
func TestParseErrorAbortsBeforeCheck(t *testing.T) {
	result, rep := compile(`int x = ;`)
	if !rep.AnyErrors() {
		t.Fatal("expected a reported diagnostic")
	}
	if result.Instructions != nil {
		t.Errorf("Instructions = %v, want nil (emission must not run)", result.Instructions)
	}
}

// TestSemanticErrorAbortsBeforeEmit: scenario B end to end through the
// full pipeline.
func TestSemanticErrorAbortsBeforeEmit(t *testing.T) {
	result, rep := compile(`int y = z;`)
	if !rep.AnyErrors() {
		t.Fatal("expected a reported diagnostic")
	}
	if result.Instructions != nil {
		t.Errorf("Instructions = %v, want nil", result.Instructions)
	}

	found := false
	for _, err := range result.Diagnostics {
		if strings.Contains(err.Error(), "Undefined variable 'z'") {
			found = true
		}
	}
	if !found {
		t.Errorf("Diagnostics = %v, want one naming 'z'", result.Diagnostics)
	}
}

func TestLexicalErrorIsReportedAndAborts(t *testing.T) {
	result, rep := compile(`int x = "unterminated;`)
	if !rep.AnyErrors() {
		t.Fatal("expected a reported diagnostic")
	}
	if result.Instructions != nil {
		t.Error("Instructions should be nil after a lexical error")
	}
}

func TestOptimizeRunsAfterEmit(t *testing.T) {
	result, _ := compile(`int x = 5; int y = x;`)
	// Emission of `int y = x;` yields an adjacent LOAD x / STORE -> y
	// pair, so the check below only holds if Optimize ran.
	for i := 0; i+1 < len(result.Instructions); i++ {
		if result.Instructions[i].Opcode == ir.LOAD && result.Instructions[i+1].Opcode == ir.STORE {
			t.Errorf("driver output still has an adjacent LOAD->STORE pair at %d", i)
		}
	}
}
