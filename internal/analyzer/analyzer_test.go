package analyzer

import (
	"strings"
	"testing"

	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/lexer"
	"github.com/vynijales/ufersa-compilador-tonto/internal/parser"
)

func analyzeSource(t *testing.T, src string) (*ast.Ontology, []string) {
	t.Helper()

	l := lexer.New(src)
	toks, lexErrs := l.Tokenize()
	if len(lexErrs) > 0 {
		t.Fatalf("unexpected lexical errors: %v", lexErrs)
	}

	p := parser.New(lexer.NewTokenStream(toks))
	ont, parseErrs := p.ParseOntology()
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}

	_, diags := Analyze(ont, config.DefaultRuleConfig())
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.Error()
	}
	return ont, msgs
}

func containsMsg(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// S3 from spec.md: a dangling specializes reference.
func TestDanglingReference(t *testing.T) {
	_, msgs := analyzeSource(t, `subkind Child specializes Parent`)
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(msgs), msgs)
	}
	if !containsMsg(msgs, "undefined class 'Parent'") {
		t.Errorf("expected dangling reference message, got %v", msgs)
	}
}

// S4 from spec.md: rigid specializing anti-rigid.
func TestRigidOverAntiRigid(t *testing.T) {
	_, msgs := analyzeSource(t, `
kind K
role R specializes K
subkind S specializes R
`)
	count := 0
	for _, m := range msgs {
		if strings.Contains(m, "cannot specialize") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one rigid-over-anti-rigid diagnostic, got %d: %v", count, msgs)
	}
	if !containsMsg(msgs, "'S' (subkind)") || !containsMsg(msgs, "'R' (role)") {
		t.Errorf("expected message naming S as subkind and R as role, got %v", msgs)
	}
}

// S5 from spec.md: phases without a genset.
func TestPhasePatternMissingGenset(t *testing.T) {
	_, msgs := analyzeSource(t, `
kind K
phase Young specializes K
phase Old specializes K
`)
	if !containsMsg(msgs, "disjoint is MANDATORY") {
		t.Errorf("expected phase-pattern missing-genset error, got %v", msgs)
	}
}

func TestKindWithSpecializesIsRejected(t *testing.T) {
	_, msgs := analyzeSource(t, `
kind K
kind L specializes K
`)
	if !containsMsg(msgs, "cannot specialize another class") {
		t.Errorf("expected kind-with-specializes error, got %v", msgs)
	}
}

func TestNonUltimateSortalWithoutSpecializesIsRejected(t *testing.T) {
	_, msgs := analyzeSource(t, `role R`)
	if !containsMsg(msgs, "must specialize an ultimate sortal") {
		t.Errorf("expected non-ultimate-sortal error, got %v", msgs)
	}
}

func TestDuplicateClass(t *testing.T) {
	_, msgs := analyzeSource(t, `
kind K
kind K
`)
	if !containsMsg(msgs, "duplicate class 'K'") {
		t.Errorf("expected duplicate class error, got %v", msgs)
	}
}

func TestRelatorPatternRequiresTwoMediations(t *testing.T) {
	_, msgs := analyzeSource(t, `
kind Person
relator Marriage {
  @mediation -- [1] Person
}
`)
	if !containsMsg(msgs, "must mediate two or more roles") {
		t.Errorf("expected relator pattern error, got %v", msgs)
	}
}

func TestModePatternRequiresCharacterization(t *testing.T) {
	_, msgs := analyzeSource(t, `
kind Person
mode Headache specializes Person
`)
	if !containsMsg(msgs, "must carry at least one 'characterization' relation") {
		t.Errorf("expected mode pattern error, got %v", msgs)
	}
}

func TestHappyPathHasNoDiagnostics(t *testing.T) {
	_, msgs := analyzeSource(t, `package P

kind Person
`)
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
}
