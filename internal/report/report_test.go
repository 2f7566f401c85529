package report

import (
	"strings"
	"testing"

	"github.com/vynijales/ufersa-compilador-tonto/internal/tonto"
)

func TestSummaryFieldOrder(t *testing.T) {
	result, err := tonto.Analyze(`
package P

kind Person {
	name: string
}

@material relation Person [1] -- [1..*] Person
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Summary(result.Ast, result.SymbolTable)

	order := []string{"Package:", "Imports (", "Classes (", "Datatypes (", "Enums (", "Gensets (", "External relations ("}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx == -1 {
			t.Fatalf("expected summary to contain %q, got:\n%s", want, out)
		}
		if idx <= last {
			t.Errorf("expected %q to appear after the previous section", want)
		}
		last = idx
	}
	if !strings.Contains(out, "name: string") {
		t.Errorf("expected attribute line in summary, got:\n%s", out)
	}
}

func TestFormatDiagnosticsEmpty(t *testing.T) {
	if got := FormatDiagnostics(nil, false); got != "No diagnostics.\n" {
		t.Errorf("expected the no-diagnostics message, got %q", got)
	}
}

func TestFormatDiagnosticsNoColorHasNoEscapes(t *testing.T) {
	result, _ := tonto.Analyze("kind Person specializes Ghost")
	out := FormatDiagnostics(result.Diagnostics, false)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI escapes when color is disabled, got %q", out)
	}
	if !strings.Contains(out, "[Semantic") {
		t.Errorf("expected a semantic diagnostic line, got %q", out)
	}
}

func TestFormatDiagnosticsColor(t *testing.T) {
	result, _ := tonto.Analyze("kind Person specializes Ghost")
	out := FormatDiagnostics(result.Diagnostics, true)
	if !strings.Contains(out, "\x1b[31m") {
		t.Errorf("expected a red escape for an error diagnostic, got %q", out)
	}
}
