package tonto

import "testing"

func TestAnalyzeEmptySource(t *testing.T) {
	result, err := Analyze("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("expected no errors, got %v", result.Diagnostics)
	}
	if result.Ast == nil || len(result.Ast.Declarations) != 0 {
		t.Fatalf("expected an empty AST, got %+v", result.Ast)
	}
	if result.RunID == "" {
		t.Error("expected a non-empty RunID")
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	result, err := Analyze("package P  kind Person")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("expected no errors, got %v", result.Diagnostics)
	}
	if result.SymbolTable == nil || !result.SymbolTable.HasClass("Person") {
		t.Fatalf("expected symbol table to contain Person")
	}
}

func TestAnalyzeRunsAllThreeStages(t *testing.T) {
	// A dangling reference is only caught in the semantic stage, so its
	// presence proves the pipeline reached pass 2 rather than stopping
	// after a clean parse.
	result, err := Analyze("kind Person specializes Ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasErrors() {
		t.Fatal("expected a dangling-reference diagnostic")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	src := "kind Person specializes Ghost  kind Person"
	first, _ := Analyze(src)
	second, _ := Analyze(src)
	if len(first.Diagnostics) != len(second.Diagnostics) {
		t.Fatalf("expected identical diagnostic counts across runs, got %d and %d",
			len(first.Diagnostics), len(second.Diagnostics))
	}
	for i := range first.Diagnostics {
		if first.Diagnostics[i].Error() != second.Diagnostics[i].Error() {
			t.Errorf("diagnostic %d differs across runs: %q vs %q",
				i, first.Diagnostics[i].Error(), second.Diagnostics[i].Error())
		}
	}
}
