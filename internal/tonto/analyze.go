// Package tonto wires the lexer, parser, and semantic analyzer into the
// single entry point callers (the CLI, tests, future front-ends) use to
// run the whole pipeline over a piece of Tonto source.
package tonto

import (
	"os"

	"golang.org/x/text/unicode/norm"

	"github.com/vynijales/ufersa-compilador-tonto/internal/analyzer"
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/lexer"
	"github.com/vynijales/ufersa-compilador-tonto/internal/parser"
	"github.com/vynijales/ufersa-compilador-tonto/internal/pipeline"
	"github.com/vynijales/ufersa-compilador-tonto/internal/reportid"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// AnalysisResult is the { ast, symbol_table, diagnostics } bundle spec.md
// §7 describes, stamped with a RunID so repeated or external-tool runs
// can be correlated.
type AnalysisResult struct {
	RunID       reportid.RunID
	FilePath    string
	Ast         *ast.Ontology
	SymbolTable *symbols.SymbolTable
	Diagnostics []*diagnostics.DiagnosticError
}

// HasErrors reports whether any diagnostic has severity Error, per
// spec.md I6.
func (r *AnalysisResult) HasErrors() bool {
	return diagnostics.HasErrors(r.Diagnostics)
}

// Analyze runs the full lexer → parser → analyzer pipeline over source
// using the default rule configuration (every pattern rule enabled at
// its spec-defined severity).
func Analyze(source string) (*AnalysisResult, error) {
	return AnalyzeWithRules(source, config.DefaultRuleConfig())
}

// AnalyzeWithRules runs the pipeline with a caller-supplied rule
// configuration, e.g. one loaded from a --rules YAML file.
func AnalyzeWithRules(source string, rules config.RuleConfig) (*AnalysisResult, error) {
	// NFC-normalize once, up front, so that identifier equality in the
	// symbol table (and every downstream comparison) is stable across
	// combining-character input.
	normalized := norm.NFC.String(source)

	ctx := pipeline.NewPipelineContext(normalized)
	run := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.Processor{},
		&analyzer.Processor{Rules: rules},
	)
	ctx = run.Run(ctx)

	diagnostics.Sort(ctx.Errors)

	return &AnalysisResult{
		RunID:       reportid.New(),
		FilePath:    ctx.FilePath,
		Ast:         ctx.AstRoot,
		SymbolTable: ctx.SymbolTable,
		Diagnostics: ctx.Errors,
	}, nil
}

// AnalyzeFile reads path and analyzes its contents, stamping FilePath
// onto the result. Read failures are returned to the caller, which maps
// them to exit code 2 per spec.md §6.3 — the core itself has no notion
// of files.
func AnalyzeFile(path string, rules config.RuleConfig) (*AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := AnalyzeWithRules(string(data), rules)
	if err != nil {
		return nil, err
	}
	result.FilePath = path
	return result, nil
}
