package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/report"
	"github.com/vynijales/ufersa-compilador-tonto/internal/tonto"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a Tonto source file (the default command)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// runAnalyze implements spec.md §6.3: read the file, run analyze, print
// the summary and diagnostic report, and exit 0/1/2. It resolves the
// process directly with os.Exit rather than returning an error so that
// the I/O-failure exit code (2) is distinct from the has-errors code (1).
func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	rules, err := config.LoadRuleConfig(flagRules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tonto: reading rule config: %v\n", err)
		os.Exit(2)
	}

	result, err := tonto.AnalyzeFile(path, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tonto: %v\n", err)
		os.Exit(2)
	}

	if flagFormat == "json" {
		if err := printJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "tonto: %v\n", err)
			os.Exit(2)
		}
	} else {
		printTable(result)
	}

	if result.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func printTable(result *tonto.AnalysisResult) {
	if !flagQuiet {
		fmt.Print(report.Summary(result.Ast, result.SymbolTable))
		fmt.Println()
	}
	color := !flagNoColor && isatty.IsTerminal(os.Stdout.Fd())
	fmt.Print(report.FormatDiagnostics(result.Diagnostics, color))
}

// jsonDiagnostic mirrors diagnostics.DiagnosticError with stage/severity
// rendered as their names rather than the underlying int, for a stable
// external JSON shape.
type jsonDiagnostic struct {
	Code       string `json:"code"`
	Severity   string `json:"severity"`
	Stage      string `json:"stage"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

type jsonResult struct {
	RunID       string           `json:"runId"`
	FilePath    string           `json:"filePath"`
	HasErrors   bool             `json:"hasErrors"`
	Summary     string           `json:"summary"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

func printJSON(result *tonto.AnalysisResult) error {
	if result.Ast == nil {
		return errors.New("tonto: no AST to report")
	}
	diags := make([]jsonDiagnostic, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		diags[i] = jsonDiagnostic{
			Code:       string(d.Code),
			Severity:   d.Severity.String(),
			Stage:      d.Stage.String(),
			Line:       d.Position.Line,
			Column:     d.Position.Column,
			Message:    d.Message,
			Suggestion: d.Suggestion,
		}
	}
	out := jsonResult{
		RunID:       result.RunID.String(),
		FilePath:    result.FilePath,
		HasErrors:   result.HasErrors(),
		Summary:     report.Summary(result.Ast, result.SymbolTable),
		Diagnostics: diags,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
