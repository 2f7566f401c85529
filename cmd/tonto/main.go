// Command tonto is a batch linter for the Tonto ontology language: it
// reads a source file, runs the lexer/parser/analyzer pipeline, and
// prints a summary table followed by the diagnostic report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFormat  string
	flagNoColor bool
	flagRules   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tonto [file]",
	Short: "Static analyzer for the Tonto ontology language",
	Long: `tonto parses a Tonto source file, builds its symbol table, checks
reference and ontological-pattern rules, and reports the result as a
summary table plus a diagnostic list.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "table", `output format: "table" or "json"`)
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored diagnostic output")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "path to a YAML rule-override file")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress the summary table; print diagnostics only")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
