package report

import (
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
)

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// FormatDiagnostics renders diags per spec.md §6.5: one
// `[STAGE - line L, column C] message` line per diagnostic, with an
// optional `  suggestion: …` second line, errors before warnings and
// source-position order within each group. Callers must have already
// called diagnostics.Sort (tonto.Analyze does this). When color is true,
// errors are rendered red and warnings yellow.
func FormatDiagnostics(diags []*diagnostics.DiagnosticError, color bool) string {
	if len(diags) == 0 {
		return "No diagnostics.\n"
	}
	var b strings.Builder
	for _, d := range diags {
		line := d.Error()
		if color {
			line = colorFor(d.Severity) + line + colorReset
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func colorFor(sev diagnostics.Severity) string {
	if sev == diagnostics.Warning {
		return colorYellow
	}
	return colorRed
}
