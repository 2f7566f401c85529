// Package analyzer implements the three-pass semantic analysis described
// in spec.md §4.3: symbol collection, reference resolution (plus the
// rigidity-hierarchy check), and pattern validation against the seven
// UFO-inspired ontological design rules.
package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// Analyze runs all three passes over ont and returns the populated symbol
// table alongside every semantic diagnostic, in pass order. Each pass
// runs to completion regardless of what the previous pass found, per the
// propagation policy in spec.md §7.
func Analyze(ont *ast.Ontology, rules config.RuleConfig) (*symbols.SymbolTable, []*diagnostics.DiagnosticError) {
	table := symbols.NewSymbolTable()
	var diags []*diagnostics.DiagnosticError

	diags = append(diags, collectSymbols(table, ont)...)
	diags = append(diags, resolveReferences(table)...)
	diags = append(diags, validatePatterns(table, rules)...)

	return table, diags
}
