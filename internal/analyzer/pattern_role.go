package analyzer

import (
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// checkRolePattern is rule P2: every kind with two or more role children
// needs a (non-disjoint) genset covering them.
func checkRolePattern(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, kc := range kindsWithChildren(table, "role") {
		if len(kc.Children) < 2 {
			continue
		}
		gensets := table.GensetsForGeneral(kc.Kind.Name)
		if len(gensets) == 0 {
			diags = append(diags, diagnostics.New(
				"P2", diagnostics.Semantic, diagnostics.Error, kc.Kind.Pos(),
				"kind '"+kc.Kind.Name+"' has two or more roles but no genset generalizes them",
			))
			continue
		}

		for _, g := range gensets {
			if g.IsDisjoint() {
				diags = append(diags, diagnostics.New(
					"P2", diagnostics.Semantic, diagnostics.Error, g.Pos(),
					"genset '"+g.Name+"' generalizing roles of '"+kc.Kind.Name+"' must not be disjoint",
				))
			}
			if missing := containsAll(kc.Children, g.Specifics); len(missing) > 0 {
				diags = append(diags, diagnostics.New(
					"P2", diagnostics.Semantic, diagnostics.Warning, g.Pos(),
					"genset '"+g.Name+"' is missing role(s) of '"+kc.Kind.Name+"': "+strings.Join(missing, ", "),
				))
			}
		}
	}

	return diags
}
