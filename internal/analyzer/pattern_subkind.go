package analyzer

import (
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// checkSubkindPattern is rule P1: every kind with two or more subkind
// children needs a disjoint genset covering them.
func checkSubkindPattern(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, kc := range kindsWithChildren(table, "subkind") {
		if len(kc.Children) < 2 {
			continue
		}
		gensets := table.GensetsForGeneral(kc.Kind.Name)
		if len(gensets) == 0 {
			diags = append(diags, diagnostics.New(
				"P1", diagnostics.Semantic, diagnostics.Error, kc.Kind.Pos(),
				"kind '"+kc.Kind.Name+"' has two or more subkinds but no genset generalizes them",
			))
			continue
		}

		hasDisjoint := false
		for _, g := range gensets {
			if g.IsDisjoint() {
				hasDisjoint = true
				break
			}
		}
		if !hasDisjoint {
			diags = append(diags, diagnostics.New(
				"P1", diagnostics.Semantic, diagnostics.Error, kc.Kind.Pos(),
				"kind '"+kc.Kind.Name+"' subkind genset must be disjoint",
			))
		}

		for _, g := range gensets {
			if missing := containsAll(kc.Children, g.Specifics); len(missing) > 0 {
				diags = append(diags, diagnostics.New(
					"P1", diagnostics.Semantic, diagnostics.Warning, g.Pos(),
					"genset '"+g.Name+"' is missing subkind(s) of '"+kc.Kind.Name+"': "+strings.Join(missing, ", "),
				))
			}
		}
	}

	return diags
}
