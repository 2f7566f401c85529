package analyzer

import (
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// checkPhasePattern is rule P3: phases come in families of two or more,
// and a kind's phase family of two or more must be covered by a disjoint
// genset.
func checkPhasePattern(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, kc := range kindsWithChildren(table, "phase") {
		if len(kc.Children) == 1 {
			diags = append(diags, diagnostics.New(
				"P3", diagnostics.Semantic, diagnostics.Error, kc.Kind.Pos(),
				"kind '"+kc.Kind.Name+"' has a single phase '"+kc.Children[0].Name+"'; phases come in families of two or more",
			))
			continue
		}

		gensets := table.GensetsForGeneral(kc.Kind.Name)
		if len(gensets) == 0 {
			diags = append(diags, diagnostics.New(
				"P3", diagnostics.Semantic, diagnostics.Error, kc.Kind.Pos(),
				"kind '"+kc.Kind.Name+"' has phases but no genset is defined; disjoint is MANDATORY",
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
				"P3", diagnostics.Semantic, diagnostics.Error, kc.Kind.Pos(),
				"kind '"+kc.Kind.Name+"' phase genset must be disjoint; disjoint is MANDATORY",
			))
		}

		for _, g := range gensets {
			if missing := containsAll(kc.Children, g.Specifics); len(missing) > 0 {
				diags = append(diags, diagnostics.New(
					"P3", diagnostics.Semantic, diagnostics.Warning, g.Pos(),
					"genset '"+g.Name+"' is missing phase(s) of '"+kc.Kind.Name+"': "+strings.Join(missing, ", "),
				))
			}
		}
	}

	return diags
}
