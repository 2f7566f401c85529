package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// checkRoleMixinPattern is rule P6: a roleMixin should be specialized by
// two or more roles, those roles should be covered by a disjoint
// (ideally complete) genset, and they should reach two or more distinct
// kinds between them.
func checkRoleMixinPattern(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, m := range table.Classes() {
		if m.Stereotype != "roleMixin" {
			continue
		}

		roles := table.SpecializationsByStereotype(m.Name, "role")
		if len(roles) < 2 {
			diags = append(diags, diagnostics.New(
				"P6", diagnostics.Semantic, diagnostics.Warning, m.Pos(),
				"roleMixin '"+m.Name+"' is specialized by fewer than two roles",
			))
		}
		if len(roles) == 0 {
			continue
		}

		gensets := table.GensetsForGeneral(m.Name)
		if len(gensets) == 0 {
			diags = append(diags, diagnostics.New(
				"P6", diagnostics.Semantic, diagnostics.Error, m.Pos(),
				"roleMixin '"+m.Name+"' has specializing roles but no genset generalizes them",
			))
		}
		for _, g := range gensets {
			if !g.IsDisjoint() {
				diags = append(diags, diagnostics.New(
					"P6", diagnostics.Semantic, diagnostics.Error, g.Pos(),
					"genset '"+g.Name+"' generalizing roleMixin '"+m.Name+"' must be disjoint",
				))
			}
			if !g.IsComplete() {
				diags = append(diags, diagnostics.New(
					"P6", diagnostics.Semantic, diagnostics.Warning, g.Pos(),
					"genset '"+g.Name+"' generalizing roleMixin '"+m.Name+"' should be complete",
				))
			}
		}

		kinds := make(map[string]bool)
		for _, role := range roles {
			for _, parent := range role.Specializes {
				if pc, ok := table.Class(parent); ok && pc.Stereotype == "kind" {
					kinds[pc.Name] = true
				}
			}
		}
		if len(kinds) < 2 {
			diags = append(diags, diagnostics.New(
				"P6", diagnostics.Semantic, diagnostics.Warning, m.Pos(),
				"roles specializing roleMixin '"+m.Name+"' should collectively specialize two or more distinct kinds",
			))
		}
	}

	return diags
}
