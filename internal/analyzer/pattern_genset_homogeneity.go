package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

var rigidSpecificStereotypes = map[string]bool{
	"subkind":  true,
	"category": true,
}

var antiRigidSpecificStereotypes = map[string]bool{
	"role":           true,
	"phase":          true,
	"historicalRole": true,
}

// checkGensetHomogeneity is rule P7: a genset's specifics must not mix
// rigid and anti-rigid stereotypes, and must not mix phase with
// role/historicalRole.
func checkGensetHomogeneity(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, g := range table.Gensets() {
		hasRigid, hasAntiRigid := false, false
		hasPhase, hasRole := false, false

		for _, name := range g.Specifics {
			c, ok := table.Class(name)
			if !ok {
				continue
			}
			if rigidSpecificStereotypes[c.Stereotype] {
				hasRigid = true
			}
			if antiRigidSpecificStereotypes[c.Stereotype] {
				hasAntiRigid = true
			}
			if c.Stereotype == "phase" {
				hasPhase = true
			}
			if c.Stereotype == "role" || c.Stereotype == "historicalRole" {
				hasRole = true
			}
		}

		if hasRigid && hasAntiRigid {
			diags = append(diags, diagnostics.New(
				"P7", diagnostics.Semantic, diagnostics.Error, g.Pos(),
				"genset '"+g.Name+"' mixes rigid (subkind/category) and anti-rigid (role/phase/historicalRole) specifics",
			))
		}
		if hasPhase && hasRole {
			diags = append(diags, diagnostics.New(
				"P7", diagnostics.Semantic, diagnostics.Error, g.Pos(),
				"genset '"+g.Name+"' mixes phase with role/historicalRole specifics",
			))
		}
	}

	return diags
}
