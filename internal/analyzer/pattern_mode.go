package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

var modeStereotypes = map[string]bool{
	"mode":          true,
	"intrinsicMode": true,
	"extrinsicMode": true,
}

// checkModePattern is rule P5: a mode must characterize something, and an
// extrinsic mode must additionally externally depend on something.
func checkModePattern(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, c := range table.Classes() {
		if !modeStereotypes[c.Stereotype] {
			continue
		}

		if len(internalRelationsByStereotype(c, "characterization")) == 0 {
			diags = append(diags, diagnostics.New(
				"P5", diagnostics.Semantic, diagnostics.Error, c.Pos(),
				c.Stereotype+" '"+c.Name+"' must carry at least one 'characterization' relation",
			))
		}

		if c.Stereotype == "extrinsicMode" && len(internalRelationsByStereotype(c, "externalDependence")) == 0 {
			diags = append(diags, diagnostics.New(
				"P5", diagnostics.Semantic, diagnostics.Error, c.Pos(),
				"extrinsicMode '"+c.Name+"' must carry at least one 'externalDependence' relation",
			))
		}
	}

	return diags
}
