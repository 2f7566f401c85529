package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// checkRelatorPattern is rule P4: a relator must mediate at least two
// roles, and those mediated roles must themselves be connected by a
// material relation.
func checkRelatorPattern(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, r := range table.Classes() {
		if r.Stereotype != "relator" {
			continue
		}

		mediated := internalRelationsByStereotype(r, "mediation")
		if len(mediated) < 2 {
			diags = append(diags, diagnostics.New(
				"P4", diagnostics.Semantic, diagnostics.Error, r.Pos(),
				"relator '"+r.Name+"' must mediate two or more roles via 'mediation' relations",
			))
			continue
		}

		images := make(map[string]bool, len(mediated))
		for _, rel := range mediated {
			images[rel.Image] = true
		}

		hasMaterial := false
		for _, ext := range table.Relations() {
			if ext.Stereotype == "material" && images[ext.Domain] && images[ext.Image] {
				hasMaterial = true
				break
			}
		}
		if !hasMaterial {
			diags = append(diags, diagnostics.New(
				"P4", diagnostics.Semantic, diagnostics.Error, r.Pos(),
				"relator '"+r.Name+"' mediates roles with no 'material' relation connecting them",
			))
		}
	}

	return diags
}

func internalRelationsByStereotype(c *ast.ClassDecl, stereotype string) []*ast.InternalRelation {
	if c.Body == nil {
		return nil
	}
	var out []*ast.InternalRelation
	for _, rel := range c.Body.Relations {
		if rel.Stereotype == stereotype {
			out = append(out, rel)
		}
	}
	return out
}
