package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// rule bundles one pattern rule's runner function with the RuleOverride
// field that turns it off or downgrades its errors to warnings.
type rule struct {
	run      func(*symbols.SymbolTable) []*diagnostics.DiagnosticError
	override config.RuleOverride
}

// validatePatterns is pass 3: it runs the seven pattern rules in the
// fixed order spec.md §4.3 lists them, applying rules's per-rule disable
// and severity-downgrade overrides.
func validatePatterns(table *symbols.SymbolTable, rules config.RuleConfig) []*diagnostics.DiagnosticError {
	order := []rule{
		{checkSubkindPattern, rules.Subkind},
		{checkRolePattern, rules.Role},
		{checkPhasePattern, rules.Phase},
		{checkRelatorPattern, rules.Relator},
		{checkModePattern, rules.Mode},
		{checkRoleMixinPattern, rules.RoleMixin},
		{checkGensetHomogeneity, rules.GensetHomogeneity},
	}

	var diags []*diagnostics.DiagnosticError
	for _, r := range order {
		if r.override.Disabled {
			continue
		}
		found := r.run(table)
		if r.override.AsWarning {
			for _, d := range found {
				d.Severity = diagnostics.Warning
			}
		}
		diags = append(diags, found...)
	}
	return diags
}

// kindChildren is one kind and the children of the requested stereotype
// that specialize it, both sides in class-table insertion order.
type kindChildren struct {
	Kind     *ast.ClassDecl
	Children []*ast.ClassDecl
}

// kindsWithChildren scans table's classes in insertion order, returning
// every kind with at least one child of stereotype childStereo, in the
// same order the kinds were declared.
func kindsWithChildren(table *symbols.SymbolTable, childStereo string) []kindChildren {
	var out []kindChildren
	for _, k := range table.Classes() {
		if k.Stereotype != "kind" {
			continue
		}
		children := table.SpecializationsByStereotype(k.Name, childStereo)
		if len(children) > 0 {
			out = append(out, kindChildren{Kind: k, Children: children})
		}
	}
	return out
}

// containsAll returns, in order, the names of the children that do not
// appear in specifics; an empty result means every child is covered.
func containsAll(children []*ast.ClassDecl, specifics []string) (missing []string) {
	set := make(map[string]bool, len(specifics))
	for _, s := range specifics {
		set[s] = true
	}
	for _, c := range children {
		if !set[c.Name] {
			missing = append(missing, c.Name)
		}
	}
	return missing
}
