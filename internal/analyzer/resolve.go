package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// resolveReferences is pass 2: it checks every cross-reference a class,
// genset, or external relation can make against table's class names, then
// runs the rigidity-hierarchy check over the class graph, skipping any
// parent name that did not resolve.
func resolveReferences(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, c := range table.Classes() {
		for _, parent := range c.Specializes {
			if !table.HasClass(parent) {
				diags = append(diags, dangling(c.Pos(), parent))
			}
		}
		if c.Body != nil {
			for _, rel := range c.Body.Relations {
				if rel.Image != "" && !table.HasClass(rel.Image) {
					diags = append(diags, dangling(rel.Pos(), rel.Image))
				}
			}
		}
	}

	for _, g := range table.Gensets() {
		if g.General != "" && !table.HasClass(g.General) {
			diags = append(diags, dangling(g.Pos(), g.General))
		}
		for _, s := range g.Specifics {
			if !table.HasClass(s) {
				diags = append(diags, dangling(g.Pos(), s))
			}
		}
	}

	for _, r := range table.Relations() {
		if !table.HasClass(r.Domain) {
			diags = append(diags, dangling(r.Pos(), r.Domain))
		}
		if !table.HasClass(r.Image) {
			diags = append(diags, dangling(r.Pos(), r.Image))
		}
	}

	diags = append(diags, checkRigidityHierarchy(table)...)

	return diags
}

func dangling(pos token.Position, name string) *diagnostics.DiagnosticError {
	return diagnostics.New(
		"S004", diagnostics.Semantic, diagnostics.Error, pos,
		"reference to undefined class '"+name+"'",
	)
}

// checkRigidityHierarchy walks every rigid class's transitive ancestors
// via Specializes, in class-table insertion order, and flags the first
// anti-rigid ancestor found. Traversal marks visited names so that a
// specialization cycle cannot loop forever; the cycle itself is not
// reported.
func checkRigidityHierarchy(table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, c := range table.Classes() {
		if !config.Rigid[c.Stereotype] {
			continue
		}
		if ancestor, ok := findAntiRigidAncestor(table, c.Specializes, map[string]bool{c.Name: true}); ok {
			diags = append(diags, diagnostics.New(
				"S005", diagnostics.Semantic, diagnostics.Error, c.Pos(),
				"rigid universal '"+c.Name+"' ("+c.Stereotype+") cannot specialize "+
					"anti-rigid universal '"+ancestor.Name+"' ("+ancestor.Stereotype+")",
			))
		}
	}

	return diags
}

func findAntiRigidAncestor(table *symbols.SymbolTable, parents []string, visited map[string]bool) (*ast.ClassDecl, bool) {
	for _, name := range parents {
		if visited[name] {
			continue
		}
		visited[name] = true

		parent, ok := table.Class(name)
		if !ok {
			continue
		}
		if config.AntiRigid[parent.Stereotype] {
			return parent, true
		}
		if ref, ok := findAntiRigidAncestor(table, parent.Specializes, visited); ok {
			return ref, true
		}
	}
	return nil, false
}
