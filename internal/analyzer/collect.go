package analyzer

import (
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// collectSymbols is pass 1: it walks declarations in source order,
// registering classes, datatypes, enums, gensets, and external relations
// into table, and flags the two stereotype-shape errors spec.md §4.3
// assigns to this pass (kind-with-specializes, non-ultimate-sortal
// without specializes).
func collectSymbols(table *symbols.SymbolTable, ont *ast.Ontology) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	for _, decl := range ont.Declarations {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			diags = append(diags, collectClass(table, d)...)
		case *ast.DatatypeDecl:
			table.AddDatatype(d)
		case *ast.EnumDecl:
			table.AddEnum(d)
		case *ast.GensetDecl:
			table.AddGenset(d)
		case *ast.ExternalRelationDecl:
			table.AddRelation(d)
		}
	}

	return diags
}

func collectClass(table *symbols.SymbolTable, d *ast.ClassDecl) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError

	if table.HasClass(d.Name) {
		diags = append(diags, diagnostics.New(
			"S001", diagnostics.Semantic, diagnostics.Error, d.Pos(),
			"duplicate class '"+d.Name+"'",
		))
		return diags
	}

	if d.Stereotype == "kind" && len(d.Specializes) > 0 {
		diags = append(diags, diagnostics.New(
			"S002", diagnostics.Semantic, diagnostics.Error, d.Pos(),
			"kind '"+d.Name+"' cannot specialize another class; kinds are top-level",
		))
	}

	if config.NonUltimateSortals[d.Stereotype] && len(d.Specializes) == 0 {
		diags = append(diags, diagnostics.New(
			"S003", diagnostics.Semantic, diagnostics.Error, d.Pos(),
			d.Stereotype+" '"+d.Name+"' must specialize an ultimate sortal ("+
				strings.Join(ultimateSortalNames(), ", ")+")",
		))
	}

	table.AddClass(d)
	return diags
}

func ultimateSortalNames() []string {
	names := make([]string, 0, len(config.UltimateSortals))
	for name := range config.UltimateSortals {
		names = append(names, name)
	}
	// Stable for message reproducibility: the fixed table has a small,
	// known membership, so a plain lexical sort is cheap and deterministic.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}
