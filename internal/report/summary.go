// Package report renders an analyzed ontology and its diagnostics into
// the plain-text formats spec.md §6.4/§6.5 describe. It has no logic of
// its own beyond formatting — the passive "Diagnostic Reporter"
// collaborator from spec.md §2.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
)

// Summary builds the fixed-field-order plain-text table from spec.md
// §6.4: package, imports, classes, datatypes, enums, gensets, external
// relations. Every section after the package line opens with a header
// that carries its entry count, e.g. "Classes (2):".
func Summary(ont *ast.Ontology, table *symbols.SymbolTable) string {
	var b strings.Builder

	writePackage(&b, ont)
	writeImports(&b, ont)
	writeClasses(&b, table)
	writeDatatypes(&b, table)
	writeEnums(&b, table)
	writeGensets(&b, table)
	writeRelations(&b, table)

	return b.String()
}

func writePackage(b *strings.Builder, ont *ast.Ontology) {
	if ont.Package != nil {
		fmt.Fprintf(b, "Package: %s\n\n", ont.Package.Name)
		return
	}
	fmt.Fprintf(b, "Package: (none)\n\n")
}

func writeImports(b *strings.Builder, ont *ast.Ontology) {
	fmt.Fprintf(b, "Imports (%d):\n", len(ont.Imports))
	for _, imp := range ont.Imports {
		fmt.Fprintf(b, "  - %s\n", imp.Name)
	}
	b.WriteString("\n")
}

func writeClasses(b *strings.Builder, table *symbols.SymbolTable) {
	classes := table.Classes()
	fmt.Fprintf(b, "Classes (%d):\n", len(classes))
	for _, c := range classes {
		header := c.Stereotype + " " + c.Name
		if c.Category != "" {
			header += " of " + c.Category
		}
		if len(c.Specializes) > 0 {
			header += " specializes " + strings.Join(c.Specializes, ", ")
		}
		fmt.Fprintf(b, "  %s\n", header)
		if c.Body == nil {
			continue
		}
		for _, attr := range c.Body.Attributes {
			fmt.Fprintf(b, "    %s\n", renderAttribute(attr))
		}
		for _, rel := range c.Body.Relations {
			fmt.Fprintf(b, "    %s\n", renderInternalRelation(rel))
		}
	}
	b.WriteString("\n")
}

func writeDatatypes(b *strings.Builder, table *symbols.SymbolTable) {
	datatypes := table.Datatypes()
	fmt.Fprintf(b, "Datatypes (%d):\n", len(datatypes))
	for _, d := range datatypes {
		fmt.Fprintf(b, "  %s\n", d.Name)
		for _, attr := range d.Attributes {
			fmt.Fprintf(b, "    %s\n", renderAttribute(attr))
		}
	}
	b.WriteString("\n")
}

func writeEnums(b *strings.Builder, table *symbols.SymbolTable) {
	enums := table.Enums()
	fmt.Fprintf(b, "Enums (%d):\n", len(enums))
	for _, e := range enums {
		fmt.Fprintf(b, "  %s { %s }\n", e.Name, strings.Join(e.Values, ", "))
	}
	b.WriteString("\n")
}

func writeGensets(b *strings.Builder, table *symbols.SymbolTable) {
	gensets := table.Gensets()
	fmt.Fprintf(b, "Gensets (%d):\n", len(gensets))
	for _, g := range gensets {
		restrictions := make([]string, len(g.Restrictions))
		for i, r := range g.Restrictions {
			restrictions[i] = r.String()
		}
		line := g.Name
		if len(restrictions) > 0 {
			line = strings.Join(restrictions, " ") + " " + line
		}
		fmt.Fprintf(b, "  %s { general: %s specifics: %s }\n",
			line, g.General, strings.Join(g.Specifics, ", "))
	}
	b.WriteString("\n")
}

func writeRelations(b *strings.Builder, table *symbols.SymbolTable) {
	relations := table.Relations()
	fmt.Fprintf(b, "External relations (%d):\n", len(relations))
	for _, r := range relations {
		fmt.Fprintf(b, "  @%s %s%s %s %s%s\n",
			r.Stereotype, r.Domain, renderCardinality(r.DomainCard),
			renderConnector(r.Connector), renderCardinality(r.ImageCard), " "+r.Image)
	}
}

func renderAttribute(a *ast.Attribute) string {
	s := a.Name + ": " + a.Type.Name + renderCardinality(a.Cardinality)
	if len(a.MetaAttrs) > 0 {
		s += " {" + strings.Join(a.MetaAttrs, ", ") + "}"
	}
	return s
}

func renderInternalRelation(r *ast.InternalRelation) string {
	return fmt.Sprintf("@%s%s %s %s%s",
		r.Stereotype, renderCardinality(r.DomainCard), renderConnector(r.Connector),
		renderCardinality(r.ImageCard), " "+r.Image)
}

func renderConnector(c ast.Connector) string {
	shape := map[ast.ConnectorShape]string{
		ast.Association:        "--",
		ast.AggregationForward: "<>--",
		ast.AggregationReverse: "--<>",
		ast.CompositionForward: "<o>--",
		ast.CompositionReverse: "--<o>",
	}[c.Shape]
	if c.Label != "" {
		return shape + " " + c.Label
	}
	return shape
}

func renderCardinality(c *ast.Cardinality) string {
	if c == nil {
		return ""
	}
	if c.Lower == 0 && c.UpperInfinite && c.Upper == 0 {
		return "[*]"
	}
	if !c.UpperInfinite && c.Lower == c.Upper {
		return "[" + strconv.Itoa(c.Lower) + "]"
	}
	upper := "*"
	if !c.UpperInfinite {
		upper = strconv.Itoa(c.Upper)
	}
	return "[" + strconv.Itoa(c.Lower) + ".." + upper + "]"
}
