// Package symbols holds the table the semantic analyzer builds in pass 1
// and reads in passes 2 and 3: an insertion-ordered map of class
// declarations plus the flat lists of datatypes, enums, gensets, and
// external relations a Tonto source declares.
package symbols

import "github.com/vynijales/ufersa-compilador-tonto/internal/ast"

// SymbolTable is built once per analysis, by pass 1 through the Add*
// methods, and never mutated after that pass completes. Classes are stored as parallel name/index/decl slices
// (rather than a plain map) so that every later pass iterates them in
// the same source-declaration order, which spec.md requires for
// deterministic diagnostic output.
type SymbolTable struct {
	classNames []string
	classIndex map[string]int
	classDecls []*ast.ClassDecl

	datatypes []*ast.DatatypeDecl
	enums     []*ast.EnumDecl
	gensets   []*ast.GensetDecl
	relations []*ast.ExternalRelationDecl
}

// NewSymbolTable returns an empty table ready for pass 1 to fill.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{classIndex: make(map[string]int)}
}

// HasClass reports whether name is already a registered class.
func (t *SymbolTable) HasClass(name string) bool {
	_, ok := t.classIndex[name]
	return ok
}

// AddClass inserts a new class. Callers must check HasClass first;
// AddClass does not guard against duplicates so that Pass 1 can decide
// whether a duplicate is an error before mutating the table.
func (t *SymbolTable) AddClass(decl *ast.ClassDecl) {
	t.classIndex[decl.Name] = len(t.classNames)
	t.classNames = append(t.classNames, decl.Name)
	t.classDecls = append(t.classDecls, decl)
}

// Class returns the class declaration for name, and whether it exists.
func (t *SymbolTable) Class(name string) (*ast.ClassDecl, bool) {
	idx, ok := t.classIndex[name]
	if !ok {
		return nil, false
	}
	return t.classDecls[idx], true
}

// Classes returns every class declaration in insertion (source) order.
func (t *SymbolTable) Classes() []*ast.ClassDecl {
	return t.classDecls
}

// ClassNames returns every class name in insertion (source) order.
func (t *SymbolTable) ClassNames() []string {
	return t.classNames
}

func (t *SymbolTable) AddDatatype(d *ast.DatatypeDecl) { t.datatypes = append(t.datatypes, d) }
func (t *SymbolTable) Datatypes() []*ast.DatatypeDecl  { return t.datatypes }

// HasDatatype reports whether name was declared with `datatype`.
func (t *SymbolTable) HasDatatype(name string) bool {
	for _, d := range t.datatypes {
		if d.Name == name {
			return true
		}
	}
	return false
}

func (t *SymbolTable) AddEnum(e *ast.EnumDecl) { t.enums = append(t.enums, e) }
func (t *SymbolTable) Enums() []*ast.EnumDecl  { return t.enums }

func (t *SymbolTable) AddGenset(g *ast.GensetDecl) { t.gensets = append(t.gensets, g) }
func (t *SymbolTable) Gensets() []*ast.GensetDecl  { return t.gensets }

// GensetsForGeneral returns, in source order, every genset whose General
// field equals name.
func (t *SymbolTable) GensetsForGeneral(name string) []*ast.GensetDecl {
	var out []*ast.GensetDecl
	for _, g := range t.gensets {
		if g.General == name {
			out = append(out, g)
		}
	}
	return out
}

func (t *SymbolTable) AddRelation(r *ast.ExternalRelationDecl) { t.relations = append(t.relations, r) }
func (t *SymbolTable) Relations() []*ast.ExternalRelationDecl  { return t.relations }

// Specializations returns, in source order, every class that lists name
// in its Specializes list.
func (t *SymbolTable) Specializations(name string) []*ast.ClassDecl {
	var out []*ast.ClassDecl
	for _, c := range t.classDecls {
		for _, parent := range c.Specializes {
			if parent == name {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// SpecializationsByStereotype returns, in source order, every class that
// both specializes name and carries the given stereotype.
func (t *SymbolTable) SpecializationsByStereotype(name, stereotype string) []*ast.ClassDecl {
	var out []*ast.ClassDecl
	for _, c := range t.Specializations(name) {
		if c.Stereotype == stereotype {
			out = append(out, c)
		}
	}
	return out
}
