// Package ast defines the sum-typed abstract syntax tree the parser
// builds for a Tonto source file: a single Ontology root carrying an
// optional package clause, an ordered import list, and an ordered list
// of Declarations.
//
// Unlike a general-purpose expression language's AST, Tonto's grammar is
// a flat list of declarative constructs with no nested statements or
// expressions to evaluate, so nodes expose their position directly
// rather than through a double-dispatch Visitor — callers (the semantic
// analyzer, the reporter) walk the Declarations slice and type-switch.
package ast

import "github.com/vynijales/ufersa-compilador-tonto/internal/token"

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Position
}

// Declaration is a tagged variant: ClassDecl, DatatypeDecl, EnumDecl,
// GensetDecl, ExternalRelationDecl, or ErrorDecl.
type Declaration interface {
	Node
	declNode()
}

// Ontology is the root of every parsed source file.
type Ontology struct {
	Package      *PackageClause // nil if the source declares no package
	Imports      []*Import
	Declarations []Declaration
}

func (o *Ontology) Pos() token.Position {
	if o.Package != nil {
		return o.Package.Pos()
	}
	if len(o.Declarations) > 0 {
		return o.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// PackageClause is the optional `package NAME` header.
type PackageClause struct {
	Token token.Token
	Name  string
}

func (p *PackageClause) Pos() token.Position { return p.Token.Pos() }

// Import is one `import NAME` entry.
type Import struct {
	Token token.Token
	Name  string
}

func (i *Import) Pos() token.Position { return i.Token.Pos() }

// ErrorDecl is a placeholder inserted where the parser recovered from a
// syntax error inside a declaration list, so that downstream passes see
// a hole rather than a shortened list.
type ErrorDecl struct {
	Token token.Token
}

func (e *ErrorDecl) Pos() token.Position { return e.Token.Pos() }
func (e *ErrorDecl) declNode()           {}
