package ast

import "github.com/vynijales/ufersa-compilador-tonto/internal/token"

// ClassBody is the `{ attribute | internal_relation }*` block.
type ClassBody struct {
	Attributes []*Attribute
	Relations  []*InternalRelation
}

// ClassDecl is a `STEREO Name ('of' Category)? ('specializes' ...)? body?`
// declaration.
type ClassDecl struct {
	Token       token.Token // the stereotype token
	Stereotype  string
	Name        string
	Category    string // from the optional `'of' IDENT`; empty if absent
	Specializes []string
	Body        *ClassBody // nil if the class has no `{ ... }` block
}

func (c *ClassDecl) Pos() token.Position { return c.Token.Pos() }
func (c *ClassDecl) declNode()           {}

// DatatypeDecl is a `datatype UserType { attribute* }` declaration.
type DatatypeDecl struct {
	Token      token.Token
	Name       string
	Attributes []*Attribute
}

func (d *DatatypeDecl) Pos() token.Position { return d.Token.Pos() }
func (d *DatatypeDecl) declNode()           {}

// EnumDecl is an `enum Name { v1, v2, ... }` declaration.
type EnumDecl struct {
	Token  token.Token
	Name   string
	Values []string
}

func (e *EnumDecl) Pos() token.Position { return e.Token.Pos() }
func (e *EnumDecl) declNode()           {}

// GensetRestriction is one of the four generalization-set constraints.
type GensetRestriction int

const (
	Disjoint GensetRestriction = iota
	Complete
	Incomplete
	Overlapping
)

func (r GensetRestriction) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	default:
		return "overlapping"
	}
}

// GensetDecl is a generalization set, in either of the grammar's two
// surface forms (`{ general ... specifics ... }` or `where ...
// specializes ...`); both parse down to the same AST shape.
type GensetDecl struct {
	Token        token.Token
	Name         string
	Restrictions []GensetRestriction
	General      string
	Specifics    []string
}

func (g *GensetDecl) Pos() token.Position { return g.Token.Pos() }
func (g *GensetDecl) declNode()           {}

// IsDisjoint reports whether the genset carries the `disjoint` restriction.
func (g *GensetDecl) IsDisjoint() bool { return g.hasRestriction(Disjoint) }

// IsComplete reports whether the genset carries the `complete` restriction.
func (g *GensetDecl) IsComplete() bool { return g.hasRestriction(Complete) }

func (g *GensetDecl) hasRestriction(want GensetRestriction) bool {
	for _, r := range g.Restrictions {
		if r == want {
			return true
		}
	}
	return false
}
