package ast

import "github.com/vynijales/ufersa-compilador-tonto/internal/token"

// TypeRefKind distinguishes the three forms a type_ref can take.
type TypeRefKind int

const (
	NativeTypeRef TypeRefKind = iota // number, string, boolean, date, time, datetime
	UserTypeRef                      // a declared FooDataType
	ClassTypeRef                     // a declared class name
)

// TypeRef is an attribute's declared type. NativeTypeRef and UserTypeRef
// are known for certain at parse time from the lexical token kind; a bare
// identifier is parsed as ClassTypeRef. The semantic analyzer does not
// check attribute types against the symbol table, so a ClassTypeRef name
// that names no declared class is not reported.
type TypeRef struct {
	Token token.Token
	Kind  TypeRefKind
	Name  string
}

func (t TypeRef) Pos() token.Position { return t.Token.Pos() }

// Cardinality is parsed from `[n]`, `[*]`, `[n..m]`, or `[n..*]`.
// An unbounded upper end is represented with the UpperInfinite flag rather
// than a sentinel integer, so Upper holds a meaningful finite value
// whenever UpperInfinite is false. Lower has no such flag: a '*' lower
// bound is stored as 0.
type Cardinality struct {
	Token         token.Token
	Lower         int
	UpperInfinite bool
	Upper         int
}

func (c Cardinality) Pos() token.Position { return c.Token.Pos() }

// Attribute is one member of a class body or datatype body.
type Attribute struct {
	Token       token.Token // the attribute name token
	Name        string
	Type        TypeRef
	Cardinality *Cardinality // nil if omitted
	MetaAttrs   []string     // e.g. "ordered", "const", "derived", "subsets", "redefines"
}

func (a *Attribute) Pos() token.Position { return a.Token.Pos() }
