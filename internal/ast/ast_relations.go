package ast

import "github.com/vynijales/ufersa-compilador-tonto/internal/token"

// ConnectorShape identifies which of the five connector forms was used.
type ConnectorShape int

const (
	Association ConnectorShape = iota
	AggregationForward             // <>--
	AggregationReverse             // --<>
	CompositionForward             // <o>--
	CompositionReverse             // --<o>
)

// Connector is the (optional label +) shape between a relation's two ends.
type Connector struct {
	Token token.Token
	Label string // empty if no label was given
	Shape ConnectorShape
}

func (c Connector) Pos() token.Position { return c.Token.Pos() }

// InternalRelation is a `@stereotype [card] connector [card] Image` entry
// inside a class body. Its domain is implicit: the enclosing class. Pass 3
// pattern validators (P4, P5) that inspect internal relations use the
// enclosing ClassDecl as the domain, per spec.md's Open Question on
// internal-relation domain.
type InternalRelation struct {
	Token       token.Token
	Stereotype  string
	DomainCard  *Cardinality
	Connector   Connector
	ImageCard   *Cardinality
	Image       string
}

func (r *InternalRelation) Pos() token.Position { return r.Token.Pos() }

// ExternalRelationDecl is a top-level `@stereotype relation Domain [card]
// connector [card] Image` declaration. Unlike InternalRelation, both ends
// are explicit identifiers: neither the domain nor the image is implied
// by an enclosing class, since ext_relation is a sibling of class_decl in
// the grammar, not nested inside one.
type ExternalRelationDecl struct {
	Token      token.Token
	Stereotype string
	Domain     string
	DomainCard *Cardinality
	Connector  Connector
	Image      string
	ImageCard  *Cardinality
}

func (e *ExternalRelationDecl) Pos() token.Position { return e.Token.Pos() }
func (e *ExternalRelationDecl) declNode()           {}
