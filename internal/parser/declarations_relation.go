package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// parseExternalRelation parses `'@' REL_STEREO 'relation' IDENT
// cardinality connector cardinality IDENT`. Unlike an internal relation,
// both domain and image are explicit since this form is a top-level
// sibling of class_decl, not nested inside one.
func (p *Parser) parseExternalRelation() ast.Declaration {
	at := p.advance() // '@'
	decl := &ast.ExternalRelationDecl{Token: at}

	if t, ok := p.expect(token.RELATION_STEREOTYPE); ok {
		decl.Stereotype = t.Lexeme
	}
	if !p.at(token.RELATION) {
		p.unexpected(token.RELATION)
		p.synchronize()
		return decl
	}
	p.advance() // 'relation'

	if t, ok := p.expect(token.IDENTIFIER); ok {
		decl.Domain = t.Lexeme
	}
	if p.at(token.LBRACKET) {
		decl.DomainCard = p.parseCardinality()
	}
	decl.Connector = p.parseConnector()
	if p.at(token.LBRACKET) {
		decl.ImageCard = p.parseCardinality()
	}
	if t, ok := p.expect(token.IDENTIFIER); ok {
		decl.Image = t.Lexeme
	}
	return decl
}

// parseConnector parses the `connector` production:
//
//	connector  := conn_start | conn_end | '--'
//	           |  conn_start IDENT '--'
//	           |  '--' IDENT (conn_end | '--')
//
// A labeled connector threads an identifier between two dash segments;
// an unlabeled one is a single already-greedily-lexed token.
func (p *Parser) parseConnector() ast.Connector {
	tok := p.cur()

	switch tok.Kind {
	case token.CONN_AGG_FWD, token.CONN_COMP_FWD:
		p.advance()
		shape := ast.AggregationForward
		if tok.Kind == token.CONN_COMP_FWD {
			shape = ast.CompositionForward
		}
		if p.at(token.IDENTIFIER) {
			label := p.advance().Lexeme
			p.expect(token.CONN_ASSOC)
			return ast.Connector{Token: tok, Shape: shape, Label: label}
		}
		return ast.Connector{Token: tok, Shape: shape}

	case token.CONN_AGG_REV, token.CONN_COMP_REV:
		p.advance()
		shape := ast.AggregationReverse
		if tok.Kind == token.CONN_COMP_REV {
			shape = ast.CompositionReverse
		}
		return ast.Connector{Token: tok, Shape: shape}

	case token.CONN_ASSOC:
		p.advance()
		if p.at(token.IDENTIFIER) {
			label := p.advance().Lexeme
			closeTok := p.cur()
			shape := ast.Association
			switch closeTok.Kind {
			case token.CONN_AGG_REV:
				shape = ast.AggregationReverse
				p.advance()
			case token.CONN_COMP_REV:
				shape = ast.CompositionReverse
				p.advance()
			case token.CONN_ASSOC:
				p.advance()
			default:
				p.unexpected(token.CONN_ASSOC)
			}
			return ast.Connector{Token: tok, Shape: shape, Label: label}
		}
		return ast.Connector{Token: tok, Shape: ast.Association}

	default:
		p.unexpected(token.CONN_ASSOC)
		return ast.Connector{Token: tok}
	}
}
