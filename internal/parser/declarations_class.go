package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// parseClassDecl parses `class_decl := CLASS_STEREO IDENT ('of' IDENT)?
// ('specializes' ident_list)? class_body?`.
func (p *Parser) parseClassDecl() ast.Declaration {
	stereoTok := p.advance()
	decl := &ast.ClassDecl{Token: stereoTok, Stereotype: stereoTok.Lexeme}

	name, ok := p.expect(token.IDENTIFIER)
	if !ok {
		p.synchronize()
		return decl
	}
	decl.Name = name.Lexeme

	if p.at(token.OF) {
		p.advance()
		if cat, ok := p.expect(token.IDENTIFIER); ok {
			decl.Category = cat.Lexeme
		}
	}

	if p.at(token.SPECIALIZES) {
		p.advance()
		decl.Specializes = p.parseIdentList()
	}

	if p.at(token.LBRACE) {
		decl.Body = p.parseClassBody()
	}

	return decl
}

// parseClassBody parses `'{' (attribute | internal_relation)* '}'`. No
// explicit separator is required between members; each is fully
// self-delimiting.
func (p *Parser) parseClassBody() *ast.ClassBody {
	p.advance() // '{'
	body := &ast.ClassBody{}

	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		switch p.cur().Kind {
		case token.AT:
			body.Relations = append(body.Relations, p.parseInternalRelation())
		case token.IDENTIFIER:
			body.Attributes = append(body.Attributes, p.parseAttribute())
		default:
			p.unexpected(token.ILLEGAL)
			p.advance()
		}
	}
	p.expect(token.RBRACE)
	return body
}

// parseAttribute parses `IDENT ':' type_ref cardinality? meta_attrs?`.
func (p *Parser) parseAttribute() *ast.Attribute {
	nameTok := p.advance() // IDENT
	attr := &ast.Attribute{Token: nameTok, Name: nameTok.Lexeme}

	p.expect(token.COLON)
	attr.Type = p.parseTypeRef()

	if p.at(token.LBRACKET) {
		attr.Cardinality = p.parseCardinality()
	}
	if p.at(token.LBRACE) {
		attr.MetaAttrs = p.parseMetaAttrs()
	}
	return attr
}

// parseInternalRelation parses `'@' REL_STEREO cardinality connector
// cardinality IDENT`. Its domain is implicit: the enclosing class.
func (p *Parser) parseInternalRelation() *ast.InternalRelation {
	at := p.advance() // '@'
	rel := &ast.InternalRelation{Token: at}

	if t, ok := p.expect(token.RELATION_STEREOTYPE); ok {
		rel.Stereotype = t.Lexeme
	}
	if p.at(token.LBRACKET) {
		rel.DomainCard = p.parseCardinality()
	}
	rel.Connector = p.parseConnector()
	if p.at(token.LBRACKET) {
		rel.ImageCard = p.parseCardinality()
	}
	if t, ok := p.expect(token.IDENTIFIER); ok {
		rel.Image = t.Lexeme
	}
	return rel
}
