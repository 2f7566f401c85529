package parser

import (
	"strconv"

	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// parseTypeRef parses `NATIVE_TYPE | USER_TYPE | IDENT`.
func (p *Parser) parseTypeRef() ast.TypeRef {
	t := p.cur()
	switch t.Kind {
	case token.NATIVE_TYPE:
		p.advance()
		return ast.TypeRef{Token: t, Kind: ast.NativeTypeRef, Name: t.Lexeme}
	case token.USER_TYPE:
		p.advance()
		return ast.TypeRef{Token: t, Kind: ast.UserTypeRef, Name: t.Lexeme}
	case token.IDENTIFIER:
		p.advance()
		return ast.TypeRef{Token: t, Kind: ast.ClassTypeRef, Name: t.Lexeme}
	default:
		p.unexpected(token.IDENTIFIER)
		return ast.TypeRef{Token: t, Kind: ast.ClassTypeRef}
	}
}

// parseCardinality parses `'[' (NUMBER|'*') ('..' (NUMBER|'*'))? ']'`.
// The caller checks for LBRACKET before calling.
func (p *Parser) parseCardinality() *ast.Cardinality {
	open := p.advance() // '['
	c := &ast.Cardinality{Token: open}

	lower, lowerInf := p.parseBound()
	c.Lower = lower

	if p.at(token.DOTDOT) {
		p.advance()
		upper, upperInf := p.parseBound()
		c.Upper = upper
		c.UpperInfinite = upperInf
	} else if lowerInf {
		c.UpperInfinite = true
	} else {
		c.Upper = lower
	}

	p.expect(token.RBRACKET)
	return c
}

// parseBound parses a single cardinality endpoint, either a NUMBER or '*'.
func (p *Parser) parseBound() (value int, infinite bool) {
	if p.at(token.STAR) {
		p.advance()
		return 0, true
	}
	t, ok := p.expect(token.NUMBER)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(t.Lexeme)
	if err != nil {
		return 0, false
	}
	return n, false
}

// parseMetaAttrs parses `'{' META_ATTRIBUTE (',' META_ATTRIBUTE)* '}'`.
// The caller checks for LBRACE before calling.
func (p *Parser) parseMetaAttrs() []string {
	p.advance() // '{'
	var attrs []string
	for {
		t, ok := p.expect(token.META_ATTRIBUTE)
		if ok {
			attrs = append(attrs, t.Lexeme)
		}
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RBRACE)
	return attrs
}

// parseIdentList parses a comma-separated `ident_list`.
func (p *Parser) parseIdentList() []string {
	var names []string
	t, ok := p.expect(token.IDENTIFIER)
	if ok {
		names = append(names, t.Lexeme)
	}
	for p.at(token.COMMA) {
		p.advance()
		t, ok := p.expect(token.IDENTIFIER)
		if ok {
			names = append(names, t.Lexeme)
		}
	}
	return names
}
