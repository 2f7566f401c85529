package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// parseDatatypeDecl parses `'datatype' USER_TYPE '{' attribute* '}'`.
func (p *Parser) parseDatatypeDecl() ast.Declaration {
	kw := p.advance() // 'datatype'
	decl := &ast.DatatypeDecl{Token: kw}

	name, ok := p.expect(token.USER_TYPE)
	if !ok {
		p.synchronize()
		return decl
	}
	decl.Name = name.Lexeme

	if _, ok := p.expect(token.LBRACE); !ok {
		p.synchronize()
		return decl
	}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		if p.at(token.IDENTIFIER) {
			decl.Attributes = append(decl.Attributes, p.parseAttribute())
			continue
		}
		p.unexpected(token.IDENTIFIER)
		p.advance()
	}
	p.expect(token.RBRACE)

	return decl
}
