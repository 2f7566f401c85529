package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// parseEnumDecl parses `'enum' IDENT '{' IDENT (',' IDENT)* '}'`.
func (p *Parser) parseEnumDecl() ast.Declaration {
	kw := p.advance() // 'enum'
	decl := &ast.EnumDecl{Token: kw}

	name, ok := p.expect(token.IDENTIFIER)
	if !ok {
		p.synchronize()
		return decl
	}
	decl.Name = name.Lexeme

	if _, ok := p.expect(token.LBRACE); !ok {
		p.synchronize()
		return decl
	}
	decl.Values = p.parseIdentList()
	p.expect(token.RBRACE)

	return decl
}
