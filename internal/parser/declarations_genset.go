package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

var restrictionKinds = map[token.Kind]ast.GensetRestriction{
	token.DISJOINT:    ast.Disjoint,
	token.COMPLETE:    ast.Complete,
	token.INCOMPLETE:  ast.Incomplete,
	token.OVERLAPPING: ast.Overlapping,
}

// parseGensetDecl parses either surface form of `genset_decl`:
//
//	restriction* 'genset' IDENT '{' 'general' IDENT 'specifics' ident_list '}'
//	restriction* 'genset' IDENT 'where' ident_list 'specializes' IDENT
func (p *Parser) parseGensetDecl() ast.Declaration {
	var restrictions []ast.GensetRestriction
	firstTok := p.cur()
	for {
		r, ok := restrictionKinds[p.cur().Kind]
		if !ok {
			break
		}
		restrictions = append(restrictions, r)
		p.advance()
	}

	kw, ok := p.expect(token.GENSET)
	if !ok {
		p.synchronize()
		return &ast.ErrorDecl{Token: firstTok}
	}
	decl := &ast.GensetDecl{Token: firstTok, Restrictions: restrictions}
	if restrictions == nil {
		decl.Token = kw
	}

	name, ok := p.expect(token.IDENTIFIER)
	if !ok {
		p.synchronize()
		return decl
	}
	decl.Name = name.Lexeme

	switch p.cur().Kind {
	case token.LBRACE:
		p.advance()
		p.expect(token.GENERAL)
		if t, ok := p.expect(token.IDENTIFIER); ok {
			decl.General = t.Lexeme
		}
		p.expect(token.SPECIFICS)
		decl.Specifics = p.parseIdentList()
		p.expect(token.RBRACE)

	case token.WHERE:
		p.advance()
		decl.Specifics = p.parseIdentList()
		p.expect(token.SPECIALIZES)
		if t, ok := p.expect(token.IDENTIFIER); ok {
			decl.General = t.Lexeme
		}

	default:
		p.unexpected(token.LBRACE)
		p.synchronize()
	}

	return decl
}
