// Package parser builds a Tonto AST from a token stream, per the grammar
// in spec.md §4.2. It always returns a root Ontology node, recovering
// from syntax errors by synchronizing on the next declaration keyword or
// closing brace rather than aborting.
package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/lexer"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// Parser is a two-token-lookahead recursive-descent parser over a
// TokenStream.
type Parser struct {
	stream *lexer.TokenStream
	errors []*diagnostics.DiagnosticError
}

// New wraps stream for parsing.
func New(stream *lexer.TokenStream) *Parser {
	return &Parser{stream: stream}
}

func (p *Parser) cur() token.Token    { return p.stream.Current() }
func (p *Parser) peek() token.Token   { return p.stream.Peek(1) }
func (p *Parser) advance() token.Token { return p.stream.Advance() }

func (p *Parser) at(kind token.Kind) bool { return p.cur().Kind == kind }

// expect consumes the current token if it matches kind, else records a
// syntax error (with a suggestion) and returns the zero Token.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.unexpected(kind)
	return token.Token{}, false
}

// unexpected records a syntactic diagnostic for the current token,
// naming what was expected unless expected is the ILLEGAL placeholder.
func (p *Parser) unexpected(expected token.Kind) {
	t := p.cur()
	if t.Kind == token.EOF {
		p.errors = append(p.errors, diagnostics.New(
			"Y002", diagnostics.Syntactic, diagnostics.Error, t.Pos(),
			"unexpected end of input",
		))
		return
	}

	msg := "unexpected token " + t.Kind.String()
	if t.Lexeme != "" {
		msg += " '" + t.Lexeme + "'"
	}
	if expected != token.ILLEGAL {
		msg += "; expected " + expected.String()
	}

	d := diagnostics.New("Y001", diagnostics.Syntactic, diagnostics.Error, t.Pos(), msg)
	if hints := Suggest(t.Lexeme); len(hints) > 0 {
		d.WithSuggestion(joinComma(hints))
	}
	p.errors = append(p.errors, d)
}

func joinComma(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out
}

// declStartKinds are the tokens that begin a top-level declaration; they
// double as synchronization points after a parse error.
var declStartKinds = map[token.Kind]bool{
	token.CLASS_STEREOTYPE: true,
	token.DATATYPE:         true,
	token.ENUM:             true,
	token.GENSET:           true,
	token.DISJOINT:         true,
	token.COMPLETE:         true,
	token.INCOMPLETE:       true,
	token.OVERLAPPING:      true,
	token.AT:               true,
	token.PACKAGE:          true,
	token.IMPORT:           true,
}

// synchronize discards tokens until a declaration-start keyword, a
// closing brace, or EOF, so that the next parseDeclaration call begins
// from a plausible boundary.
func (p *Parser) synchronize() {
	for !p.at(token.EOF) {
		if declStartKinds[p.cur().Kind] || p.at(token.RBRACE) {
			return
		}
		p.advance()
	}
}

// ParseOntology parses a full source file: an optional package clause,
// an ordered import list, and an ordered declaration list. It always
// returns a non-nil root, even for malformed or empty input.
func (p *Parser) ParseOntology() (*ast.Ontology, []*diagnostics.DiagnosticError) {
	ont := &ast.Ontology{}

	if p.at(token.PACKAGE) {
		ont.Package = p.parsePackageClause()
	}

	for p.at(token.IMPORT) {
		ont.Imports = append(ont.Imports, p.parseImport())
	}

	for !p.at(token.EOF) {
		decl := p.parseDeclaration()
		if decl != nil {
			ont.Declarations = append(ont.Declarations, decl)
		}
	}

	return ont, p.errors
}

func (p *Parser) parsePackageClause() *ast.PackageClause {
	kw := p.advance() // 'package'
	name, ok := p.expect(token.IDENTIFIER)
	if !ok {
		return &ast.PackageClause{Token: kw}
	}
	return &ast.PackageClause{Token: kw, Name: name.Lexeme}
}

func (p *Parser) parseImport() *ast.Import {
	kw := p.advance() // 'import'
	name, ok := p.expect(token.IDENTIFIER)
	if !ok {
		return &ast.Import{Token: kw}
	}
	return &ast.Import{Token: kw, Name: name.Lexeme}
}

// parseDeclaration dispatches on the current token's kind, per the
// `declaration` production. An unrecognized token yields an ErrorDecl
// placeholder after synchronizing, so the declaration list keeps its
// positional shape instead of silently shrinking.
func (p *Parser) parseDeclaration() ast.Declaration {
	switch p.cur().Kind {
	case token.CLASS_STEREOTYPE:
		return p.parseClassDecl()
	case token.DATATYPE:
		return p.parseDatatypeDecl()
	case token.ENUM:
		return p.parseEnumDecl()
	case token.GENSET, token.DISJOINT, token.COMPLETE, token.INCOMPLETE, token.OVERLAPPING:
		return p.parseGensetDecl()
	case token.AT:
		return p.parseExternalRelation()
	default:
		errTok := p.cur()
		p.unexpected(token.ILLEGAL)
		// synchronize() stops immediately if the current token is already
		// a sync point (RBRACE, or a misplaced PACKAGE/IMPORT that this
		// switch has no case for), so advance past the bad token first to
		// guarantee the loop in ParseOntology always makes progress.
		p.advance()
		p.synchronize()
		return &ast.ErrorDecl{Token: errTok}
	}
}
