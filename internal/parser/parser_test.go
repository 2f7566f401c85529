package parser

import (
	"strings"
	"testing"

	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/lexer"
)

func mustParse(t *testing.T, src string) (*ast.Ontology, []string) {
	t.Helper()
	l := lexer.New(src)
	toks, lexErrs := l.Tokenize()
	p := New(lexer.NewTokenStream(toks))
	ont, parseErrs := p.ParseOntology()

	msgs := make([]string, 0, len(lexErrs)+len(parseErrs))
	for _, e := range lexErrs {
		msgs = append(msgs, e.Error())
	}
	for _, e := range parseErrs {
		msgs = append(msgs, e.Error())
	}
	return ont, msgs
}

// S1 from spec.md: minimal happy path.
func TestMinimalHappyPath(t *testing.T) {
	ont, msgs := mustParse(t, "package P  kind Person")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	if ont.Package == nil || ont.Package.Name != "P" {
		t.Fatalf("expected package P, got %+v", ont.Package)
	}
	if len(ont.Declarations) != 1 {
		t.Fatalf("expected one declaration, got %d", len(ont.Declarations))
	}
	class, ok := ont.Declarations[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected ClassDecl, got %T", ont.Declarations[0])
	}
	if class.Stereotype != "kind" || class.Name != "Person" || class.Body != nil {
		t.Errorf("unexpected class shape: %+v", class)
	}
}

// S2 from spec.md: cardinality parsing.
func TestCardinalityParse(t *testing.T) {
	ont, msgs := mustParse(t, "kind A { x: number[1..*] }")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	class := ont.Declarations[0].(*ast.ClassDecl)
	if len(class.Body.Attributes) != 1 {
		t.Fatalf("expected one attribute, got %d", len(class.Body.Attributes))
	}
	attr := class.Body.Attributes[0]
	if attr.Name != "x" || attr.Type.Name != "number" {
		t.Fatalf("unexpected attribute: %+v", attr)
	}
	if attr.Cardinality == nil || attr.Cardinality.Lower != 1 || !attr.Cardinality.UpperInfinite {
		t.Fatalf("unexpected cardinality: %+v", attr.Cardinality)
	}
}

// S6 from spec.md: the suggester fires on a misspelled stereotype.
func TestSuggesterOnMisspelledStereotype(t *testing.T) {
	_, msgs := mustParse(t, "kinnd Person")
	if len(msgs) == 0 {
		t.Fatal("expected a syntactic diagnostic")
	}
	found := false
	for _, m := range msgs {
		if strings.Contains(m, "kind") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected suggestion mentioning 'kind', got %v", msgs)
	}
}

// S7 from spec.md: lexical recovery lets parsing continue past bad input.
func TestLexicalRecoveryContinuesParsing(t *testing.T) {
	ont, msgs := mustParse(t, "kind $Foo  kind Bar")
	lexCount := 0
	for _, m := range msgs {
		if strings.Contains(m, "Lexical") {
			lexCount++
		}
	}
	if lexCount != 1 {
		t.Fatalf("expected exactly one lexical error, got %d: %v", lexCount, msgs)
	}
	foundBar := false
	for _, d := range ont.Declarations {
		if c, ok := d.(*ast.ClassDecl); ok && c.Name == "Bar" {
			foundBar = true
		}
	}
	if !foundBar {
		t.Errorf("expected class 'Bar' in AST, declarations: %+v", ont.Declarations)
	}
}

func TestExternalRelationRoundTrip(t *testing.T) {
	ont, msgs := mustParse(t, "kind Person  kind Company  @material relation Person [1] -- [1..*] Company")
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	var rel *ast.ExternalRelationDecl
	for _, d := range ont.Declarations {
		if r, ok := d.(*ast.ExternalRelationDecl); ok {
			rel = r
		}
	}
	if rel == nil {
		t.Fatal("expected an external relation declaration")
	}
	if rel.Domain != "Person" || rel.Image != "Company" || rel.Stereotype != "material" {
		t.Errorf("unexpected relation shape: %+v", rel)
	}
	if rel.Connector.Shape != ast.Association {
		t.Errorf("expected Association connector, got %v", rel.Connector.Shape)
	}
}

func TestGensetWhereForm(t *testing.T) {
	ont, msgs := mustParse(t, `
kind Person
phase Child specializes Person
phase Adult specializes Person
disjoint complete genset LifeStage where Child, Adult specializes Person
`)
	if len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
	var g *ast.GensetDecl
	for _, d := range ont.Declarations {
		if gs, ok := d.(*ast.GensetDecl); ok {
			g = gs
		}
	}
	if g == nil {
		t.Fatal("expected a genset declaration")
	}
	if g.General != "Person" || len(g.Specifics) != 2 {
		t.Errorf("unexpected genset shape: %+v", g)
	}
	if !g.IsDisjoint() || !g.IsComplete() {
		t.Errorf("expected disjoint+complete restrictions, got %v", g.Restrictions)
	}
}
