package pipeline

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/ast"
	"github.com/vynijales/ufersa-compilador-tonto/internal/diagnostics"
	"github.com/vynijales/ufersa-compilador-tonto/internal/symbols"
	"github.com/vynijales/ufersa-compilador-tonto/internal/token"
)

// PipelineContext is threaded through every Processor. Each stage appends
// its own diagnostics and fills in the field(s) it owns; a nil field
// downstream simply means that stage never reached a usable result.
type PipelineContext struct {
	Source   string
	FilePath string

	Tokens  []token.Token
	AstRoot *ast.Ontology

	SymbolTable *symbols.SymbolTable

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext creates a fresh context for a single analysis of source.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{Source: source}
}

// Processor is one stage of the analysis pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
