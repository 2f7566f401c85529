package parser

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/lexer"
	"github.com/vynijales/ufersa-compilador-tonto/internal/pipeline"
)

// Processor is the pipeline.Processor that parses ctx.Tokens into
// ctx.AstRoot, appending any syntactic diagnostics.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	stream := lexer.NewTokenStream(ctx.Tokens)
	p := New(stream)
	ont, errs := p.ParseOntology()
	ctx.AstRoot = ont
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
