package lexer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/pipeline"
)

// LexerProcessor is the pipeline.Processor that runs the lexer over
// ctx.Source and fills ctx.Tokens.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.Source)
	toks, errs := l.Tokenize()
	ctx.Tokens = toks
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
