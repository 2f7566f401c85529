package analyzer

import (
	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
	"github.com/vynijales/ufersa-compilador-tonto/internal/pipeline"
)

// Processor is the pipeline.Processor that runs semantic analysis over
// ctx.AstRoot, filling ctx.SymbolTable and appending semantic diagnostics.
type Processor struct {
	Rules config.RuleConfig
}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	table, diags := Analyze(ctx.AstRoot, p.Rules)
	ctx.SymbolTable = table
	ctx.Errors = append(ctx.Errors, diags...)
	return ctx
}
