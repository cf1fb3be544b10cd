package rewrite

import (
	"github.com/forlang/forc/internal/pipeline"
)

// DesugarProcessor is the pipeline stage rewriting the decoded comprehension
// into its combinator expression.
type DesugarProcessor struct {
	Options Options
}

func (dp *DesugarProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Comp == nil {
		// Decode stage failed; its diagnostics are already on the context.
		return ctx
	}
	opts := dp.Options
	if opts.MaxClauses == 0 {
		opts.MaxClauses = ctx.MaxClauses
	}
	result, err := Desugar(ctx.Comp, opts)
	if err != nil {
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Result = result
	return ctx
}
