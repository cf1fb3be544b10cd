package prettyprinter

import (
	"github.com/forlang/forc/internal/pipeline"
)

// RenderProcessor is the pipeline stage rendering the desugared expression
// as combinator source and as a structural tree.
type RenderProcessor struct{}

func (rp *RenderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Result == nil {
		return ctx
	}
	cp := NewCodePrinter()
	ctx.Result.Accept(cp)
	ctx.Rendered = cp.String()

	tp := NewTreePrinter()
	ctx.Result.Accept(tp)
	ctx.Tree = tp.String()
	return ctx
}
