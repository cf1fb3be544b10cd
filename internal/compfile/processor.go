package compfile

import (
	"github.com/forlang/forc/internal/pipeline"
)

// DecodeProcessor is the pipeline stage turning description bytes into a
// comprehension term.
type DecodeProcessor struct{}

func (dp *DecodeProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	comp, err := Decode(ctx.Input)
	if err != nil {
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Comp = comp
	return ctx
}
