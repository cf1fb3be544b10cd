package pipeline

import (
	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/term"
)

// PipelineContext carries one description file through the CLI stages:
// decode, desugar, render.
type PipelineContext struct {
	FilePath string
	Input    []byte

	Comp     *term.Comprehension // set by the decode stage
	Result   term.Expression     // set by the desugar stage
	Rendered string              // set by the render stage
	Tree     string              // set by the render stage

	MaxClauses int // 0 means the configured default

	Errors []*diagnostics.DiagnosticError
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages after a failure still run so all
// diagnostics are collected, but each stage skips work whose inputs are
// missing.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
