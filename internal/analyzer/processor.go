package analyzer

import (
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/pipeline"
	"github.com/gophp-lang/corephp/internal/symbols"
)

// Processor adapts Run into the pipeline.Processor chain: it consumes
// ctx.AstRoot and populates ctx.TypeMap, the last stage of the
// lexer -> parser -> type engine chain.
type Processor struct {
	Index *symbols.Index
}

func (p Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	prog, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return ctx
	}
	types := Run(prog, p.Index)
	ctx.TypeMap = types
	return ctx
}

var _ pipeline.Processor = Processor{}
