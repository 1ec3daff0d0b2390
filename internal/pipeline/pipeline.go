// Package pipeline chains the lexer, parser and type-engine processors over
// one source file, following a chain-of-responsibility shape: a shared
// Context threaded through an ordered list of Processors.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/utils"
)

// Context threads state through lexer -> parser -> type engine. Each
// Processor reads what earlier stages produced and fills in its own
// field(s); nothing here is shared between concurrent runs.
type Context struct {
	RunID      uuid.UUID // stamped at construction, correlates batch diagnostics
	FilePath   string
	SourceCode string

	// DisplayName and Dir are derived once from FilePath so every stage
	// (diagnostics rendering, include-path resolution in a future
	// consumer) uses the same normalized name instead of recomputing it.
	DisplayName string
	Dir         string

	TokenStream any // set by the lexer stage; concrete type is lexer.TokenStream
	AstRoot     any // set by the parser stage; concrete type is *ast.Program
	TypeMap     any // set by the type-engine stage; concrete type is *analyzer.TypeMap

	Errors []*diagnostics.Diagnostic
}

// NewContext constructs a Context for one parse of sourceCode, stamping a
// fresh RunID for diagnostic correlation.
func NewContext(filePath, sourceCode string) *Context {
	return &Context{
		RunID:       uuid.New(),
		FilePath:    filePath,
		SourceCode:  sourceCode,
		DisplayName: utils.ExtractFileName(filePath),
		Dir:         utils.ContainingDir(filePath),
	}
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, continuing on errors so later stages can
// still contribute diagnostics (e.g. type-engine errors alongside parse
// errors) rather than aborting the whole run on the first failure.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
