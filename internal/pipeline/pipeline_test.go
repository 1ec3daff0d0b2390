package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/pipeline"
	"github.com/gophp-lang/corephp/internal/token"
)

type stageFunc func(ctx *pipeline.Context) *pipeline.Context

func (f stageFunc) Process(ctx *pipeline.Context) *pipeline.Context { return f(ctx) }

func TestNewContextDerivesDisplayNameAndDir(t *testing.T) {
	ctx := pipeline.NewContext("/src/app/widget.php", "<?php echo 1;")
	assert.Equal(t, "widget", ctx.DisplayName)
	assert.Equal(t, "/src/app", ctx.Dir)
	assert.NotEqual(t, ctx.RunID.String(), "")
}

func TestTwoContextsGetDistinctRunIDs(t *testing.T) {
	a := pipeline.NewContext("a.php", "")
	b := pipeline.NewContext("b.php", "")
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestPipelineRunsStagesInOrderAndContinuesAfterErrors(t *testing.T) {
	var order []string
	failing := stageFunc(func(ctx *pipeline.Context) *pipeline.Context {
		order = append(order, "first")
		ctx.Errors = append(ctx.Errors, diagnostics.New(diagnostics.UnexpectedToken, token.Token{}, "boom"))
		return ctx
	})
	second := stageFunc(func(ctx *pipeline.Context) *pipeline.Context {
		order = append(order, "second")
		return ctx
	})

	p := pipeline.New(failing, second)
	ctx := p.Run(pipeline.NewContext("f.php", ""))

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, ctx.Errors, 1)
}
