package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/token"
)

func TestNewDefaultsToErrorSeverity(t *testing.T) {
	tok := token.Token{Kind: token.Semicolon, Span: token.Span{Start: 3, End: 4}}
	d := diagnostics.New(diagnostics.UnexpectedToken, tok, "unexpected %s", tok.Kind)
	assert.Equal(t, diagnostics.Error, d.Severity)
	assert.Equal(t, diagnostics.UnexpectedToken, d.Code)
	assert.Equal(t, tok.Span, d.Span)
	assert.Contains(t, d.Error(), "unexpected")
}

func TestNewAtUsesExplicitSeverityAndSpan(t *testing.T) {
	sp := token.Zero(10)
	d := diagnostics.NewAt(diagnostics.InvalidTargetForAttributes, sp, diagnostics.Warning, "stray attribute")
	assert.Equal(t, diagnostics.Warning, d.Severity)
	assert.Equal(t, sp, d.Span)
}

func TestExpectedTokenErrorNamesBoth(t *testing.T) {
	found := token.Token{Kind: token.RParen, Span: token.Zero(5)}
	d := diagnostics.ExpectedTokenError([]token.Kind{token.Semicolon, token.Comma}, found)
	assert.Equal(t, diagnostics.ExpectedToken, d.Code)
	assert.Contains(t, d.Message, "expected")
}

func TestSeverityStringsAreLowercase(t *testing.T) {
	assert.Equal(t, "error", diagnostics.Error.String())
	assert.Equal(t, "warning", diagnostics.Warning.String())
	assert.Equal(t, "hint", diagnostics.Hint.String())
}
