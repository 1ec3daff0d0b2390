package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/token"
)

func TestKeywordsAreCaseNormalizedLookupKeys(t *testing.T) {
	kind, ok := token.Keywords["function"]
	assert.True(t, ok)
	assert.Equal(t, token.KwFunction, kind)
}

func TestCombineSpansTheWidestRange(t *testing.T) {
	a := token.Span{Start: 5, End: 10}
	b := token.Span{Start: 2, End: 7}
	got := token.Combine(a, b)
	assert.Equal(t, token.Span{Start: 2, End: 10}, got)
}

func TestZeroSpanIsEmptyAtPos(t *testing.T) {
	sp := token.Zero(42)
	assert.Equal(t, 42, sp.Start)
	assert.Equal(t, 42, sp.End)
}

func TestTokenLexemeDecodesSymbolBytes(t *testing.T) {
	tok := token.Token{Kind: token.Variable, Symbol: []byte("$foo")}
	assert.Equal(t, "$foo", tok.Lexeme())
}

func TestIsKeywordIdentifierAcceptsConstructLikeKeywords(t *testing.T) {
	assert.True(t, token.IsKeywordIdentifier(token.KwList))
	assert.True(t, token.IsKeywordIdentifier(token.KwMatch))
	assert.False(t, token.IsKeywordIdentifier(token.KwIf))
}

func TestKindStringFallsBackToNumericForm(t *testing.T) {
	assert.Equal(t, "(", token.LParen.String())
	assert.Contains(t, token.Kind(9999).String(), "Kind(")
}
