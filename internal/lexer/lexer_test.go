package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/token"
)

// scanAll scans src as a bare PHP fragment (no surrounding tags), for tests
// that exercise token-shape details rather than tag transitions.
func scanAll(src string) []token.Token {
	return scanFrom(lexer.NewPHP(src))
}

func scanFrom(l *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestScansVariableAndAssignment(t *testing.T) {
	toks := scanAll(`$x = 1;`)
	require.Len(t, toks, 5)
	assert.Equal(t, token.Variable, toks[0].Kind)
	assert.Equal(t, "$x", toks[0].Lexeme())
	assert.Equal(t, token.Assign, toks[1].Kind)
	assert.Equal(t, token.LNumInt, toks[2].Kind)
	assert.Equal(t, token.Semicolon, toks[3].Kind)
	assert.Equal(t, token.EOF, toks[4].Kind)
}

func TestKeywordLookupIsCaseInsensitive(t *testing.T) {
	toks := scanAll(`IF Function`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.KwIf, toks[0].Kind)
	assert.Equal(t, token.KwFunction, toks[1].Kind)
}

func TestQualifiedAndFullyQualifiedNames(t *testing.T) {
	toks := scanAll(`Foo\Bar \Baz\Qux`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.QualifiedName, toks[0].Kind)
	assert.Equal(t, token.FullyQualifiedName, toks[1].Kind)
}

func TestFloatVsIntLiterals(t *testing.T) {
	toks := scanAll(`1 1.5 1e10`)
	require.Len(t, toks, 4)
	assert.Equal(t, token.LNumInt, toks[0].Kind)
	assert.Equal(t, token.LNumFloat, toks[1].Kind)
	assert.Equal(t, token.LNumFloat, toks[2].Kind)
}

func TestThreeCharOperatorsPreferredOverShorterPrefixes(t *testing.T) {
	toks := scanAll(`$a <=> $b`)
	require.Len(t, toks, 4)
	assert.Equal(t, token.Spaceship, toks[1].Kind)
}

func TestNullsafeArrowAndAttributeMarker(t *testing.T) {
	toks := scanAll(`$a?->b #[Foo]`)
	require.Len(t, toks, 7)
	assert.Equal(t, token.NullsafeArrow, toks[1].Kind)
	assert.Equal(t, token.Attribute, toks[3].Kind)
}

func TestCommentsAreAbsorbedAsTriviaNotTokens(t *testing.T) {
	l := lexer.NewPHP("// line comment\n/** doc */\n$x;")
	tok := l.Next()
	assert.Equal(t, token.Variable, tok.Kind)

	comments := l.DrainComments()
	require.Len(t, comments, 2)
	assert.Equal(t, token.CommentLine, comments[0].Kind)
	assert.Equal(t, token.CommentDoc, comments[1].Kind)

	assert.Empty(t, l.DrainComments())
}

func TestHashCommentStopsBeforeAttributeMarker(t *testing.T) {
	toks := scanAll("#[Foo]\n# plain\n$x;")
	require.Len(t, toks, 6)
	assert.Equal(t, token.Attribute, toks[0].Kind)
}

func TestPeekAndLookaheadDoNotAdvanceCursor(t *testing.T) {
	l := lexer.NewPHP(`$a $b $c`)
	first := l.Next()
	assert.Equal(t, "$a", first.Lexeme())

	peeked := l.Peek()
	assert.Equal(t, "$b", peeked.Lexeme())

	ahead := l.Lookahead(2)
	require.Len(t, ahead, 2)
	assert.Equal(t, "$b", ahead[0].Lexeme())
	assert.Equal(t, "$c", ahead[1].Lexeme())

	assert.Equal(t, "$a", l.Current().Lexeme())
	assert.Equal(t, "$b", l.Next().Lexeme())
}

func TestIsEOFOnlyTrueAfterConsumingEOF(t *testing.T) {
	l := lexer.New(``)
	assert.False(t, l.IsEOF())
	tok := l.Next()
	assert.Equal(t, token.EOF, tok.Kind)
	assert.True(t, l.IsEOF())
}

func TestPlainTextBeforeOpenTagIsInlineHTML(t *testing.T) {
	toks := scanFrom(lexer.New(`<b>hi</b><?php $x = 1;`))
	require.True(t, len(toks) >= 3)
	assert.Equal(t, token.InlineHTML, toks[0].Kind)
	assert.Equal(t, "<b>hi</b>", toks[0].Lexeme())
	assert.Equal(t, token.OpenTag, toks[1].Kind)
	assert.Equal(t, token.Variable, toks[2].Kind)
}

func TestFileStartingDirectlyWithOpenTagHasNoLeadingInlineHTML(t *testing.T) {
	toks := scanFrom(lexer.New(`<?php $x = 1;`))
	require.True(t, len(toks) >= 2)
	assert.Equal(t, token.OpenTag, toks[0].Kind)
	assert.Equal(t, token.Variable, toks[1].Kind)
}

func TestCloseTagSwitchesBackToMarkup(t *testing.T) {
	toks := scanFrom(lexer.New(`<?php $x = 1; ?>after`))
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, token.CloseTag)
	assert.Contains(t, kinds, token.InlineHTML)

	last := toks[len(toks)-2] // before EOF
	assert.Equal(t, token.InlineHTML, last.Kind)
	assert.Equal(t, "after", last.Lexeme())
}

func TestDoubleQuotedStringWithoutInterpolationStaysPlainStringLiteral(t *testing.T) {
	toks := scanAll(`"hello world"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.StringLiteral, toks[0].Kind)
}

func TestDoubleQuotedStringWithVariableBecomesInterpString(t *testing.T) {
	toks := scanAll(`"hello $name"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.InterpString, toks[0].Kind)
}

func TestDoubleQuotedStringWithBraceHoleBecomesInterpString(t *testing.T) {
	toks := scanAll(`"total: {$a->b}"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.InterpString, toks[0].Kind)
}

func TestBacktickStringScansAsBacktickToken(t *testing.T) {
	toks := scanAll("`ls $dir`")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Backtick, toks[0].Kind)
}

func TestHeredocAndNowdocLabelsAreDistinguishedByQuoting(t *testing.T) {
	toks := scanAll("<<<EOT\nhi $name\nEOT")
	require.Len(t, toks, 2)
	assert.Equal(t, token.HeredocLabel, toks[0].Kind)

	toks = scanAll("<<<'EOT'\nhi $name\nEOT")
	require.Len(t, toks, 2)
	assert.Equal(t, token.NowdocLabel, toks[0].Kind)
}
