package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophp-lang/corephp/internal/fixtures"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/parser"
	"github.com/gophp-lang/corephp/internal/prettyprinter"
)

func TestLoadIfElseFixture(t *testing.T) {
	c, err := fixtures.Load("testdata/if_else.txtar")
	require.NoError(t, err)
	assert.Contains(t, c.Source, "if ($x > 1)")
	assert.Contains(t, c.Wants, "print.php")
}

func TestPrettyPrinterRoundTripsFixture(t *testing.T) {
	c, err := fixtures.Load("testdata/if_else.txtar")
	require.NoError(t, err)

	stream := lexer.New(c.Source)
	prog, errs := parser.ParseProgram(stream, "if_else.php")
	require.Empty(t, errs)

	got := prettyprinter.Print(prog)
	assert.Equal(t, c.Wants["print.php"], got)
}
