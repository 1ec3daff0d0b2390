package astdump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophp-lang/corephp/internal/astdump"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/parser"
)

func mustParse(t *testing.T, src string) any {
	t.Helper()
	stream := lexer.New(src)
	prog, errs := parser.ParseProgram(stream, "t.php")
	require.Empty(t, errs)
	return astdump.Dump(prog)
}

func TestDumpProgramHasFileAndBodyFields(t *testing.T) {
	out := mustParse(t, `<?php echo 1;`)
	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Program", m["node"])
	assert.Equal(t, "t.php", m["file"])
	body, ok := m["body"].([]any)
	require.True(t, ok)
	require.Len(t, body, 1)
}

func TestDumpNilNodeReturnsNil(t *testing.T) {
	assert.Nil(t, astdump.Dump(nil))
}

func TestDumpHandlesFunctionDeclWithNoReturnType(t *testing.T) {
	out := mustParse(t, `<?php function f($x) { return $x; }`)
	m := out.(map[string]any)
	body := m["body"].([]any)
	require.Len(t, body, 1)
	fn, ok := body[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FunctionDeclStmt", fn["node"])
}

func TestDumpHandlesIfWithoutElse(t *testing.T) {
	out := mustParse(t, `<?php if ($x) { echo 1; }`)
	m := out.(map[string]any)
	body := m["body"].([]any)
	require.Len(t, body, 1)
	ifNode, ok := body[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "IfStmt", ifNode["node"])
}
