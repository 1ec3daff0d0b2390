package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	stream := lexer.New(src)
	prog, errs := parser.ParseProgram(stream, "t.php")
	require.Empty(t, errs)
	return prog
}

func onlyExpr(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	return stmt.Expr
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	prog := mustParse(t, `<?php 1 + 2 * 3;`)
	add, ok := onlyExpr(t, prog).(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op)

	_, leftIsInt := add.Left.(*ast.IntegerLiteral)
	assert.True(t, leftIsInt)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog := mustParse(t, `<?php $a = $b = 1;`)
	outer, ok := onlyExpr(t, prog).(*ast.AssignExpr)
	require.True(t, ok)

	_, leftIsVar := outer.Left.(*ast.Variable)
	assert.True(t, leftIsVar)

	inner, ok := outer.Right.(*ast.AssignExpr)
	require.True(t, ok)
	_, innerLeftIsVar := inner.Left.(*ast.Variable)
	assert.True(t, innerLeftIsVar)
}

func TestUnexpectedTokenRecoversWithMissingExprAndDiagnostic(t *testing.T) {
	stream := lexer.New(`<?php $x = ;`)
	prog, errs := parser.ParseProgram(stream, "t.php")
	require.NotEmpty(t, errs)

	assign, ok := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	require.True(t, ok)
	_, isMissing := assign.Right.(*ast.Missing)
	assert.True(t, isMissing)
}

func TestIfStatementParsesBlockBranches(t *testing.T) {
	prog := mustParse(t, `<?php if ($x) { echo 1; } else { echo 2; }`)
	ifStmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)

	then, ok := ifStmt.Then.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, then.Statements, 1)

	elseBlock, ok := ifStmt.Else.(*ast.BlockStmt)
	require.True(t, ok)
	assert.Len(t, elseBlock.Statements, 1)
}

func TestAttributeOnExpressionStatementIsRejected(t *testing.T) {
	stream := lexer.New("<?php #[Foo]\n$x = 1;")
	_, errs := parser.ParseProgram(stream, "t.php")
	require.NotEmpty(t, errs)
	assert.Equal(t, "InvalidTargetForAttributes", string(errs[0].Code))
}

func TestAttributeOnFunctionDeclIsAccepted(t *testing.T) {
	stream := lexer.New("<?php #[Foo]\nfunction f() {}")
	_, errs := parser.ParseProgram(stream, "t.php")
	assert.Empty(t, errs)
}

func TestLeadingMarkupBeforeOpenTagBecomesInlineHTML(t *testing.T) {
	prog := mustParse(t, `<b>hi</b><?php echo 1;`)
	require.Len(t, prog.Statements, 2)
	html, ok := prog.Statements[0].(*ast.InlineHTMLStmt)
	require.True(t, ok)
	assert.Equal(t, "<b>hi</b>", string(html.Text))
}

func TestCloseTagThenMarkupThenReopenTag(t *testing.T) {
	prog := mustParse(t, `<?php $x = 1; ?>text<?php $y = 2;`)
	require.Len(t, prog.Statements, 3)
	_, isExpr := prog.Statements[0].(*ast.ExpressionStmt)
	assert.True(t, isExpr)
	html, ok := prog.Statements[1].(*ast.InlineHTMLStmt)
	require.True(t, ok)
	assert.Equal(t, "text", string(html.Text))
}

func TestInterpolatedStringSplitsLiteralAndVariableParts(t *testing.T) {
	prog := mustParse(t, `<?php "hello $name!";`)
	expr := onlyExpr(t, prog)
	interp, ok := expr.(*ast.InterpolatedStringExpr)
	require.True(t, ok)
	require.Len(t, interp.Parts, 3)
	lit, ok := interp.Parts[0].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello ", string(lit.Value))
	v, ok := interp.Parts[1].(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "name", v.Name)
}

func TestInterpolatedStringBraceHoleParsesFullExpression(t *testing.T) {
	prog := mustParse(t, `<?php "total: {$order->total}";`)
	interp := onlyExpr(t, prog).(*ast.InterpolatedStringExpr)
	require.Len(t, interp.Parts, 2)
	_, ok := interp.Parts[1].(*ast.PropertyAccessExpr)
	assert.True(t, ok)
}

func TestShellExecExprParsesBacktickString(t *testing.T) {
	prog := mustParse(t, "<?php `ls $dir`;")
	_, ok := onlyExpr(t, prog).(*ast.ShellExecExpr)
	assert.True(t, ok)
}

func TestNowdocProducesLiteralInterpolatedString(t *testing.T) {
	prog := mustParse(t, "<?php <<<'EOT'\nraw $text\nEOT;\n")
	interp := onlyExpr(t, prog).(*ast.InterpolatedStringExpr)
	assert.True(t, interp.Nowdoc)
	require.Len(t, interp.Parts, 1)
	lit := interp.Parts[0].(*ast.StringLiteral)
	assert.Equal(t, "raw $text", string(lit.Value))
}

func TestAttributedClosureInCallArgumentIsAccepted(t *testing.T) {
	prog := mustParse(t, `<?php array_map(#[Pure] function ($x) { return $x; }, $xs);`)
	call := onlyExpr(t, prog).(*ast.CallExpr)
	require.Len(t, call.Args, 2)
	attributed, ok := call.Args[0].Value.(*ast.AttributedClosureExpr)
	require.True(t, ok)
	_, innerIsClosure := attributed.Inner.(*ast.ClosureExpr)
	assert.True(t, innerIsClosure)
}

func TestInstanceofAcceptsEnumAndFromReservedWords(t *testing.T) {
	stream := lexer.New(`<?php $x instanceof enum; $y instanceof from;`)
	_, errs := parser.ParseProgram(stream, "t.php")
	assert.Empty(t, errs)
}
