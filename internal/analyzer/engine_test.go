package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophp-lang/corephp/internal/analyzer"
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/parser"
	"github.com/gophp-lang/corephp/internal/symbols"
	"github.com/gophp-lang/corephp/internal/typesystem"
)

func mustParse(t *testing.T, src string) (*ast.Program, []*diagnostics.Diagnostic) {
	t.Helper()
	stream := lexer.New(src)
	prog, errs := parser.ParseProgram(stream, "test.php")
	require.NotNil(t, prog)
	return prog, errs
}

// unionMembers asserts that t is a UnionType whose members match want,
// order-insensitively.
func unionMembers(t *testing.T, typ typesystem.Type, want ...typesystem.Type) {
	t.Helper()
	if len(want) == 1 {
		assert.Equal(t, want[0], typ)
		return
	}
	u, ok := typ.(typesystem.UnionType)
	require.True(t, ok, "expected a union, got %#v", typ)
	require.Len(t, u.Members, len(want))
	for _, w := range want {
		found := false
		for _, m := range u.Members {
			if m == w {
				found = true
				break
			}
		}
		assert.True(t, found, "union %v missing member %v", u, w)
	}
}

// Scenario 1: `$a = 1 + 2;`
func TestAssignArithmeticIsInteger(t *testing.T) {
	prog, errs := mustParse(t, `<?php $a = 1 + 2;`)
	require.Empty(t, errs)

	exprStmt := prog.Statements[0].(*ast.ExpressionStmt)
	assign := exprStmt.Expr.(*ast.AssignExpr)
	bin := assign.Right.(*ast.BinaryExpr)
	assert.Equal(t, ast.FamilyArithmetic, bin.Family)

	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.Integer, types.Get(assign.ID()))

	variable := assign.Left.(*ast.Variable)
	assert.Equal(t, "a", variable.Name)
	assert.Equal(t, typesystem.Integer, types.Get(variable.ID()))
}

// Scenario 2: a resolved function call's type comes from the symbol index,
// and the call's return type propagates to the assigned variable.
func TestCallReturnTypePropagatesToVariable(t *testing.T) {
	prog, errs := mustParse(t, `<?php function f(int $x): string { return ""; } $y = f(1);`)
	require.Empty(t, errs)

	index := symbols.New()
	index.RegisterFunction(&symbols.FunctionSymbol{Name: "f", ReturnType: typesystem.String})

	exprStmt := prog.Statements[1].(*ast.ExpressionStmt)
	assign := exprStmt.Expr.(*ast.AssignExpr)
	call := assign.Right.(*ast.CallExpr)
	target := call.Target.(*ast.Name)
	require.True(t, target.IsResolved())
	assert.Equal(t, "f", target.Resolved)

	types := analyzer.Run(prog, index)
	assert.Equal(t, typesystem.String, types.Get(call.ID()))
	assert.Equal(t, typesystem.String, types.Get(assign.Left.(*ast.Variable).ID()))
}

// Scenario 3: a positional array literal infers TypedArray(Integer,
// Union(Integer, LiteralString("a"))).
func TestPositionalArrayLiteral(t *testing.T) {
	prog, errs := mustParse(t, `<?php [1, "a", 2];`)
	require.Empty(t, errs)

	arr := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.ArrayExpr)
	types := analyzer.Run(prog, nil)

	got := types.Get(arr.ID()).(typesystem.TypedArrayType)
	assert.Equal(t, typesystem.Integer, got.Key)
	unionMembers(t, got.Value, typesystem.Integer, typesystem.LiteralStringType{Value: "a"})
}

// Scenario 4: explicit keys union their own types; values union separately.
func TestKeyedArrayLiteral(t *testing.T) {
	prog, errs := mustParse(t, `<?php ["k" => 1, 2 => 2];`)
	require.Empty(t, errs)

	arr := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.ArrayExpr)
	types := analyzer.Run(prog, nil)

	got := types.Get(arr.ID()).(typesystem.TypedArrayType)
	unionMembers(t, got.Key, typesystem.LiteralStringType{Value: "k"}, typesystem.Integer)
	assert.Equal(t, typesystem.Integer, got.Value)
}

// Scenario 5: `$a ?: $b` parses as a single ShortTernaryExpr with no
// synthesized `then` node — the AST shape itself is the invariant here.
func TestShortTernaryHasNoThenNode(t *testing.T) {
	prog, errs := mustParse(t, `<?php $a ?: $b;`)
	require.Empty(t, errs)

	st := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.ShortTernaryExpr)
	assert.Equal(t, "a", st.Condition.(*ast.Variable).Name)
	assert.Equal(t, "b", st.Else.(*ast.Variable).Name)

	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.Mixed, types.Get(st.ID()))
}

// Scenario 6: `instanceof self` accepts the reserved word as its right
// operand without a diagnostic.
func TestInstanceofSelfRHS(t *testing.T) {
	prog, errs := mustParse(t, `<?php $a instanceof self;`)
	require.Empty(t, errs)

	inst := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.InstanceofExpr)
	right := inst.Right.(*ast.Name)
	assert.True(t, right.IsSpecial())
	assert.Equal(t, ast.SpecialSelf, right.Special)

	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.Boolean, types.Get(inst.ID()))
}

// Scenario 7: `strlen(...)` is a first-class-callable creation, not a call.
func TestFunctionClosureCreationNotACall(t *testing.T) {
	prog, errs := mustParse(t, `<?php strlen(...);`)
	require.Empty(t, errs)

	creation := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.FunctionClosureCreationExpr)
	target := creation.Target.(*ast.Name)
	require.True(t, target.IsResolved())
	assert.Equal(t, "strlen", target.Resolved)
}

// Scenario 8: `new $c()` types as Named when $c currently holds a literal
// string naming a class the symbol index knows about, Object otherwise.
func TestNewWithDynamicClassLiteral(t *testing.T) {
	prog, errs := mustParse(t, `<?php $c = "Foo"; new $c();`)
	require.Empty(t, errs)

	index := symbols.New()
	index.RegisterClass(&symbols.ClassSymbol{Name: "Foo"})

	newExpr := prog.Statements[1].(*ast.ExpressionStmt).Expr.(*ast.NewExpr)
	types := analyzer.Run(prog, index)
	assert.Equal(t, typesystem.NamedType{Name: "Foo"}, types.Get(newExpr.ID()))
}

func TestNewWithUnknownClassLiteralFallsBackToObject(t *testing.T) {
	prog, errs := mustParse(t, `<?php $c = "Bar"; new $c();`)
	require.Empty(t, errs)

	index := symbols.New() // "Bar" never registered
	newExpr := prog.Statements[1].(*ast.ExpressionStmt).Expr.(*ast.NewExpr)
	types := analyzer.Run(prog, index)
	assert.Equal(t, typesystem.Object, types.Get(newExpr.ID()))
}

func TestNewWithResolvedNameIsNamed(t *testing.T) {
	prog, errs := mustParse(t, `<?php new Foo();`)
	require.Empty(t, errs)

	newExpr := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.NewExpr)
	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.NamedType{Name: "Foo"}, types.Get(newExpr.ID()))
}

func TestPrintIsConstExprOne(t *testing.T) {
	prog, errs := mustParse(t, `<?php print "hi";`)
	require.Empty(t, errs)

	ctl := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.ControlExpr)
	require.Equal(t, ast.CtlPrint, ctl.Kind)
	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.ConstExprType{ConstKind: typesystem.ConstInt, IntValue: 1}, types.Get(ctl.ID()))
}

func TestUnknownVariableOmittedFromTypeMap(t *testing.T) {
	prog, errs := mustParse(t, `<?php $missing;`)
	require.Empty(t, errs)

	v := prog.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.Variable)
	types := analyzer.Run(prog, nil)
	_, ok := types[v.ID()]
	assert.False(t, ok, "an unresolved variable must not be recorded, only default to Mixed on query")
	assert.Equal(t, typesystem.Mixed, types.Get(v.ID()))
}

func TestClosureUseCapturesByValue(t *testing.T) {
	prog, errs := mustParse(t, `<?php
$a = 1;
$f = function () use ($a) { return $a + 1; };
`)
	require.Empty(t, errs)

	closureAssign := prog.Statements[1].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	closure := closureAssign.Right.(*ast.ClosureExpr)
	ret := closure.Body[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	capturedVar := bin.Left.(*ast.Variable)

	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.Integer, types.Get(capturedVar.ID()))
	assert.Equal(t, typesystem.Integer, types.Get(bin.ID()))
}

func TestForeachBindsKeyAndValueFromTypedArray(t *testing.T) {
	prog, errs := mustParse(t, `<?php
$items = [1, 2];
foreach ($items as $k => $v) {
    $v;
}
`)
	require.Empty(t, errs)

	foreach := prog.Statements[1].(*ast.ForeachStmt)
	body := foreach.Body.(*ast.BlockStmt)
	vUse := body.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.Variable)

	types := analyzer.Run(prog, nil)
	assert.Equal(t, typesystem.Integer, types.Get(foreach.Key.(*ast.Variable).ID()))
	assert.Equal(t, typesystem.Integer, types.Get(vUse.ID()))
}
