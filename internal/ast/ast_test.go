package ast_test

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

func TestEveryNodeHasAUniqueIDAndNonNegativeSpan(t *testing.T) {
	prog := mustParse(t, `<?php $x = 1 + 2; echo $x;`)
	seen := map[uint32]bool{}
	var walk func(n ast.Node)
	collector := &idCollector{visit: func(n ast.Node) {
		assert.False(t, seen[n.ID()], "duplicate id %d", n.ID())
		seen[n.ID()] = true
		assert.GreaterOrEqual(t, n.Span().End, n.Span().Start)
	}}
	walk = func(n ast.Node) { n.Accept(collector) }
	walk(prog)
	assert.NotEmpty(t, seen)
}

// idCollector is a minimal ast.Visitor that records each node Accept
// dispatches to, recursing by hand into the children of the few node kinds
// these tests build (ast.Visitor has no "visit children" default — each
// real visitor owns its own recursion).
type idCollector struct {
	ast.BaseVisitor
	visit func(n ast.Node)
}

func (c *idCollector) VisitProgram(n *ast.Program) {
	c.visit(n)
	for _, s := range n.Statements {
		s.Accept(c)
	}
}

func (c *idCollector) VisitExpressionStmt(n *ast.ExpressionStmt) {
	c.visit(n)
	n.Expr.Accept(c)
}

func (c *idCollector) VisitEchoStmt(n *ast.EchoStmt) {
	c.visit(n)
	for _, e := range n.Values {
		e.Accept(c)
	}
}

func (c *idCollector) VisitAssignExpr(n *ast.AssignExpr) {
	c.visit(n)
	n.Left.Accept(c)
	n.Right.Accept(c)
}

func (c *idCollector) VisitBinaryExpr(n *ast.BinaryExpr) {
	c.visit(n)
	n.Left.Accept(c)
	n.Right.Accept(c)
}

func (c *idCollector) VisitVariable(n *ast.Variable) { c.visit(n) }

func (c *idCollector) VisitIntegerLiteral(n *ast.IntegerLiteral) { c.visit(n) }

func TestMissingNodeSatisfiesBothStatementAndExpression(t *testing.T) {
	var stmt ast.Statement = &ast.Missing{}
	var expr ast.Expression = &ast.Missing{}
	assert.NotNil(t, stmt)
	assert.NotNil(t, expr)
}

func TestBaseVisitorIsANoOpDefaultForEveryNodeKind(t *testing.T) {
	prog := mustParse(t, `<?php class A {} function f() {} if (true) { echo 1; }`)
	var v ast.Visitor = &ast.BaseVisitor{}
	assert.NotPanics(t, func() { prog.Accept(v) })
}
