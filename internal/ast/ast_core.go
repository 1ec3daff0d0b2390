// Package ast defines the typed tree of statements and expressions the
// parser produces. Every node carries a stable id and a span, and
// dispatches through the Accept(v Visitor) convention rather than
// exposing a tag for callers to switch on.
package ast

import "github.com/gophp-lang/corephp/internal/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	ID() uint32
	Span() token.Span
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Comment is one trivia token attached to a node.
type Comment struct {
	Span token.Span
	Text string
	Doc  bool
}

// CommentGroup is the drained comment buffer attached to a statement or
// expression at the point it is constructed.
type CommentGroup struct {
	Comments []Comment
}

// Base is embedded by every concrete node to supply ID/Span/Comments.
type Base struct {
	Id       uint32
	Sp       token.Span
	Comments CommentGroup
}

func (b *Base) ID() uint32        { return b.Id }
func (b *Base) Span() token.Span  { return b.Sp }

// Program is the root node of every parse.
type Program struct {
	Base
	File       string
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Missing is the fail-soft placeholder synthesized whenever a production
// cannot recover a real node.
type Missing struct {
	Base
}

func (m *Missing) Accept(v Visitor)  { v.VisitMissing(m) }
func (m *Missing) statementNode()    {}
func (m *Missing) expressionNode()   {}

var (
	_ Statement  = (*Missing)(nil)
	_ Expression = (*Missing)(nil)
)
