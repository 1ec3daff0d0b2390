package parser

import (
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/config"
	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/pipeline"
	"github.com/gophp-lang/corephp/internal/token"
)

type prefixParseFn func(s *State) ast.Expression
type infixParseFn func(s *State, left ast.Expression) ast.Expression

var prefixParseFns = map[token.Kind]prefixParseFn{}
var infixParseFns = map[token.Kind]infixParseFn{}

func registerPrefix(k token.Kind, fn prefixParseFn) { prefixParseFns[k] = fn }
func registerInfix(k token.Kind, fn infixParseFn)   { infixParseFns[k] = fn }

// parseExpression is the Pratt loop: a prefix production builds the left
// operand, then infix productions fold in while the next operator binds
// tighter than precedence, using token.Kind-keyed
// dispatch maps and the ast package's two-level family design.
func (s *State) parseExpression(precedence int) ast.Expression {
	s.depth++
	defer func() { s.depth-- }()

	if s.depth > config.MaxRecursionDepth {
		s.errorf("UnexpectedToken", "expression too complex: recursion depth limit exceeded")
		s.skipToStatementBoundary()
		return s.missingExpr()
	}

	prefix := prefixParseFns[s.cur.Kind]
	if prefix == nil {
		s.errorf("UnexpectedToken", "unexpected token %s in expression", s.cur.Kind)
		s.nextToken()
		return s.missingExpr()
	}
	left := prefix(s)

	for !s.curIs(token.Semicolon) && precedence < s.curPrecedence() {
		infix := infixParseFns[s.cur.Kind]
		if infix == nil {
			return left
		}
		left = infix(s, left)
	}
	return left
}

// ParseProgram parses an entire token stream into an ast.Program.
func ParseProgram(stream lexer.TokenStream, file string) (*ast.Program, []*diagnostics.Diagnostic) {
	s := New(stream)
	start := s.cur.Span
	var stmts []ast.Statement
	for !s.atEOF() {
		stmts = append(stmts, s.parseStatement())
	}
	prog := &ast.Program{
		Base:       ast.Base{Id: s.allocID(), Sp: token.Combine(start, s.cur.Span)},
		File:       file,
		Statements: stmts,
	}
	return prog, s.Errors
}

// Processor implements pipeline.Processor: it consumes ctx.TokenStream and
// populates ctx.AstRoot.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	stream, ok := ctx.TokenStream.(lexer.TokenStream)
	if !ok {
		return ctx
	}
	s := New(stream)
	start := s.cur.Span
	var stmts []ast.Statement
	for !s.atEOF() {
		stmts = append(stmts, s.parseStatement())
	}
	ctx.AstRoot = &ast.Program{
		Base:       ast.Base{Id: s.allocID(), Sp: token.Combine(start, s.cur.Span)},
		File:       ctx.FilePath,
		Statements: stmts,
	}
	ctx.Errors = append(ctx.Errors, s.Errors...)
	return ctx
}

var _ pipeline.Processor = Processor{}
