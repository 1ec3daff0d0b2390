// Package parser turns a lexer.TokenStream into an ast.Program using a
// Pratt (top-down operator-precedence) parser. The cursor management
// (cur/peek, nextToken/expect) and diagnostics-over-panics
// recovery style follow a conventional recursive-descent parser state
// design; State carries that cursor plus the swap-drain buffers the
// grammar productions consult.
package parser

import (
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/token"
)

// State holds everything one parse needs: the token cursor, the
// swap-drain buffers for pending comments/attributes, the namespace/use
// tables consulted by maybe_resolve_identifier, and the accumulated
// diagnostics.
type State struct {
	stream lexer.TokenStream

	cur  token.Token
	peek token.Token

	nextID uint32
	depth  int

	// pendingAttributes is the swap-drain buffer:
	// a parsed `#[...]` group is appended here and taken-and-reset by the
	// next construct that admits attributes.
	pendingAttributes [][]Attribute

	// namespace/use resolution tables, consulted by maybeResolveIdentifier.
	currentNamespace string
	classUses        map[string]string // alias -> fully-qualified
	functionUses     map[string]string
	constUses        map[string]string

	Errors []*diagnostics.Diagnostic
}

// Attribute is one `Name(args...)` entry inside a `#[...]` group.
type Attribute struct {
	Name *ast.Name
	Args []ast.Argument
}

// New builds a State positioned at the first real token of stream.
func New(stream lexer.TokenStream) *State {
	s := &State{
		stream:       stream,
		classUses:    map[string]string{},
		functionUses: map[string]string{},
		constUses:    map[string]string{},
	}
	s.cur = s.stream.Current()
	s.peek = s.stream.Peek()
	return s
}

func (s *State) allocID() uint32 {
	s.nextID++
	return s.nextID
}

func (s *State) nextToken() {
	s.cur = s.peek
	s.stream.Next()
	s.peek = s.stream.Peek()
}

func (s *State) curIs(k token.Kind) bool  { return s.cur.Kind == k }
func (s *State) peekIs(k token.Kind) bool { return s.peek.Kind == k }

// expect advances past cur if it matches k, else records a diagnostic. It
// still consumes the unexpected token (unless it is EOF) so that every
// production makes forward progress and the parse never hangs on
// malformed input.
func (s *State) expect(k token.Kind) bool {
	if s.curIs(k) {
		s.nextToken()
		return true
	}
	s.errorf(diagnostics.ExpectedToken, "expected %s, found %s", k, s.cur.Kind)
	if !s.atEOF() {
		s.nextToken()
	}
	return false
}

func (s *State) errorf(code diagnostics.Code, format string, args ...any) {
	s.Errors = append(s.Errors, diagnostics.New(code, s.cur, format, args...))
}

// drainAttributes takes and resets the pending attribute buffer — the
// swap-drain idiom used throughout the state.
func (s *State) drainAttributes() [][]Attribute {
	attrs := s.pendingAttributes
	s.pendingAttributes = nil
	return attrs
}

// drainComments adapts the lexer's comment buffer into an ast.CommentGroup.
func (s *State) drainComments() ast.CommentGroup {
	raw := s.stream.DrainComments()
	if len(raw) == 0 {
		return ast.CommentGroup{}
	}
	out := make([]ast.Comment, len(raw))
	for i, c := range raw {
		out[i] = ast.Comment{Span: c.Span, Text: string(c.Text), Doc: c.Kind == token.CommentDoc}
	}
	return ast.CommentGroup{Comments: out}
}

// synthBase builds a Base for a node starting at start and ending at the
// current (already-consumed) cursor position, draining pending comments.
func (s *State) synthBase(start token.Span) ast.Base {
	return ast.Base{Id: s.allocID(), Sp: token.Combine(start, s.cur.Span), Comments: s.drainComments()}
}

func (s *State) atEOF() bool { return s.cur.Kind == token.EOF }

// skipToStatementBoundary recovers from a production that bailed out by
// advancing until a semicolon, a brace, or EOF.
func (s *State) skipToStatementBoundary() {
	for !s.curIs(token.Semicolon) && !s.curIs(token.RBrace) && !s.curIs(token.EOF) {
		s.nextToken()
	}
	if s.curIs(token.Semicolon) {
		s.nextToken()
	}
}

// missingExpr synthesizes a Missing node at the current position, used by
// every production that could not recover a real expression.
func (s *State) missingExpr() ast.Expression {
	return &ast.Missing{Base: ast.Base{Id: s.allocID(), Sp: token.Zero(s.cur.Span.Start)}}
}

func (s *State) missingStmt() ast.Statement {
	return &ast.Missing{Base: ast.Base{Id: s.allocID(), Sp: token.Zero(s.cur.Span.Start)}}
}
