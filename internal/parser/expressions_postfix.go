package parser

import (
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/token"
)

func init() {
	registerInfix(token.LBracket, parseIndexExpr)
	registerInfix(token.Arrow, parsePropertyAccessExpr)
	registerInfix(token.NullsafeArrow, parsePropertyAccessExpr)
	registerInfix(token.DoubleColon, parseStaticAccessExpr)
	registerInfix(token.LParen, parseCallExpr)
}

func parseIndexExpr(s *State, left ast.Expression) ast.Expression {
	s.nextToken() // consume '['
	if s.curIs(token.RBracket) {
		s.nextToken()
		return &ast.IndexExpr{Base: s.synthBase(left.Span()), Target: left}
	}
	idx := s.parseExpression(lowest)
	s.expect(token.RBracket)
	return &ast.IndexExpr{Base: s.synthBase(left.Span()), Target: left, Index: idx}
}

// parsePropertyAccessExpr handles both `->` and `?->`; Property is either
// a plain name, a dynamic `$var`, or a braced expression.
func parsePropertyAccessExpr(s *State, left ast.Expression) ast.Expression {
	nullSafe := s.curIs(token.NullsafeArrow)
	s.nextToken()
	prop := parseMemberName(s)
	return &ast.PropertyAccessExpr{Base: s.synthBase(left.Span()), Target: left, Property: prop, NullSafe: nullSafe}
}

// parseMemberName parses the thing that can follow `->`/`::` — an
// identifier-shaped name, a `$variable`, `$$var`, or a `{expr}` brace
// form.
func parseMemberName(s *State) ast.Expression {
	switch s.cur.Kind {
	case token.Variable:
		return parseVariable(s)
	case token.Dollar:
		return parseVariableVariable(s)
	case token.LBrace:
		s.nextToken()
		inner := s.parseExpression(lowest)
		s.expect(token.RBrace)
		return inner
	default:
		tok := s.cur
		if tok.Kind == token.Identifier || token.IsKeywordIdentifier(tok.Kind) || token.ReservedAsIdentifier[tok.Kind] {
			s.nextToken()
			return ast.NewUnresolvedName(s.allocID(), tok.Span, tok.Lexeme(), ast.HintNone)
		}
		s.errorf("UnexpectedToken", "expected a member name, found %s", tok.Kind)
		return s.missingExpr()
	}
}

func parseStaticAccessExpr(s *State, left ast.Expression) ast.Expression {
	s.nextToken() // consume '::'
	switch s.cur.Kind {
	case token.Variable:
		member := parseVariable(s)
		return &ast.StaticAccessExpr{Base: s.synthBase(left.Span()), Target: left, Kind: ast.StaticProperty, Member: member}
	case token.Dollar:
		member := parseVariableVariable(s)
		return &ast.StaticAccessExpr{Base: s.synthBase(left.Span()), Target: left, Kind: ast.StaticProperty, Member: member}
	case token.LBrace:
		s.nextToken()
		inner := s.parseExpression(lowest)
		s.expect(token.RBrace)
		return &ast.StaticAccessExpr{Base: s.synthBase(left.Span()), Target: left, Kind: ast.StaticBraced, Member: inner}
	case token.KwClass:
		s.nextToken()
		return &ast.StaticAccessExpr{Base: s.synthBase(left.Span()), Target: left, Kind: ast.StaticClassFetch}
	default:
		tok := s.cur
		if tok.Kind == token.Identifier || token.IsKeywordIdentifier(tok.Kind) || token.ReservedAsIdentifier[tok.Kind] {
			s.nextToken()
			member := ast.Expression(ast.NewUnresolvedName(s.allocID(), tok.Span, tok.Lexeme(), ast.HintNone))
			return &ast.StaticAccessExpr{Base: s.synthBase(left.Span()), Target: left, Kind: ast.StaticConstOrMethod, Member: member}
		}
		s.errorf("UnexpectedToken", "expected a static member, found %s", tok.Kind)
		return &ast.StaticAccessExpr{Base: s.synthBase(left.Span()), Target: left, Kind: ast.StaticConstOrMethod, Member: s.missingExpr()}
	}
}

// parseArgumentList parses `(args...)`, recognizing the `(...)`
// first-class-callable shorthand.
func parseArgumentList(s *State) (args []ast.Argument, closureCreation bool) {
	s.expect(token.LParen)
	if s.curIs(token.Ellipsis) && s.peekIs(token.RParen) {
		s.nextToken()
		s.nextToken()
		return nil, true
	}
	for !s.curIs(token.RParen) && !s.atEOF() {
		start := s.cur.Span
		spread := false
		if s.curIs(token.Ellipsis) {
			spread = true
			s.nextToken()
		}
		name := ""
		if !spread && (s.curIs(token.Identifier)) && s.peekIs(token.Colon) {
			name = s.cur.Lexeme()
			s.nextToken()
			s.nextToken()
		}
		val := s.parseExpression(lowest)
		args = append(args, ast.Argument{Base: s.synthBase(start), Name: name, Value: val, Spread: spread})
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.RParen)
	return args, false
}

func parseCallExpr(s *State, left ast.Expression) ast.Expression {
	args, closureCreation := parseArgumentList(s)
	if closureCreation {
		return &ast.FunctionClosureCreationExpr{Base: s.synthBase(left.Span()), Target: left}
	}
	return &ast.CallExpr{Base: s.synthBase(left.Span()), Target: left, Args: args}
}
