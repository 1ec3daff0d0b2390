package parser

import (
	"bytes"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/bstr"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/token"
)

func init() {
	registerPrefix(token.InterpString, parseInterpolatedStringExpr)
	registerPrefix(token.Backtick, parseShellExecExpr)
	registerPrefix(token.HeredocLabel, parseHeredocExpr)
	registerPrefix(token.NowdocLabel, parseNowdocExpr)
	registerPrefix(token.Attribute, parseAttributedClosureExpr)
}

func parseInterpolatedStringExpr(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	body := bstr.Unquote(tok.Symbol)
	parts := s.splitInterpolation(body, tok.Span)
	return &ast.InterpolatedStringExpr{Base: s.synthBase(tok.Span), Parts: parts}
}

func parseShellExecExpr(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	body := bstr.Unquote(tok.Symbol)
	parts := s.splitInterpolation(body, tok.Span)
	return &ast.ShellExecExpr{Base: s.synthBase(tok.Span), Parts: parts}
}

func parseHeredocExpr(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	_, body := heredocBody(tok.Symbol)
	parts := s.splitInterpolation(body, tok.Span)
	return &ast.InterpolatedStringExpr{Base: s.synthBase(tok.Span), Parts: parts}
}

func parseNowdocExpr(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	_, body := heredocBody(tok.Symbol)
	part := &ast.StringLiteral{Base: ast.Base{Id: s.allocID(), Sp: tok.Span}, Value: body}
	return &ast.InterpolatedStringExpr{Base: s.synthBase(tok.Span), Parts: []ast.Expression{part}, Nowdoc: true}
}

// parseAttributedClosureExpr handles one or more `#[Attr]` groups preceding
// a closure-valued expression, e.g. a call argument like
// `array_map(#[Pure] function ($x) { ... }, $xs)`. The attribute data only
// feeds reflection, so only the decorated expression itself is kept.
func parseAttributedClosureExpr(s *State) ast.Expression {
	start := s.cur.Span
	for s.curIs(token.Attribute) {
		s.parseAttributeGroup()
	}
	inner := s.parseExpression(lowest)
	return &ast.AttributedClosureExpr{Base: s.synthBase(start), Inner: inner}
}

// splitInterpolation walks the raw bytes between a double-quoted string's,
// backtick string's, or heredoc's delimiters and produces the alternating
// literal/embedded-expression Parts an InterpolatedStringExpr/ShellExecExpr
// carries. It implements PHP's "simple syntax" ($var, $var->prop, $var[i])
// inline, and falls back to a nested parse for "complex syntax" ({$expr})
// holes.
func (s *State) splitInterpolation(body []byte, span token.Span) []ast.Expression {
	var parts []ast.Expression
	litStart := 0
	flush := func(end int) {
		if end > litStart {
			parts = append(parts, &ast.StringLiteral{
				Base:  ast.Base{Id: s.allocID(), Sp: span},
				Value: body[litStart:end],
			})
		}
	}

	i := 0
	for i < len(body) {
		switch {
		case body[i] == '\\' && i+1 < len(body):
			i += 2
		case body[i] == '$' && i+1 < len(body) && isIdentStartByte(body[i+1]):
			flush(i)
			expr, next := s.parseSimpleSyntaxHole(body, i, span)
			parts = append(parts, expr)
			i, litStart = next, next
		case body[i] == '{' && i+1 < len(body) && body[i+1] == '$':
			flush(i)
			inner, next := braceSlice(body, i)
			parts = append(parts, s.parseEmbeddedExpr(inner, span))
			i, litStart = next, next
		case body[i] == '$' && i+1 < len(body) && body[i+1] == '{':
			flush(i)
			inner, next := braceSlice(body, i+1)
			parts = append(parts, s.parseDollarBraceHole(inner, span))
			i, litStart = next, next
		default:
			i++
		}
	}
	flush(len(body))

	if len(parts) == 0 {
		return []ast.Expression{&ast.StringLiteral{Base: ast.Base{Id: s.allocID(), Sp: span}, Value: body}}
	}
	return parts
}

// parseSimpleSyntaxHole parses a `$name`, `$name->prop` or `$name[index]`
// interpolation hole starting at body[start] == '$', returning the built
// expression and the offset just past it.
func (s *State) parseSimpleSyntaxHole(body []byte, start int, span token.Span) (ast.Expression, int) {
	j := start + 1
	for j < len(body) && isIdentPartByte(body[j]) {
		j++
	}
	base := ast.Base{Id: s.allocID(), Sp: span}
	expr := ast.Expression(&ast.Variable{Base: base, Name: string(body[start+1 : j])})

	if j+1 < len(body) && body[j] == '-' && body[j+1] == '>' && j+2 < len(body) && isIdentStartByte(body[j+2]) {
		k := j + 2
		for k < len(body) && isIdentPartByte(body[k]) {
			k++
		}
		prop := ast.NewUnresolvedName(s.allocID(), span, string(body[j+2:k]), ast.HintNone)
		expr = &ast.PropertyAccessExpr{Base: ast.Base{Id: s.allocID(), Sp: span}, Target: expr, Property: prop}
		return expr, k
	}
	if j < len(body) && body[j] == '[' {
		k := j + 1
		for k < len(body) && body[k] != ']' {
			k++
		}
		idxText := string(body[j+1 : k])
		var idx ast.Expression
		if idxText != "" && (idxText[0] == '$') {
			idx = &ast.Variable{Base: ast.Base{Id: s.allocID(), Sp: span}, Name: idxText[1:]}
		} else {
			idx = &ast.StringLiteral{Base: ast.Base{Id: s.allocID(), Sp: span}, Value: idxText}
		}
		expr = &ast.IndexExpr{Base: ast.Base{Id: s.allocID(), Sp: span}, Target: expr, Index: idx}
		if k < len(body) {
			k++
		}
		return expr, k
	}
	return expr, j
}

// parseDollarBraceHole handles the legacy `${name}` / `${name[index]}` form;
// anything more exotic is parsed as a bare variable-name expression.
func (s *State) parseDollarBraceHole(inner []byte, span token.Span) ast.Expression {
	name := inner
	var idxText []byte
	hasIdx := false
	if i := bytes.IndexByte(inner, '['); i >= 0 && bytes.HasSuffix(inner, []byte("]")) {
		name = inner[:i]
		idxText = inner[i+1 : len(inner)-1]
		hasIdx = true
	}
	expr := ast.Expression(&ast.Variable{Base: ast.Base{Id: s.allocID(), Sp: span}, Name: string(name)})
	if hasIdx {
		idx := ast.Expression(&ast.StringLiteral{Base: ast.Base{Id: s.allocID(), Sp: span}, Value: idxText})
		expr = &ast.IndexExpr{Base: ast.Base{Id: s.allocID(), Sp: span}, Target: expr, Index: idx}
	}
	return expr
}

// parseEmbeddedExpr parses a `{$...}` hole's inner text as a full PHP
// expression, using a fresh lexer/parser positioned directly in PHP mode
// since the fragment carries no tags of its own.
func (s *State) parseEmbeddedExpr(src []byte, span token.Span) ast.Expression {
	sub := New(lexer.NewPHP(string(src)))
	expr := sub.parseExpression(lowest)
	s.Errors = append(s.Errors, sub.Errors...)
	return expr
}

// braceSlice returns the text strictly between a matching '{'/'}' pair
// starting at body[openAt] == '{', and the offset just past the closing
// brace (or len(body) if unterminated).
func braceSlice(body []byte, openAt int) ([]byte, int) {
	depth := 1
	j := openAt + 1
	for j < len(body) && depth > 0 {
		switch body[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return body[openAt+1 : j], j + 1
			}
		}
		j++
	}
	return body[openAt+1:], len(body)
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPartByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// heredocBody re-derives the opening label and literal body from a
// HeredocLabel/NowdocLabel token's raw text ("<<<LABEL\n...\nLABEL"),
// independent of the lexer's own cursor bookkeeping for the construct.
func heredocBody(raw []byte) (label string, body []byte) {
	s := raw
	if bytes.HasPrefix(s, []byte("<<<")) {
		s = s[3:]
	}
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		q := s[0]
		s = s[1:]
		if i := bytes.IndexByte(s, q); i >= 0 {
			label = string(s[:i])
			s = s[i+1:]
		}
	} else {
		i := 0
		for i < len(s) && isIdentPartByte(s[i]) {
			i++
		}
		label = string(s[:i])
		s = s[i:]
	}
	nl := bytes.IndexByte(s, '\n')
	if nl < 0 {
		return label, nil
	}
	s = s[nl+1:]
	if j := bytes.LastIndex(s, []byte(label)); j >= 0 {
		body = s[:j]
	} else {
		body = s
	}
	body = bytes.TrimSuffix(body, []byte("\r\n"))
	body = bytes.TrimSuffix(body, []byte("\n"))
	return label, body
}
