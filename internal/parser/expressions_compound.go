package parser

import (
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/token"
)

func init() {
	registerPrefix(token.LBracket, parseArrayLiteral)
	registerPrefix(token.KwArray, parseArrayLiteral)
	registerPrefix(token.KwList, parseListExpr)
	registerPrefix(token.KwNew, parseNewExpr)
	registerPrefix(token.KwClone, parseCloneExpr)
	registerPrefix(token.KwThrow, parseThrowExpr)
	registerPrefix(token.KwYield, parseYieldExpr)
	registerPrefix(token.KwMatch, parseMatchExpr)
	registerPrefix(token.KwFunction, parseClosureExpr)
	registerPrefix(token.KwFn, parseArrowFunctionExpr)

	registerPrefix(token.KwIsset, parseControlExprParen(ast.CtlIsset))
	registerPrefix(token.KwUnset, parseControlExprParen(ast.CtlUnset))
	registerPrefix(token.KwEmpty, parseControlExprParen(ast.CtlEmpty))
	registerPrefix(token.KwEval, parseControlExprParen(ast.CtlEval))
	registerPrefix(token.KwPrint, parseControlExprBare(ast.CtlPrint))
	registerPrefix(token.KwDie, parseControlExprOptParen(ast.CtlDie))
	registerPrefix(token.KwExit, parseControlExprOptParen(ast.CtlExit))

	registerPrefix(token.KwInclude, parseIncludeExpr(ast.IncludeInclude))
	registerPrefix(token.KwIncludeOnce, parseIncludeExpr(ast.IncludeIncludeOnce))
	registerPrefix(token.KwRequire, parseIncludeExpr(ast.IncludeRequire))
	registerPrefix(token.KwRequireOnce, parseIncludeExpr(ast.IncludeRequireOnce))
}

// parseArrayItem parses one element of an array/list literal, including
// the `key => value`, by-ref, and spread forms.
func parseArrayItem(s *State) ast.ArrayItem {
	if s.curIs(token.Ellipsis) {
		s.nextToken()
		v := s.parseExpression(lowest)
		return ast.ArrayItem{Value: v, Spread: true}
	}
	byRef := false
	if s.curIs(token.Ampersand) {
		byRef = true
		s.nextToken()
	}
	first := s.parseExpression(lowest)
	if s.curIs(token.DoubleArrow) {
		s.nextToken()
		if s.curIs(token.Ampersand) {
			byRef = true
			s.nextToken()
		}
		val := s.parseExpression(lowest)
		return ast.ArrayItem{Key: first, Value: val, ByRef: byRef}
	}
	return ast.ArrayItem{Value: first, ByRef: byRef}
}

func parseArrayItems(s *State, closer token.Kind) []ast.ArrayItem {
	var items []ast.ArrayItem
	for !s.curIs(closer) && !s.atEOF() {
		items = append(items, parseArrayItem(s))
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(closer)
	return items
}

func parseArrayLiteral(s *State) ast.Expression {
	start := s.cur.Span
	short := s.curIs(token.LBracket)
	closer := token.RParen
	if short {
		closer = token.RBracket
		s.nextToken()
	} else {
		s.nextToken()
		s.expect(token.LParen)
	}
	items := parseArrayItems(s, closer)
	return &ast.ArrayExpr{Base: s.synthBase(start), Items: items, Short: short}
}

func parseListExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken()
	s.expect(token.LParen)
	items := parseArrayItems(s, token.RParen)
	return &ast.ArrayExpr{Base: s.synthBase(start), Items: items, IsList: true}
}

func parseNewExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken()
	var target ast.Expression
	switch s.cur.Kind {
	case token.KwClass:
		// Anonymous class: `new class(...) extends X implements Y { ... }`.
		s.nextToken()
		var args []ast.Argument
		if s.curIs(token.LParen) {
			args, _ = parseArgumentList(s)
		}
		anon := parseAnonClassBody(s, start)
		return &ast.NewExpr{Base: s.synthBase(start), Target: anon, Args: args}
	case token.Identifier, token.QualifiedName, token.FullyQualifiedName, token.KwSelf, token.KwParent, token.KwStatic:
		target = s.parseName(UseNormal)
	case token.Variable:
		target = s.parseExpression(unaryPrecedence)
	case token.LParen:
		target = parseParenthesizedExpr(s)
	default:
		s.errorf("UnexpectedToken", "expected a class name after new, found %s", s.cur.Kind)
		target = s.missingExpr()
	}
	var args []ast.Argument
	if s.curIs(token.LParen) {
		args, _ = parseArgumentList(s)
	}
	return &ast.NewExpr{Base: s.synthBase(start), Target: target, Args: args}
}

func parseCloneExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken()
	operand := s.parseExpression(unaryPrecedence)
	return &ast.CloneExpr{Base: s.synthBase(start), Operand: operand}
}

func parseThrowExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken()
	value := s.parseExpression(lowest)
	return &ast.ThrowExpr{Base: s.synthBase(start), Value: value}
}

func parseYieldExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken()
	if s.curIs(token.KwFrom) {
		s.nextToken()
		val := s.parseExpression(lowest)
		return &ast.YieldExpr{Base: s.synthBase(start), Value: val, From: true}
	}
	if s.curIs(token.Semicolon) || s.curIs(token.RParen) || s.curIs(token.RBracket) || s.curIs(token.Comma) {
		return &ast.YieldExpr{Base: s.synthBase(start)}
	}
	val := s.parseExpression(lowest)
	if s.curIs(token.DoubleArrow) {
		s.nextToken()
		v2 := s.parseExpression(lowest)
		return &ast.YieldExpr{Base: s.synthBase(start), Key: val, Value: v2}
	}
	return &ast.YieldExpr{Base: s.synthBase(start), Value: val}
}

func parseMatchExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken()
	s.expect(token.LParen)
	subject := s.parseExpression(lowest)
	s.expect(token.RParen)
	s.expect(token.LBrace)
	var arms []ast.MatchArm
	for !s.curIs(token.RBrace) && !s.atEOF() {
		var conds []ast.Expression
		if s.curIs(token.KwDefault) {
			s.nextToken()
		} else {
			conds = append(conds, s.parseExpression(lowest))
			for s.curIs(token.Comma) && !s.peekIs(token.DoubleArrow) {
				s.nextToken()
				conds = append(conds, s.parseExpression(lowest))
			}
			if s.curIs(token.Comma) {
				s.nextToken()
			}
		}
		s.expect(token.DoubleArrow)
		result := s.parseExpression(lowest)
		arms = append(arms, ast.MatchArm{Conditions: conds, Result: result})
		if s.curIs(token.Comma) {
			s.nextToken()
		}
	}
	s.expect(token.RBrace)
	return &ast.MatchExpr{Base: s.synthBase(start), Subject: subject, Arms: arms}
}

// parseControlExprParen handles forms that require parentheses:
// isset(...), unset(...), empty(...), eval(...).
func parseControlExprParen(kind ast.ControlKind) prefixParseFn {
	return func(s *State) ast.Expression {
		start := s.cur.Span
		s.nextToken()
		s.expect(token.LParen)
		var args []ast.Expression
		for !s.curIs(token.RParen) && !s.atEOF() {
			args = append(args, s.parseExpression(lowest))
			if s.curIs(token.Comma) {
				s.nextToken()
				continue
			}
			break
		}
		s.expect(token.RParen)
		return &ast.ControlExpr{Base: s.synthBase(start), Kind: kind, Args: args}
	}
}

// parseControlExprBare handles `print Expr` (no parens required).
func parseControlExprBare(kind ast.ControlKind) prefixParseFn {
	return func(s *State) ast.Expression {
		start := s.cur.Span
		s.nextToken()
		val := s.parseExpression(lowest)
		return &ast.ControlExpr{Base: s.synthBase(start), Kind: kind, Args: []ast.Expression{val}}
	}
}

// parseControlExprOptParen handles die/exit, where the argument (and its
// parens) are both optional.
func parseControlExprOptParen(kind ast.ControlKind) prefixParseFn {
	return func(s *State) ast.Expression {
		start := s.cur.Span
		s.nextToken()
		var args []ast.Expression
		if s.curIs(token.LParen) {
			s.nextToken()
			if !s.curIs(token.RParen) {
				args = append(args, s.parseExpression(lowest))
			}
			s.expect(token.RParen)
		}
		return &ast.ControlExpr{Base: s.synthBase(start), Kind: kind, Args: args}
	}
}

func parseIncludeExpr(kind ast.IncludeKind) prefixParseFn {
	return func(s *State) ast.Expression {
		start := s.cur.Span
		s.nextToken()
		path := s.parseExpression(lowest)
		return &ast.IncludeExpr{Base: s.synthBase(start), Kind: kind, Path: path}
	}
}

// parseClosureLike parses both `function` and `static function` closures
// (isStatic records whether the `static` prefix was already consumed by
// the caller).
func parseClosureLike(s *State, isStatic bool) ast.Expression {
	start := s.cur.Span
	if isStatic {
		s.nextToken() // consume 'static'
	}
	if s.curIs(token.KwFn) {
		return parseArrowFunctionBody(s, start, isStatic)
	}
	return parseClosureBody(s, start, isStatic)
}

func parseClosureExpr(s *State) ast.Expression { return parseClosureBody(s, s.cur.Span, false) }

func parseClosureBody(s *State, start token.Span, isStatic bool) ast.Expression {
	s.nextToken() // consume 'function'
	byRef := false
	if s.curIs(token.Ampersand) {
		byRef = true
		s.nextToken()
	}
	params := parseParamList(s)
	var uses []ast.ClosureUse
	if s.curIs(token.KwUse) {
		s.nextToken()
		s.expect(token.LParen)
		for !s.curIs(token.RParen) && !s.atEOF() {
			useByRef := false
			if s.curIs(token.Ampersand) {
				useByRef = true
				s.nextToken()
			}
			name := ""
			if s.curIs(token.Variable) {
				name = strings.TrimPrefix(s.cur.Lexeme(), "$")
				s.nextToken()
			}
			uses = append(uses, ast.ClosureUse{Name: name, ByRef: useByRef})
			if s.curIs(token.Comma) {
				s.nextToken()
				continue
			}
			break
		}
		s.expect(token.RParen)
	}
	var ret *ast.TypeHint
	if s.curIs(token.Colon) {
		s.nextToken()
		ret = parseTypeHint(s)
	}
	body := parseBlockStatements(s)
	return &ast.ClosureExpr{Base: s.synthBase(start), Static: isStatic, ByRef: byRef, Params: params, Uses: uses, ReturnType: ret, Body: body}
}

func parseArrowFunctionExpr(s *State) ast.Expression { return parseArrowFunctionBody(s, s.cur.Span, false) }

func parseArrowFunctionBody(s *State, start token.Span, isStatic bool) ast.Expression {
	s.nextToken() // consume 'fn'
	byRef := false
	if s.curIs(token.Ampersand) {
		byRef = true
		s.nextToken()
	}
	params := parseParamList(s)
	var ret *ast.TypeHint
	if s.curIs(token.Colon) {
		s.nextToken()
		ret = parseTypeHint(s)
	}
	s.expect(token.DoubleArrow)
	body := s.parseExpression(lowest)
	return &ast.ArrowFunctionExpr{Base: s.synthBase(start), Static: isStatic, ByRef: byRef, Params: params, ReturnType: ret, Body: body}
}
