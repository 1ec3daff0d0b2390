package parser

import (
	"strconv"
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/bstr"
	"github.com/gophp-lang/corephp/internal/token"
)

// unaryPrecedence sits above multiplicative/additive but below `**` and
// the postfix access chain, matching PHP's documented table.
const unaryPrecedence = 17

func init() {
	registerPrefix(token.LNumInt, parseIntegerLiteral)
	registerPrefix(token.LNumFloat, parseFloatLiteral)
	registerPrefix(token.StringLiteral, parseStringLiteral)
	registerPrefix(token.KwTrue, parseBoolLiteral)
	registerPrefix(token.KwFalse, parseBoolLiteral)
	registerPrefix(token.KwNull, parseNullLiteral)
	registerPrefix(token.Variable, parseVariable)
	registerPrefix(token.Dollar, parseVariableVariable)

	registerPrefix(token.Identifier, parseIdentifierExpr)
	registerPrefix(token.QualifiedName, parseIdentifierExpr)
	registerPrefix(token.FullyQualifiedName, parseIdentifierExpr)
	registerPrefix(token.KwSelf, parseIdentifierExpr)
	registerPrefix(token.KwParent, parseIdentifierExpr)
	registerPrefix(token.KwStatic, parseStaticPrefixExpr)

	registerPrefix(token.Bang, parseUnaryExpr)
	registerPrefix(token.Minus, parseUnaryExpr)
	registerPrefix(token.Plus, parseUnaryExpr)
	registerPrefix(token.Tilde, parseUnaryExpr)
	registerPrefix(token.At, parseUnaryExpr)
	registerPrefix(token.Increment, parseUnaryExpr)
	registerPrefix(token.Decrement, parseUnaryExpr)
	registerPrefix(token.Ampersand, parseUnaryExpr)

	registerPrefix(token.KwIntCast, parseCastExpr)
	registerPrefix(token.KwFloatCast, parseCastExpr)
	registerPrefix(token.KwStringCast, parseCastExpr)
	registerPrefix(token.KwArrayCast, parseCastExpr)
	registerPrefix(token.KwBoolCast, parseCastExpr)
	registerPrefix(token.KwObjectCast, parseCastExpr)
	registerPrefix(token.KwUnsetCast, parseCastExpr)

	registerPrefix(token.LParen, parseParenthesizedExpr)

	for _, k := range []token.Kind{
		token.Plus, token.Minus, token.Asterisk, token.Slash, token.Percent, token.Pow,
		token.Dot, token.Ampersand, token.Pipe, token.Caret, token.LShift, token.RShift,
		token.Eq, token.NotEq, token.Identical, token.NotIdentical, token.AngleNotEq,
		token.Spaceship, token.Lt, token.Gt, token.LtEq, token.GtEq,
		token.BoolAnd, token.BoolOr, token.KwAnd, token.KwOr, token.KwXor,
	} {
		registerInfix(k, parseBinaryExpr)
	}
	registerInfix(token.QuestionQuestion, parseBinaryExpr)

	for _, k := range []token.Kind{
		token.Assign, token.PlusEq, token.MinusEq, token.MulEq, token.DivEq, token.ModEq,
		token.PowEq, token.DotEq, token.AndEq, token.OrEq, token.XorEq, token.LShiftEq,
		token.RShiftEq, token.CoalesceEq,
	} {
		registerInfix(k, parseAssignExpr)
	}

	registerInfix(token.Question, parseTernaryExpr)
	registerInfix(token.KwInstanceof, parseInstanceofExpr)
	registerInfix(token.Increment, parsePostfixExpr)
	registerInfix(token.Decrement, parsePostfixExpr)
}

func parseIntegerLiteral(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	text := strings.ReplaceAll(tok.Lexeme(), "_", "")
	v, _ := strconv.ParseInt(text, 0, 64)
	return &ast.IntegerLiteral{Base: s.synthBase(tok.Span), Value: v}
}

func parseFloatLiteral(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	text := strings.ReplaceAll(tok.Lexeme(), "_", "")
	v, _ := strconv.ParseFloat(text, 64)
	return &ast.FloatLiteral{Base: s.synthBase(tok.Span), Value: v}
}

func parseStringLiteral(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	return &ast.StringLiteral{Base: s.synthBase(tok.Span), Value: bstr.Unquote(tok.Symbol)}
}

func parseBoolLiteral(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	return &ast.BoolLiteral{Base: s.synthBase(tok.Span), Value: tok.Kind == token.KwTrue}
}

func parseNullLiteral(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	return &ast.NullLiteral{Base: s.synthBase(tok.Span)}
}

func parseVariable(s *State) ast.Expression {
	tok := s.cur
	s.nextToken()
	return &ast.Variable{Base: s.synthBase(tok.Span), Name: strings.TrimPrefix(tok.Lexeme(), "$")}
}

// parseVariableVariable handles `$$name` and `${expr}`.
func parseVariableVariable(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken() // consume '$'
	if s.curIs(token.LBrace) {
		s.nextToken()
		inner := s.parseExpression(lowest)
		s.expect(token.RBrace)
		return &ast.VariableVariable{Base: s.synthBase(start), Name: inner}
	}
	inner := s.parseExpression(unaryPrecedence)
	return &ast.VariableVariable{Base: s.synthBase(start), Name: inner}
}

var magicConstants = map[string]ast.MagicConstantKind{
	"__LINE__": ast.MagicLine, "__FILE__": ast.MagicFile, "__DIR__": ast.MagicDir,
	"__FUNCTION__": ast.MagicFunction, "__CLASS__": ast.MagicClass,
	"__METHOD__": ast.MagicMethod, "__NAMESPACE__": ast.MagicNamespace, "__TRAIT__": ast.MagicTrait,
}

// parseIdentifierExpr resolves a bare/qualified/fully-qualified name or
// self/parent to a Name expression, recognizing magic constants first.
// parseIdentifierExpr parses a bare name used as an expression, choosing
// its resolution kind from the token that follows ("names
// (with resolution kind chosen by following token: `(` ⇒ Function, `::`
// ⇒ Normal, else Const)").
func parseIdentifierExpr(s *State) ast.Expression {
	tok := s.cur
	if tok.Kind == token.Identifier {
		if kind, ok := magicConstants[tok.Lexeme()]; ok {
			s.nextToken()
			return &ast.MagicConstant{Base: s.synthBase(tok.Span), Kind: kind}
		}
	}
	kind := UseConst
	switch {
	case s.peekIs(token.LParen):
		kind = UseFunc
	case s.peekIs(token.DoubleColon):
		kind = UseNormal
	}
	return s.parseName(kind)
}

// parseStaticPrefixExpr disambiguates `static` the scope name from
// `static function` / `static fn` closure literals.
func parseStaticPrefixExpr(s *State) ast.Expression {
	if s.peekIs(token.KwFunction) || s.peekIs(token.KwFn) {
		return parseClosureLike(s, true)
	}
	return s.parseName(UseConst)
}

func parseUnaryExpr(s *State) ast.Expression {
	tok := s.cur
	fixity := ast.Prefix
	s.nextToken()
	operand := s.parseExpression(unaryPrecedence)
	return &ast.UnaryExpr{Base: s.synthBase(tok.Span), Op: tok.Lexeme(), Fixity: fixity, Operand: operand}
}

func parsePostfixExpr(s *State, left ast.Expression) ast.Expression {
	tok := s.cur
	s.nextToken()
	return &ast.UnaryExpr{Base: s.synthBase(left.Span()), Op: tok.Lexeme(), Fixity: ast.Postfix, Operand: left}
}

var castKinds = map[token.Kind]ast.CastKind{
	token.KwIntCast: ast.CastInt, token.KwFloatCast: ast.CastFloat,
	token.KwStringCast: ast.CastString, token.KwArrayCast: ast.CastArray,
	token.KwBoolCast: ast.CastBool, token.KwObjectCast: ast.CastObject,
	token.KwUnsetCast: ast.CastUnset,
}

func parseCastExpr(s *State) ast.Expression {
	tok := s.cur
	kind := castKinds[tok.Kind]
	s.nextToken()
	operand := s.parseExpression(unaryPrecedence)
	return &ast.CastExpr{Base: s.synthBase(tok.Span), Kind: kind, Operand: operand}
}

func parseParenthesizedExpr(s *State) ast.Expression {
	start := s.cur.Span
	s.nextToken() // consume '('
	inner := s.parseExpression(lowest)
	s.expect(token.RParen)
	return &ast.ParenthesizedExpr{Base: s.synthBase(start), Inner: inner}
}

func parseBinaryExpr(s *State, left ast.Expression) ast.Expression {
	tok := s.cur
	prec := s.curPrecedence()
	family := familyOf(tok.Kind)
	s.nextToken()
	rprec := prec
	if assocOf(tok.Kind) == AssocRight {
		rprec = prec - 1
	}
	right := s.parseExpression(rprec)
	return &ast.BinaryExpr{Base: s.synthBase(left.Span()), Family: family, Op: tok.Lexeme(), Left: left, Right: right}
}

func parseAssignExpr(s *State, left ast.Expression) ast.Expression {
	tok := s.cur
	s.nextToken()
	if tok.Kind == token.Assign && s.curIs(token.Ampersand) {
		s.nextToken()
		right := s.parseExpression(lowest)
		return &ast.AssignExpr{Base: s.synthBase(left.Span()), Op: "=", Left: left, Right: &ast.ReferenceExpr{Base: s.synthBase(right.Span()), Right: right}}
	}
	right := s.parseExpression(lowest)
	return &ast.AssignExpr{Base: s.synthBase(left.Span()), Op: tok.Lexeme(), Left: left, Right: right}
}

func parseTernaryExpr(s *State, left ast.Expression) ast.Expression {
	s.nextToken() // consume '?'
	if s.curIs(token.Colon) {
		s.nextToken()
		elseExpr := s.parseExpression(lowest - 1)
		return &ast.ShortTernaryExpr{Base: s.synthBase(left.Span()), Condition: left, Else: elseExpr}
	}
	then := s.parseExpression(lowest)
	s.expect(token.Colon)
	elseExpr := s.parseExpression(lowest - 1)
	return &ast.TernaryExpr{Base: s.synthBase(left.Span()), Condition: left, Then: then, Else: elseExpr}
}

func parseInstanceofExpr(s *State, left ast.Expression) ast.Expression {
	s.nextToken() // consume 'instanceof'
	var right ast.Expression
	switch {
	case s.cur.Kind == token.Identifier || s.cur.Kind == token.QualifiedName || s.cur.Kind == token.FullyQualifiedName || token.ReservedAsIdentifier[s.cur.Kind]:
		right = s.parseName(UseNormal)
	default:
		right = s.parseExpression(precedenceTable[token.KwInstanceof].lbp)
	}
	return &ast.InstanceofExpr{Base: s.synthBase(left.Span()), Left: left, Right: right}
}
