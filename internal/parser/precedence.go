package parser

import (
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/token"
)

// Assoc records operator associativity.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
	AssocNone
)

// bindingPower is one precedence-table entry: a left binding power and an
// associativity. It has no separate right-binding-power or fixity field.
// The precedence table is DATA, not a chain of parse-function calls, so
// adding an operator never means writing a new function.
type bindingPower struct {
	lbp   int
	assoc Assoc
}

// precedenceTable maps an infix/postfix operator token to its binding
// power. Higher binds tighter. Modeled on PHP's documented operator
// precedence table.
var precedenceTable = map[token.Kind]bindingPower{
	token.KwOr:  {1, AssocLeft},
	token.KwXor: {2, AssocLeft},
	token.KwAnd: {3, AssocLeft},

	token.Assign: {4, AssocRight}, token.PlusEq: {4, AssocRight},
	token.MinusEq: {4, AssocRight}, token.MulEq: {4, AssocRight},
	token.DivEq: {4, AssocRight}, token.ModEq: {4, AssocRight},
	token.PowEq: {4, AssocRight}, token.DotEq: {4, AssocRight},
	token.AndEq: {4, AssocRight}, token.OrEq: {4, AssocRight},
	token.XorEq: {4, AssocRight}, token.LShiftEq: {4, AssocRight},
	token.RShiftEq: {4, AssocRight}, token.CoalesceEq: {4, AssocRight},

	token.Question: {5, AssocLeft}, // ternary

	token.QuestionQuestion: {6, AssocRight},

	token.BoolOr: {7, AssocLeft},
	token.BoolAnd: {8, AssocLeft},

	token.Pipe:     {9, AssocLeft},
	token.Caret:    {10, AssocLeft},
	token.Ampersand: {11, AssocLeft},

	token.Eq: {12, AssocNone}, token.NotEq: {12, AssocNone},
	token.Identical: {12, AssocNone}, token.NotIdentical: {12, AssocNone},
	token.AngleNotEq: {12, AssocNone}, token.Spaceship: {12, AssocNone},

	token.Lt: {13, AssocNone}, token.Gt: {13, AssocNone},
	token.LtEq: {13, AssocNone}, token.GtEq: {13, AssocNone},

	token.LShift: {14, AssocLeft}, token.RShift: {14, AssocLeft},

	token.Plus: {15, AssocLeft}, token.Minus: {15, AssocLeft}, token.Dot: {15, AssocLeft},

	token.Asterisk: {16, AssocLeft}, token.Slash: {16, AssocLeft}, token.Percent: {16, AssocLeft},

	token.KwInstanceof: {18, AssocLeft},

	token.Pow: {19, AssocRight},

	// Postfix access chains bind tightest of all.
	token.Arrow: {20, AssocLeft}, token.NullsafeArrow: {20, AssocLeft},
	token.DoubleColon: {20, AssocLeft},
	token.LBracket: {20, AssocLeft}, token.LParen: {20, AssocLeft},
	token.Increment: {20, AssocLeft}, token.Decrement: {20, AssocLeft},
}

const lowest = 0

func (s *State) peekPrecedence() int {
	if bp, ok := precedenceTable[s.peek.Kind]; ok {
		return bp.lbp
	}
	return lowest
}

func (s *State) curPrecedence() int {
	if bp, ok := precedenceTable[s.cur.Kind]; ok {
		return bp.lbp
	}
	return lowest
}

func assocOf(k token.Kind) Assoc {
	if bp, ok := precedenceTable[k]; ok {
		return bp.assoc
	}
	return AssocLeft
}

func familyOf(k token.Kind) ast.OperatorFamily {
	switch k {
	case token.Plus, token.Minus, token.Asterisk, token.Slash, token.Percent, token.Pow:
		return ast.FamilyArithmetic
	case token.Ampersand, token.Pipe, token.Caret, token.LShift, token.RShift:
		return ast.FamilyBitwise
	case token.BoolAnd, token.BoolOr, token.KwAnd, token.KwOr, token.KwXor:
		return ast.FamilyLogical
	case token.Eq, token.NotEq, token.Identical, token.NotIdentical, token.AngleNotEq,
		token.Spaceship, token.Lt, token.Gt, token.LtEq, token.GtEq:
		return ast.FamilyComparison
	case token.Dot:
		return ast.FamilyConcat
	case token.QuestionQuestion:
		return ast.FamilyCoalesce
	default:
		return ast.FamilyArithmetic
	}
}
