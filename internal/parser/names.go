package parser

import (
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/token"
)

// UseKind mirrors the three import tables a name can be looked up against.
type UseKind int

const (
	UseNormal UseKind = iota
	UseFunc
	UseConst
)

func (s *State) importTable(kind UseKind) map[string]string {
	switch kind {
	case UseFunc:
		return s.functionUses
	case UseConst:
		return s.constUses
	default:
		return s.classUses
	}
}

// maybeResolveIdentifier implements 's name resolution
// algorithm against the active namespace and import tables.
func (s *State) maybeResolveIdentifier(tok token.Token, kind UseKind) *ast.Name {
	symbol := tok.Lexeme()
	qualified := tok.Kind == token.QualifiedName
	key := symbol
	rest := ""
	if qualified {
		if i := strings.IndexByte(symbol, '\\'); i >= 0 {
			key = symbol[:i]
			rest = symbol[i:]
		}
	}

	imports := s.importTable(kind)
	if target, ok := imports[key]; ok {
		resolved := target
		if qualified {
			resolved = target + rest
		}
		return ast.NewResolvedName(s.allocID(), tok.Span, resolved, symbol)
	}

	if kind == UseNormal || qualified {
		ns := s.currentNamespace
		resolved := symbol
		if ns != "" {
			resolved = ns + "\\" + symbol
		}
		return ast.NewResolvedName(s.allocID(), tok.Span, resolved, symbol)
	}

	if (kind == UseFunc || kind == UseConst) && s.currentNamespace == "" {
		return ast.NewResolvedName(s.allocID(), tok.Span, symbol, symbol)
	}

	hint := ast.HintClass
	if kind == UseFunc {
		hint = ast.HintFunction
	} else if kind == UseConst {
		hint = ast.HintConst
	}
	return ast.NewUnresolvedName(s.allocID(), tok.Span, symbol, hint)
}

// parseName consumes an identifier/qualified/fully-qualified-name token
// and resolves it. Reserved scope words (self/parent/static) are returned
// as NameSpecial instead.
func (s *State) parseName(kind UseKind) *ast.Name {
	tok := s.cur
	switch tok.Kind {
	case token.KwSelf:
		s.nextToken()
		return ast.NewSpecialName(s.allocID(), tok.Span, ast.SpecialSelf)
	case token.KwParent:
		s.nextToken()
		return ast.NewSpecialName(s.allocID(), tok.Span, ast.SpecialParent)
	case token.KwStatic:
		s.nextToken()
		return ast.NewSpecialName(s.allocID(), tok.Span, ast.SpecialStatic)
	case token.Identifier, token.QualifiedName:
		s.nextToken()
		return s.maybeResolveIdentifier(tok, kind)
	case token.FullyQualifiedName:
		s.nextToken()
		symbol := tok.Lexeme()
		return ast.NewResolvedName(s.allocID(), tok.Span, strings.TrimPrefix(symbol, "\\"), symbol)
	default:
		if token.IsKeywordIdentifier(tok.Kind) || token.ReservedAsIdentifier[tok.Kind] {
			s.nextToken()
			return s.maybeResolveIdentifier(token.Token{Kind: token.Identifier, Span: tok.Span, Symbol: tok.Symbol}, kind)
		}
		s.errorf("UnexpectedToken", "expected a name, found %s", tok.Kind)
		return ast.NewUnresolvedName(s.allocID(), tok.Span, tok.Lexeme(), ast.HintClass)
	}
}
