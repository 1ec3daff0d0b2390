package parser

import (
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/token"
)

// parseTypeHint parses a (possibly nullable, union, or intersection) type
// annotation, following the source language's param/return type grammar.
func parseTypeHint(s *State) *ast.TypeHint {
	start := s.cur.Span
	nullable := false
	if s.curIs(token.Question) {
		nullable = true
		s.nextToken()
	}
	first := parseTypeHintAtom(s)
	if s.curIs(token.Pipe) {
		union := []*ast.TypeHint{first}
		for s.curIs(token.Pipe) {
			s.nextToken()
			union = append(union, parseTypeHintAtom(s))
		}
		return &ast.TypeHint{Base: s.synthBase(start), Nullable: nullable, Union: union}
	}
	if s.curIs(token.Ampersand) && !isCompoundStart(s.peek.Kind) {
		inter := []*ast.TypeHint{first}
		for s.curIs(token.Ampersand) {
			s.nextToken()
			inter = append(inter, parseTypeHintAtom(s))
		}
		return &ast.TypeHint{Base: s.synthBase(start), Nullable: nullable, Intersection: inter}
	}
	first.Nullable = nullable
	return first
}

// isCompoundStart reports whether k can begin a variable/param (used to
// disambiguate intersection-type `&` from a by-ref parameter marker).
func isCompoundStart(k token.Kind) bool {
	return k == token.Variable || k == token.Ellipsis
}

func parseTypeHintAtom(s *State) *ast.TypeHint {
	start := s.cur.Span
	name := s.parseName(UseNormal)
	return &ast.TypeHint{Base: s.synthBase(start), Name: name}
}

func typeHintStartsAt(k token.Kind) bool {
	switch k {
	case token.Question, token.Identifier, token.QualifiedName, token.FullyQualifiedName,
		token.KwArray, token.KwCallable, token.KwStatic, token.KwSelf, token.KwParent:
		return true
	}
	return false
}

// parseParamList parses `(Param, Param, ...)` for a function/method/
// closure/arrow-function declaration, including constructor-promotion
// visibility modifiers and readonly.
func parseParamList(s *State) []ast.Param {
	s.expect(token.LParen)
	var params []ast.Param
	for !s.curIs(token.RParen) && !s.atEOF() {
		start := s.cur.Span
		s.drainAttributes()
		vis := ""
		readonly := false
		for {
			switch s.cur.Kind {
			case token.KwPublic:
				vis = "public"
				s.nextToken()
				continue
			case token.KwProtected:
				vis = "protected"
				s.nextToken()
				continue
			case token.KwPrivate:
				vis = "private"
				s.nextToken()
				continue
			case token.KwReadonly:
				readonly = true
				s.nextToken()
				continue
			}
			break
		}
		var typ *ast.TypeHint
		if typeHintStartsAt(s.cur.Kind) {
			typ = parseTypeHint(s)
		}
		byRef := false
		if s.curIs(token.Ampersand) {
			byRef = true
			s.nextToken()
		}
		variadic := false
		if s.curIs(token.Ellipsis) {
			variadic = true
			s.nextToken()
		}
		name := ""
		if s.curIs(token.Variable) {
			name = strings.TrimPrefix(s.cur.Lexeme(), "$")
			s.nextToken()
		} else {
			s.errorf("ExpectedToken", "expected a parameter name, found %s", s.cur.Kind)
		}
		var def ast.Expression
		if s.curIs(token.Assign) {
			s.nextToken()
			def = s.parseExpression(lowest)
		}
		params = append(params, ast.Param{
			Base: s.synthBase(start), Name: name, Type: typ, Default: def,
			ByRef: byRef, Variadic: variadic, PromotedVis: vis, Readonly: readonly,
		})
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.RParen)
	return params
}

func parseBlockStatements(s *State) []ast.Statement {
	s.expect(token.LBrace)
	var stmts []ast.Statement
	for !s.curIs(token.RBrace) && !s.atEOF() {
		stmts = append(stmts, s.parseStatement())
	}
	s.expect(token.RBrace)
	return stmts
}

func parseAnonClassBody(s *State, start token.Span) *ast.ClassDeclStmt {
	var extends []*ast.Name
	var implements []*ast.Name
	if s.curIs(token.KwExtends) {
		s.nextToken()
		extends = append(extends, s.parseName(UseNormal))
	}
	if s.curIs(token.KwImplements) {
		s.nextToken()
		implements = append(implements, s.parseName(UseNormal))
		for s.curIs(token.Comma) {
			s.nextToken()
			implements = append(implements, s.parseName(UseNormal))
		}
	}
	members := parseClassMembers(s)
	return &ast.ClassDeclStmt{Base: s.synthBase(start), Kind: ast.ClassOrdinary, Extends: extends, Implements: implements, Members: members}
}

// parseFunctionDeclStmt parses `function name(...): RetType { ... }`.
func parseFunctionDeclStmt(s *State) ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'function'
	byRef := false
	if s.curIs(token.Ampersand) {
		byRef = true
		s.nextToken()
	}
	name := s.cur.Lexeme()
	s.expect(token.Identifier)
	params := parseParamList(s)
	var ret *ast.TypeHint
	if s.curIs(token.Colon) {
		s.nextToken()
		ret = parseTypeHint(s)
	}
	body := parseBlockStatements(s)
	return &ast.FunctionDeclStmt{Base: s.synthBase(start), Name: name, ByRef: byRef, Params: params, ReturnType: ret, Body: body}
}

var classKindKeywords = map[token.Kind]bool{
	token.KwClass: true, token.KwInterface: true, token.KwTrait: true, token.KwEnum: true,
}

// parseClassDeclStmt parses class/abstract class/final class/interface/
// trait/enum declarations, which share most of their member grammar.
func parseClassDeclStmt(s *State) ast.Statement {
	start := s.cur.Span
	kind := ast.ClassOrdinary
	for {
		switch s.cur.Kind {
		case token.KwAbstract:
			kind = ast.ClassAbstract
			s.nextToken()
			continue
		case token.KwFinal:
			kind = ast.ClassFinal
			s.nextToken()
			continue
		}
		break
	}
	switch s.cur.Kind {
	case token.KwInterface:
		kind = ast.ClassInterface
	case token.KwTrait:
		kind = ast.ClassTrait
	case token.KwEnum:
		kind = ast.ClassEnum
	}
	s.nextToken() // consume class/interface/trait/enum
	name := s.cur.Lexeme()
	s.expect(token.Identifier)

	var backing *ast.TypeHint
	if kind == ast.ClassEnum && s.curIs(token.Colon) {
		s.nextToken()
		backing = parseTypeHint(s)
	}

	var extends []*ast.Name
	var implements []*ast.Name
	if s.curIs(token.KwExtends) {
		s.nextToken()
		extends = append(extends, s.parseName(UseNormal))
		for s.curIs(token.Comma) {
			s.nextToken()
			extends = append(extends, s.parseName(UseNormal))
		}
	}
	if s.curIs(token.KwImplements) {
		s.nextToken()
		implements = append(implements, s.parseName(UseNormal))
		for s.curIs(token.Comma) {
			s.nextToken()
			implements = append(implements, s.parseName(UseNormal))
		}
	}

	members := parseClassMembers(s)
	return &ast.ClassDeclStmt{
		Base: s.synthBase(start), Kind: kind, Name: name,
		Extends: extends, Implements: implements, BackingType: backing, Members: members,
	}
}

// parseClassMembers parses the `{ ... }` body shared by class/interface/
// trait/enum declarations. An interface body is parsed exactly like a
// class body: a property or a method with a body inside an interface is
// accepted here, and neither the parser nor the analyzer reports it.
func parseClassMembers(s *State) []ast.Node {
	s.expect(token.LBrace)
	var members []ast.Node
	for !s.curIs(token.RBrace) && !s.atEOF() {
		s.drainAttributes()
		if s.curIs(token.KwUse) {
			members = append(members, parseUseTraitDecl(s))
			continue
		}
		if s.curIs(token.KwCase) {
			members = append(members, parseEnumCaseDecl(s))
			continue
		}
		members = append(members, parseClassMember(s))
	}
	s.expect(token.RBrace)
	return members
}

func parseUseTraitDecl(s *State) ast.Node {
	start := s.cur.Span
	s.nextToken() // consume 'use'
	traits := []*ast.Name{s.parseName(UseNormal)}
	for s.curIs(token.Comma) {
		s.nextToken()
		traits = append(traits, s.parseName(UseNormal))
	}
	var adaptations []ast.Node
	if s.curIs(token.LBrace) {
		s.nextToken()
		for !s.curIs(token.RBrace) && !s.atEOF() {
			s.nextToken() // adaptation clauses are consumed but not modeled in detail
		}
		s.expect(token.RBrace)
	} else {
		s.expect(token.Semicolon)
	}
	return &ast.UseTraitDecl{Base: s.synthBase(start), Traits: traits, Adaptations: adaptations}
}

func parseEnumCaseDecl(s *State) ast.Node {
	start := s.cur.Span
	s.nextToken() // consume 'case'
	name := s.cur.Lexeme()
	s.expect(token.Identifier)
	var val ast.Expression
	if s.curIs(token.Assign) {
		s.nextToken()
		val = s.parseExpression(lowest)
	}
	s.expect(token.Semicolon)
	return &ast.EnumCaseDecl{Base: s.synthBase(start), Name: name, Value: val}
}

// parseClassMember dispatches on modifiers to a method, property, or
// class-constant declaration.
func parseClassMember(s *State) ast.Node {
	start := s.cur.Span
	vis := ""
	static := false
	abstract := false
	final := false
	readonly := false
	for {
		switch s.cur.Kind {
		case token.KwPublic:
			vis = "public"
			s.nextToken()
			continue
		case token.KwProtected:
			vis = "protected"
			s.nextToken()
			continue
		case token.KwPrivate:
			vis = "private"
			s.nextToken()
			continue
		case token.KwStatic:
			static = true
			s.nextToken()
			continue
		case token.KwAbstract:
			abstract = true
			s.nextToken()
			continue
		case token.KwFinal:
			final = true
			s.nextToken()
			continue
		case token.KwReadonly:
			readonly = true
			s.nextToken()
			continue
		case token.KwVar:
			vis = "public"
			s.nextToken()
			continue
		}
		break
	}

	if s.curIs(token.KwConst) {
		s.nextToken()
		var items []ast.ConstItem
		for {
			name := s.cur.Lexeme()
			s.expect(token.Identifier)
			s.expect(token.Assign)
			val := s.parseExpression(lowest)
			items = append(items, ast.ConstItem{Name: name, Value: val})
			if s.curIs(token.Comma) {
				s.nextToken()
				continue
			}
			break
		}
		s.expect(token.Semicolon)
		return &ast.ClassConstDecl{Base: s.synthBase(start), Visibility: vis, Items: items}
	}

	if s.curIs(token.KwFunction) {
		s.nextToken()
		byRef := false
		if s.curIs(token.Ampersand) {
			byRef = true
			s.nextToken()
		}
		name := s.cur.Lexeme()
		s.nextToken() // method names may be keyword-identifiers (e.g. `list`)
		params := parseParamList(s)
		var ret *ast.TypeHint
		if s.curIs(token.Colon) {
			s.nextToken()
			ret = parseTypeHint(s)
		}
		var body []ast.Statement
		if s.curIs(token.LBrace) {
			body = parseBlockStatements(s)
		} else {
			s.expect(token.Semicolon)
		}
		return &ast.MethodDecl{
			Base: s.synthBase(start), Name: name, Visibility: vis, Static: static,
			Abstract: abstract, Final: final, ByRef: byRef, Params: params, ReturnType: ret, Body: body,
		}
	}

	// Property declaration: [type] $name = default, ...;
	var typ *ast.TypeHint
	if typeHintStartsAt(s.cur.Kind) {
		typ = parseTypeHint(s)
	}
	var items []ast.ConstItem
	for s.curIs(token.Variable) {
		name := strings.TrimPrefix(s.cur.Lexeme(), "$")
		s.nextToken()
		var def ast.Expression
		if s.curIs(token.Assign) {
			s.nextToken()
			def = s.parseExpression(lowest)
		}
		items = append(items, ast.ConstItem{Name: name, Value: def})
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.Semicolon)
	return &ast.PropertyDecl{Base: s.synthBase(start), Visibility: vis, Static: static, Readonly: readonly, Type: typ, Items: items}
}

// parseNamespaceStmt parses both the semicolon and braced forms.
func parseNamespaceStmt(s *State) ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'namespace'
	var name *ast.Name
	if s.curIs(token.Identifier) || s.curIs(token.QualifiedName) {
		name = s.parseName(UseNormal)
		s.currentNamespace = name.String()
	}
	if s.curIs(token.LBrace) {
		body := parseBlockStatements(s)
		return &ast.NamespaceStmt{Base: s.synthBase(start), Name: name, Body: body, Braced: true}
	}
	s.expect(token.Semicolon)
	return &ast.NamespaceStmt{Base: s.synthBase(start), Name: name}
}

// parseUseStmt parses `use Foo\Bar as Baz, ...;`, populating the import
// tables consulted by maybeResolveIdentifier.
func parseUseStmt(s *State) ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'use'
	kind := UseNormal
	astKind := ast.UseClass
	if s.curIs(token.KwFunction) {
		kind, astKind = UseFunc, ast.UseFunction
		s.nextToken()
	} else if s.curIs(token.KwConst) {
		kind, astKind = UseConst, ast.UseConst
		s.nextToken()
	}
	var items []ast.UseItem
	for {
		nameTok := s.cur
		name := s.parseName(kind)
		alias := ""
		if s.curIs(token.KwAs) {
			s.nextToken()
			alias = s.cur.Lexeme()
			s.nextToken()
		}
		items = append(items, ast.UseItem{Name: name, Alias: alias})

		// A use target is always fully qualified from the root, regardless
		// of the active namespace, so the raw lexeme is used rather than
		// name.Resolved (which would pick up the current namespace prefix).
		target := strings.TrimPrefix(nameTok.Lexeme(), "\\")
		if alias == "" {
			alias = nameTok.Lexeme()
			if i := lastSlash(alias); i >= 0 {
				alias = alias[i+1:]
			}
		}
		s.importTable(kind)[alias] = target

		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.Semicolon)
	return &ast.UseStmt{Base: s.synthBase(start), Kind: astKind, Items: items}
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\\' {
			return i
		}
	}
	return -1
}

func parseTopLevelConstStmt(s *State) ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'const'
	var items []ast.ConstItem
	for {
		name := s.cur.Lexeme()
		s.expect(token.Identifier)
		s.expect(token.Assign)
		val := s.parseExpression(lowest)
		items = append(items, ast.ConstItem{Name: name, Value: val})
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.Semicolon)
	return &ast.TopLevelConstStmt{Base: s.synthBase(start), Items: items}
}
