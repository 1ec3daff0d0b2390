package parser

import (
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/token"
)

// parseStatement is the statement dispatcher: it gathers
// any pending attribute groups, dispatches on the current token kind to a
// production, then attaches the drained comment group to the result.
func (s *State) parseStatement() ast.Statement {
	s.gatherAttributes()

	var stmt ast.Statement
	switch s.cur.Kind {
	case token.InlineHTML:
		stmt = s.parseInlineHTMLStmt()
	case token.OpenTag, token.CloseTag:
		stmt = s.parseTagStmt()
	case token.KwNamespace:
		stmt = parseNamespaceStmt(s)
	case token.KwUse:
		stmt = parseUseStmt(s)
	case token.KwFunction:
		if s.peekIs(token.Identifier) || token.IsKeywordIdentifier(s.peek.Kind) || s.peekIs(token.Ampersand) {
			stmt = parseFunctionDeclStmt(s)
		} else {
			stmt = s.parseExpressionStmt()
		}
	case token.KwAbstract, token.KwFinal, token.KwClass, token.KwInterface, token.KwTrait, token.KwEnum:
		stmt = parseClassDeclStmt(s)
	case token.KwIf:
		stmt = s.parseIfStmt()
	case token.KwWhile:
		stmt = s.parseWhileStmt()
	case token.KwDo:
		stmt = s.parseDoWhileStmt()
	case token.KwFor:
		stmt = s.parseForStmt()
	case token.KwForeach:
		stmt = s.parseForeachStmt()
	case token.KwSwitch:
		stmt = s.parseSwitchStmt()
	case token.KwTry:
		stmt = s.parseTryStmt()
	case token.KwReturn:
		stmt = s.parseReturnStmt()
	case token.KwBreak:
		stmt = s.parseBreakStmt()
	case token.KwContinue:
		stmt = s.parseContinueStmt()
	case token.KwEcho:
		stmt = s.parseEchoStmt()
	case token.KwGlobal:
		stmt = s.parseGlobalStmt()
	case token.KwStatic:
		if s.peekIs(token.Variable) {
			stmt = s.parseStaticVarStmt()
		} else {
			stmt = s.parseExpressionStmt()
		}
	case token.KwGoto:
		stmt = s.parseGotoStmt()
	case token.KwConst:
		stmt = parseTopLevelConstStmt(s)
	case token.LBrace:
		stmt = s.parseBlockStmt()
	case token.Identifier:
		if s.peekIs(token.Colon) {
			stmt = s.parseLabelStmt()
		} else {
			stmt = s.parseExpressionStmt()
		}
	case token.Semicolon:
		start := s.cur.Span
		s.nextToken()
		stmt = &ast.ExpressionStmt{Base: s.synthBase(start)}
	default:
		stmt = s.parseExpressionStmt()
	}

	if pending := s.drainAttributes(); len(pending) > 0 {
		if !isAttributableStmt(stmt) {
			s.errorf(diagnostics.InvalidTargetForAttributes, "attributes cannot target this statement")
		}
		stmt = &ast.AttributedStmt{Base: ast.Base{Id: s.allocID(), Sp: stmt.Span()}, Inner: stmt}
	}
	return stmt
}

// isAttributableStmt reports whether stmt is one of the declaration forms
// this parser lets a `#[...]` group decorate (class, function, and
// namespace declarations) rather than a `use` import or an arbitrary
// control-flow or expression statement.
func isAttributableStmt(stmt ast.Statement) bool {
	switch stmt.(type) {
	case *ast.ClassDeclStmt, *ast.FunctionDeclStmt, *ast.NamespaceStmt:
		return true
	default:
		return false
	}
}

// gatherAttributes consumes consecutive `#[...]` groups into the pending
// attribute buffer ahead of the construct they decorate.
func (s *State) gatherAttributes() {
	for s.curIs(token.Attribute) {
		s.pendingAttributes = append(s.pendingAttributes, s.parseAttributeGroup())
	}
}

func (s *State) parseAttributeGroup() []Attribute {
	s.nextToken() // consume '#['
	var attrs []Attribute
	for !s.curIs(token.RBracket) && !s.atEOF() {
		name := s.parseName(UseNormal)
		var args []ast.Argument
		if s.curIs(token.LParen) {
			args, _ = parseArgumentList(s)
		}
		attrs = append(attrs, Attribute{Name: name, Args: args})
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.RBracket)
	return attrs
}

func (s *State) parseInlineHTMLStmt() ast.Statement {
	tok := s.cur
	s.nextToken()
	return &ast.InlineHTMLStmt{Base: s.synthBase(tok.Span), Text: tok.Symbol}
}

// parseTagStmt consumes an open or close PHP tag transparently: tags mark a
// mode switch in the lexer, not a statement in their own right, so this
// produces no AST node of its own and instead parses whatever follows.
func (s *State) parseTagStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	if s.atEOF() {
		return &ast.ExpressionStmt{Base: s.synthBase(start)}
	}
	return s.parseStatement()
}

func (s *State) parseBlockStmt() ast.Statement {
	start := s.cur.Span
	stmts := parseBlockStatements(s)
	return &ast.BlockStmt{Base: s.synthBase(start), Statements: stmts}
}

func (s *State) parseExpressionStmt() ast.Statement {
	start := s.cur.Span
	expr := s.parseExpression(lowest)
	if !s.expect(token.Semicolon) {
		// Fail-soft: a missing `;` is reported but parsing continues from
		// wherever the cursor now sits.
	}
	return &ast.ExpressionStmt{Base: s.synthBase(start), Expr: expr}
}

// parseAltBody parses an alternate colon-syntax body: it expects the `:`
// and then every statement up to one of the terminator keywords
// (endif/endwhile/...).
func (s *State) parseAltBody(terminators ...token.Kind) []ast.Statement {
	s.expect(token.Colon)
	var stmts []ast.Statement
	for !s.atEOF() {
		matched := false
		for _, t := range terminators {
			if s.curIs(t) {
				matched = true
				break
			}
		}
		if matched {
			break
		}
		stmts = append(stmts, s.parseStatement())
	}
	return stmts
}

func (s *State) parseIfStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'if'
	s.expect(token.LParen)
	cond := s.parseExpression(lowest)
	s.expect(token.RParen)

	if s.curIs(token.Colon) {
		body := s.parseAltBody(token.KwElseif, token.KwElse, token.KwEndif)
		then := &ast.BlockStmt{Base: s.synthBase(start), Statements: body}
		var elseIfs []ast.ElseIfClause
		for s.curIs(token.KwElseif) {
			eiStart := s.cur.Span
			s.nextToken()
			s.expect(token.LParen)
			eiCond := s.parseExpression(lowest)
			s.expect(token.RParen)
			eiBody := s.parseAltBody(token.KwElseif, token.KwElse, token.KwEndif)
			elseIfs = append(elseIfs, ast.ElseIfClause{Condition: eiCond, Then: &ast.BlockStmt{Base: s.synthBase(eiStart), Statements: eiBody}})
		}
		var elseStmt ast.Statement
		if s.curIs(token.KwElse) {
			elseStart := s.cur.Span
			s.nextToken()
			elseBody := s.parseAltBody(token.KwEndif)
			elseStmt = &ast.BlockStmt{Base: s.synthBase(elseStart), Statements: elseBody}
		}
		s.expect(token.KwEndif)
		s.expect(token.Semicolon)
		return &ast.IfStmt{Base: s.synthBase(start), Condition: cond, Then: then, ElseIfs: elseIfs, Else: elseStmt, Alt: true}
	}

	then := s.parseStatement()
	var elseIfs []ast.ElseIfClause
	for s.curIs(token.KwElseif) {
		eiStart := s.cur.Span
		s.nextToken()
		s.expect(token.LParen)
		eiCond := s.parseExpression(lowest)
		s.expect(token.RParen)
		eiThen := s.parseStatement()
		elseIfs = append(elseIfs, ast.ElseIfClause{Condition: eiCond, Then: eiThen})
	}
	var elseStmt ast.Statement
	if s.curIs(token.KwElse) {
		s.nextToken()
		elseStmt = s.parseStatement()
	}
	return &ast.IfStmt{Base: s.synthBase(start), Condition: cond, Then: then, ElseIfs: elseIfs, Else: elseStmt}
}

func (s *State) parseWhileStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	s.expect(token.LParen)
	cond := s.parseExpression(lowest)
	s.expect(token.RParen)
	if s.curIs(token.Colon) {
		body := s.parseAltBody(token.KwEndwhile)
		s.expect(token.KwEndwhile)
		s.expect(token.Semicolon)
		return &ast.WhileStmt{Base: s.synthBase(start), Condition: cond, Body: &ast.BlockStmt{Base: s.synthBase(start), Statements: body}, Alt: true}
	}
	body := s.parseStatement()
	return &ast.WhileStmt{Base: s.synthBase(start), Condition: cond, Body: body}
}

func (s *State) parseDoWhileStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'do'
	body := s.parseStatement()
	s.expect(token.KwWhile)
	s.expect(token.LParen)
	cond := s.parseExpression(lowest)
	s.expect(token.RParen)
	s.expect(token.Semicolon)
	return &ast.DoWhileStmt{Base: s.synthBase(start), Body: body, Condition: cond}
}

func parseExprList(s *State, stop token.Kind) []ast.Expression {
	var exprs []ast.Expression
	for !s.curIs(stop) && !s.atEOF() {
		exprs = append(exprs, s.parseExpression(lowest))
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	return exprs
}

func (s *State) parseForStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'for'
	s.expect(token.LParen)
	init := parseExprList(s, token.Semicolon)
	s.expect(token.Semicolon)
	cond := parseExprList(s, token.Semicolon)
	s.expect(token.Semicolon)
	step := parseExprList(s, token.RParen)
	s.expect(token.RParen)
	if s.curIs(token.Colon) {
		body := s.parseAltBody(token.KwEndfor)
		s.expect(token.KwEndfor)
		s.expect(token.Semicolon)
		return &ast.ForStmt{Base: s.synthBase(start), Init: init, Condition: cond, Step: step, Body: &ast.BlockStmt{Base: s.synthBase(start), Statements: body}, Alt: true}
	}
	body := s.parseStatement()
	return &ast.ForStmt{Base: s.synthBase(start), Init: init, Condition: cond, Step: step, Body: body}
}

// parseForeachStmt enforces the key/value clause order invariant: a
// `Key =>` only ever precedes Value, never the reverse, by construction
// (there is no grammar path that could build the swapped form).
func (s *State) parseForeachStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'foreach'
	s.expect(token.LParen)
	subject := s.parseExpression(lowest)
	s.expect(token.KwAs)
	var key ast.Expression
	valueByRef := false
	if s.curIs(token.Ampersand) {
		valueByRef = true
		s.nextToken()
	}
	value := s.parseExpression(lowest)
	if s.curIs(token.DoubleArrow) {
		s.nextToken()
		key = value
		valueByRef = false
		if s.curIs(token.Ampersand) {
			valueByRef = true
			s.nextToken()
		}
		value = s.parseExpression(lowest)
	}
	s.expect(token.RParen)
	if s.curIs(token.Colon) {
		body := s.parseAltBody(token.KwEndforeach)
		s.expect(token.KwEndforeach)
		s.expect(token.Semicolon)
		return &ast.ForeachStmt{Base: s.synthBase(start), Subject: subject, Key: key, Value: value, ValueByRef: valueByRef, Body: &ast.BlockStmt{Base: s.synthBase(start), Statements: body}, Alt: true}
	}
	body := s.parseStatement()
	return &ast.ForeachStmt{Base: s.synthBase(start), Subject: subject, Key: key, Value: value, ValueByRef: valueByRef, Body: body}
}

func (s *State) parseSwitchStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'switch'
	s.expect(token.LParen)
	subject := s.parseExpression(lowest)
	s.expect(token.RParen)
	alt := s.curIs(token.Colon)
	if alt {
		s.nextToken()
	} else {
		s.expect(token.LBrace)
	}
	var cases []ast.SwitchCase
	for s.curIs(token.KwCase) || s.curIs(token.KwDefault) {
		var val ast.Expression
		if s.curIs(token.KwCase) {
			s.nextToken()
			val = s.parseExpression(lowest)
		} else {
			s.nextToken()
		}
		if s.curIs(token.Colon) || s.curIs(token.Semicolon) {
			s.nextToken()
		}
		var body []ast.Statement
		for !s.curIs(token.KwCase) && !s.curIs(token.KwDefault) && !s.curIs(token.RBrace) &&
			!s.curIs(token.KwEndswitch) && !s.atEOF() {
			body = append(body, s.parseStatement())
		}
		cases = append(cases, ast.SwitchCase{Value: val, Body: body})
	}
	if alt {
		s.expect(token.KwEndswitch)
		s.expect(token.Semicolon)
	} else {
		s.expect(token.RBrace)
	}
	return &ast.SwitchStmt{Base: s.synthBase(start), Subject: subject, Cases: cases, Alt: alt}
}

func (s *State) parseTryStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'try'
	body := parseBlockStatements(s)
	var catches []ast.CatchClause
	for s.curIs(token.KwCatch) {
		s.nextToken()
		s.expect(token.LParen)
		types := []*ast.Name{s.parseName(UseNormal)}
		for s.curIs(token.Pipe) {
			s.nextToken()
			types = append(types, s.parseName(UseNormal))
		}
		varname := ""
		if s.curIs(token.Variable) {
			varname = strings.TrimPrefix(s.cur.Lexeme(), "$")
			s.nextToken()
		}
		s.expect(token.RParen)
		catchBody := parseBlockStatements(s)
		catches = append(catches, ast.CatchClause{Types: types, Varname: varname, Body: catchBody})
	}
	var finallyBody []ast.Statement
	if s.curIs(token.KwFinally) {
		s.nextToken()
		finallyBody = parseBlockStatements(s)
	}
	return &ast.TryStmt{Base: s.synthBase(start), Body: body, Catches: catches, Finally: finallyBody}
}

func (s *State) parseReturnStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	var val ast.Expression
	if !s.curIs(token.Semicolon) {
		val = s.parseExpression(lowest)
	}
	s.expect(token.Semicolon)
	return &ast.ReturnStmt{Base: s.synthBase(start), Value: val}
}

func (s *State) parseBreakStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	var level ast.Expression
	if !s.curIs(token.Semicolon) {
		level = s.parseExpression(lowest)
	}
	s.expect(token.Semicolon)
	return &ast.BreakStmt{Base: s.synthBase(start), Level: level}
}

func (s *State) parseContinueStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	var level ast.Expression
	if !s.curIs(token.Semicolon) {
		level = s.parseExpression(lowest)
	}
	s.expect(token.Semicolon)
	return &ast.ContinueStmt{Base: s.synthBase(start), Level: level}
}

func (s *State) parseEchoStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	values := parseExprList(s, token.Semicolon)
	s.expect(token.Semicolon)
	return &ast.EchoStmt{Base: s.synthBase(start), Values: values}
}

func (s *State) parseGlobalStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	var names []string
	for s.curIs(token.Variable) {
		names = append(names, strings.TrimPrefix(s.cur.Lexeme(), "$"))
		s.nextToken()
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.Semicolon)
	return &ast.GlobalStmt{Base: s.synthBase(start), Names: names}
}

func (s *State) parseStaticVarStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken() // consume 'static'
	var vars []ast.StaticVar
	for s.curIs(token.Variable) {
		name := strings.TrimPrefix(s.cur.Lexeme(), "$")
		s.nextToken()
		var def ast.Expression
		if s.curIs(token.Assign) {
			s.nextToken()
			def = s.parseExpression(lowest)
		}
		vars = append(vars, ast.StaticVar{Name: name, Default: def})
		if s.curIs(token.Comma) {
			s.nextToken()
			continue
		}
		break
	}
	s.expect(token.Semicolon)
	return &ast.StaticVarStmt{Base: s.synthBase(start), Vars: vars}
}

func (s *State) parseGotoStmt() ast.Statement {
	start := s.cur.Span
	s.nextToken()
	label := s.cur.Lexeme()
	s.expect(token.Identifier)
	s.expect(token.Semicolon)
	return &ast.GotoStmt{Base: s.synthBase(start), Label: label}
}

func (s *State) parseLabelStmt() ast.Statement {
	start := s.cur.Span
	name := s.cur.Lexeme()
	s.nextToken()
	s.nextToken() // consume ':'
	return &ast.LabelStmt{Base: s.synthBase(start), Name: name}
}
