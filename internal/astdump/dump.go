// Package astdump renders an ast.Program (or any single node) into a
// JSON-friendly tree of maps, for the --json flag of cmd/phpparse and for
// golden-file snapshot tests. It implements ast.Visitor the same way
// prettyprinter does, trading rendered text for a generic value.
package astdump

import (
	"reflect"

	"github.com/gophp-lang/corephp/internal/ast"
)

// Dump converts n into a `map[string]any` (or nil for a nil node) suitable
// for json.Marshal. n is frequently a typed-nil pointer stored in an
// interface field (an absent `else` clause, an omitted return type), so a
// plain `n == nil` check is not enough — it is checked via reflection.
func Dump(n ast.Node) any {
	if n == nil {
		return nil
	}
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	d := &dumper{}
	n.Accept(d)
	return d.out
}

type dumper struct {
	ast.BaseVisitor
	out map[string]any
}

func node(kind string, fields map[string]any) map[string]any {
	m := map[string]any{"node": kind}
	for k, v := range fields {
		m[k] = v
	}
	return m
}

func dumpExprs(exprs []ast.Expression) []any {
	out := make([]any, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Dump(e))
	}
	return out
}

func dumpStmts(stmts []ast.Statement) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func (d *dumper) VisitProgram(n *ast.Program) {
	d.out = node("Program", map[string]any{"file": n.File, "body": dumpStmts(n.Statements)})
}

func (d *dumper) VisitMissing(n *ast.Missing) { d.out = node("Missing", nil) }

func (d *dumper) VisitName(n *ast.Name) {
	d.out = node("Name", map[string]any{"resolved": n.IsResolved(), "value": n.String()})
}

func (d *dumper) VisitTypeHint(n *ast.TypeHint) {
	fields := map[string]any{"nullable": n.Nullable}
	if n.Name != nil {
		fields["name"] = n.Name.String()
	}
	if len(n.Union) > 0 {
		members := make([]any, len(n.Union))
		for i, m := range n.Union {
			members[i] = Dump(m)
		}
		fields["union"] = members
	}
	d.out = node("TypeHint", fields)
}

func (d *dumper) VisitBinaryExpr(n *ast.BinaryExpr) {
	d.out = node("BinaryExpr", map[string]any{"op": n.Op, "left": Dump(n.Left), "right": Dump(n.Right)})
}

func (d *dumper) VisitAssignExpr(n *ast.AssignExpr) {
	d.out = node("AssignExpr", map[string]any{"op": n.Op, "left": Dump(n.Left), "right": Dump(n.Right)})
}

func (d *dumper) VisitReferenceExpr(n *ast.ReferenceExpr) {
	d.out = node("ReferenceExpr", map[string]any{"right": Dump(n.Right)})
}

func (d *dumper) VisitUnaryExpr(n *ast.UnaryExpr) {
	d.out = node("UnaryExpr", map[string]any{"op": n.Op, "postfix": n.Fixity == ast.Postfix, "operand": Dump(n.Operand)})
}

func (d *dumper) VisitTernaryExpr(n *ast.TernaryExpr) {
	d.out = node("TernaryExpr", map[string]any{"condition": Dump(n.Condition), "then": Dump(n.Then), "else": Dump(n.Else)})
}

func (d *dumper) VisitShortTernaryExpr(n *ast.ShortTernaryExpr) {
	d.out = node("ShortTernaryExpr", map[string]any{"condition": Dump(n.Condition), "else": Dump(n.Else)})
}

func (d *dumper) VisitInstanceofExpr(n *ast.InstanceofExpr) {
	d.out = node("InstanceofExpr", map[string]any{"left": Dump(n.Left), "right": Dump(n.Right)})
}

func (d *dumper) VisitCastExpr(n *ast.CastExpr) {
	d.out = node("CastExpr", map[string]any{"kind": int(n.Kind), "operand": Dump(n.Operand)})
}

func (d *dumper) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	d.out = node("IntegerLiteral", map[string]any{"value": n.Value})
}

func (d *dumper) VisitFloatLiteral(n *ast.FloatLiteral) {
	d.out = node("FloatLiteral", map[string]any{"value": n.Value})
}

func (d *dumper) VisitStringLiteral(n *ast.StringLiteral) {
	d.out = node("StringLiteral", map[string]any{"value": string(n.Value)})
}

func (d *dumper) VisitBoolLiteral(n *ast.BoolLiteral) {
	d.out = node("BoolLiteral", map[string]any{"value": n.Value})
}

func (d *dumper) VisitNullLiteral(n *ast.NullLiteral) { d.out = node("NullLiteral", nil) }

func (d *dumper) VisitMagicConstant(n *ast.MagicConstant) {
	d.out = node("MagicConstant", map[string]any{"kind": int(n.Kind)})
}

func (d *dumper) VisitVariable(n *ast.Variable) {
	d.out = node("Variable", map[string]any{"name": n.Name})
}

func (d *dumper) VisitVariableVariable(n *ast.VariableVariable) {
	d.out = node("VariableVariable", map[string]any{"name": Dump(n.Name)})
}

func (d *dumper) VisitParenthesizedExpr(n *ast.ParenthesizedExpr) {
	d.out = node("ParenthesizedExpr", map[string]any{"inner": Dump(n.Inner)})
}

func (d *dumper) VisitArrayExpr(n *ast.ArrayExpr) {
	items := make([]any, len(n.Items))
	for i, item := range n.Items {
		items[i] = map[string]any{"key": Dump(item.Key), "value": Dump(item.Value), "byRef": item.ByRef, "spread": item.Spread}
	}
	d.out = node("ArrayExpr", map[string]any{"short": n.Short, "items": items})
}

func (d *dumper) VisitIndexExpr(n *ast.IndexExpr) {
	d.out = node("IndexExpr", map[string]any{"target": Dump(n.Target), "index": Dump(n.Index)})
}

func (d *dumper) VisitPropertyAccessExpr(n *ast.PropertyAccessExpr) {
	d.out = node("PropertyAccessExpr", map[string]any{"target": Dump(n.Target), "property": Dump(n.Property), "nullSafe": n.NullSafe})
}

func (d *dumper) VisitStaticAccessExpr(n *ast.StaticAccessExpr) {
	d.out = node("StaticAccessExpr", map[string]any{"target": Dump(n.Target), "kind": int(n.Kind), "member": Dump(n.Member)})
}

func dumpArgs(args []ast.Argument) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = map[string]any{"name": a.Name, "value": Dump(a.Value), "spread": a.Spread}
	}
	return out
}

func (d *dumper) VisitCallExpr(n *ast.CallExpr) {
	d.out = node("CallExpr", map[string]any{"target": Dump(n.Target), "args": dumpArgs(n.Args)})
}

func (d *dumper) VisitFunctionClosureCreationExpr(n *ast.FunctionClosureCreationExpr) {
	d.out = node("FunctionClosureCreationExpr", map[string]any{"target": Dump(n.Target)})
}

func (d *dumper) VisitNewExpr(n *ast.NewExpr) {
	d.out = node("NewExpr", map[string]any{"target": Dump(n.Target), "args": dumpArgs(n.Args)})
}

func (d *dumper) VisitCloneExpr(n *ast.CloneExpr) {
	d.out = node("CloneExpr", map[string]any{"operand": Dump(n.Operand)})
}

func (d *dumper) VisitThrowExpr(n *ast.ThrowExpr) {
	d.out = node("ThrowExpr", map[string]any{"value": Dump(n.Value)})
}

func (d *dumper) VisitYieldExpr(n *ast.YieldExpr) {
	d.out = node("YieldExpr", map[string]any{"key": Dump(n.Key), "value": Dump(n.Value), "from": n.From})
}

func (d *dumper) VisitMatchExpr(n *ast.MatchExpr) {
	arms := make([]any, len(n.Arms))
	for i, arm := range n.Arms {
		arms[i] = map[string]any{"conditions": dumpExprs(arm.Conditions), "result": Dump(arm.Result)}
	}
	d.out = node("MatchExpr", map[string]any{"subject": Dump(n.Subject), "arms": arms})
}

func (d *dumper) VisitControlExpr(n *ast.ControlExpr) {
	d.out = node("ControlExpr", map[string]any{"kind": int(n.Kind), "args": dumpExprs(n.Args)})
}

func (d *dumper) VisitIncludeExpr(n *ast.IncludeExpr) {
	d.out = node("IncludeExpr", map[string]any{"kind": int(n.Kind), "path": Dump(n.Path)})
}

func dumpParams(params []ast.Param) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = map[string]any{
			"name": p.Name, "type": Dump(p.Type), "default": Dump(p.Default),
			"byRef": p.ByRef, "variadic": p.Variadic,
		}
	}
	return out
}

func (d *dumper) VisitClosureExpr(n *ast.ClosureExpr) {
	uses := make([]any, len(n.Uses))
	for i, u := range n.Uses {
		uses[i] = map[string]any{"name": u.Name, "byRef": u.ByRef}
	}
	d.out = node("ClosureExpr", map[string]any{
		"static": n.Static, "byRef": n.ByRef, "params": dumpParams(n.Params),
		"uses": uses, "returnType": Dump(n.ReturnType), "body": dumpStmts(n.Body),
	})
}

func (d *dumper) VisitArrowFunctionExpr(n *ast.ArrowFunctionExpr) {
	d.out = node("ArrowFunctionExpr", map[string]any{
		"static": n.Static, "byRef": n.ByRef, "params": dumpParams(n.Params),
		"returnType": Dump(n.ReturnType), "body": Dump(n.Body),
	})
}

func (d *dumper) VisitInterpolatedStringExpr(n *ast.InterpolatedStringExpr) {
	d.out = node("InterpolatedStringExpr", map[string]any{"parts": dumpExprs(n.Parts)})
}

func (d *dumper) VisitShellExecExpr(n *ast.ShellExecExpr) {
	d.out = node("ShellExecExpr", map[string]any{"parts": dumpExprs(n.Parts)})
}

func (d *dumper) VisitAttributedClosureExpr(n *ast.AttributedClosureExpr) {
	d.out = node("AttributedClosureExpr", map[string]any{"inner": Dump(n.Inner)})
}

func (d *dumper) VisitExpressionStmt(n *ast.ExpressionStmt) {
	d.out = node("ExpressionStmt", map[string]any{"expr": Dump(n.Expr)})
}

func (d *dumper) VisitBlockStmt(n *ast.BlockStmt) {
	d.out = node("BlockStmt", map[string]any{"body": dumpStmts(n.Statements)})
}

func (d *dumper) VisitInlineHTMLStmt(n *ast.InlineHTMLStmt) {
	d.out = node("InlineHTMLStmt", map[string]any{"text": string(n.Text)})
}

func (d *dumper) VisitNamespaceStmt(n *ast.NamespaceStmt) {
	fields := map[string]any{"braced": n.Braced, "body": dumpStmts(n.Body)}
	if n.Name != nil {
		fields["name"] = n.Name.String()
	}
	d.out = node("NamespaceStmt", fields)
}

func (d *dumper) VisitUseStmt(n *ast.UseStmt) {
	items := make([]any, len(n.Items))
	for i, item := range n.Items {
		items[i] = map[string]any{"name": item.Name.String(), "alias": item.Alias}
	}
	d.out = node("UseStmt", map[string]any{"kind": int(n.Kind), "items": items})
}

func (d *dumper) VisitFunctionDeclStmt(n *ast.FunctionDeclStmt) {
	d.out = node("FunctionDeclStmt", map[string]any{
		"name": n.Name, "byRef": n.ByRef, "params": dumpParams(n.Params),
		"returnType": Dump(n.ReturnType), "body": dumpStmts(n.Body),
	})
}

func dumpNames(names []*ast.Name) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

func (d *dumper) VisitClassDeclStmt(n *ast.ClassDeclStmt) {
	members := make([]any, len(n.Members))
	for i, m := range n.Members {
		members[i] = Dump(m)
	}
	d.out = node("ClassDeclStmt", map[string]any{
		"kind": int(n.Kind), "name": n.Name, "extends": dumpNames(n.Extends),
		"implements": dumpNames(n.Implements), "members": members,
	})
}

func (d *dumper) VisitMethodDecl(n *ast.MethodDecl) {
	d.out = node("MethodDecl", map[string]any{
		"name": n.Name, "visibility": n.Visibility, "static": n.Static,
		"abstract": n.Abstract, "final": n.Final, "params": dumpParams(n.Params),
		"returnType": Dump(n.ReturnType), "body": dumpStmts(n.Body),
	})
}

func dumpConstItems(items []ast.ConstItem) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = map[string]any{"name": it.Name, "value": Dump(it.Value)}
	}
	return out
}

func (d *dumper) VisitPropertyDecl(n *ast.PropertyDecl) {
	d.out = node("PropertyDecl", map[string]any{
		"visibility": n.Visibility, "static": n.Static, "readonly": n.Readonly,
		"type": Dump(n.Type), "items": dumpConstItems(n.Items),
	})
}

func (d *dumper) VisitClassConstDecl(n *ast.ClassConstDecl) {
	d.out = node("ClassConstDecl", map[string]any{"visibility": n.Visibility, "items": dumpConstItems(n.Items)})
}

func (d *dumper) VisitUseTraitDecl(n *ast.UseTraitDecl) {
	d.out = node("UseTraitDecl", map[string]any{"traits": dumpNames(n.Traits)})
}

func (d *dumper) VisitEnumCaseDecl(n *ast.EnumCaseDecl) {
	d.out = node("EnumCaseDecl", map[string]any{"name": n.Name, "value": Dump(n.Value)})
}

func (d *dumper) VisitTopLevelConstStmt(n *ast.TopLevelConstStmt) {
	d.out = node("TopLevelConstStmt", map[string]any{"items": dumpConstItems(n.Items)})
}

func (d *dumper) VisitIfStmt(n *ast.IfStmt) {
	elseIfs := make([]any, len(n.ElseIfs))
	for i, ei := range n.ElseIfs {
		elseIfs[i] = map[string]any{"condition": Dump(ei.Condition), "then": Dump(ei.Then)}
	}
	d.out = node("IfStmt", map[string]any{
		"condition": Dump(n.Condition), "then": Dump(n.Then), "elseIfs": elseIfs, "else": Dump(n.Else),
	})
}

func (d *dumper) VisitWhileStmt(n *ast.WhileStmt) {
	d.out = node("WhileStmt", map[string]any{"condition": Dump(n.Condition), "body": Dump(n.Body)})
}

func (d *dumper) VisitDoWhileStmt(n *ast.DoWhileStmt) {
	d.out = node("DoWhileStmt", map[string]any{"body": Dump(n.Body), "condition": Dump(n.Condition)})
}

func (d *dumper) VisitForStmt(n *ast.ForStmt) {
	d.out = node("ForStmt", map[string]any{
		"init": dumpExprs(n.Init), "condition": dumpExprs(n.Condition), "step": dumpExprs(n.Step), "body": Dump(n.Body),
	})
}

func (d *dumper) VisitForeachStmt(n *ast.ForeachStmt) {
	d.out = node("ForeachStmt", map[string]any{
		"subject": Dump(n.Subject), "key": Dump(n.Key), "value": Dump(n.Value),
		"valueByRef": n.ValueByRef, "body": Dump(n.Body),
	})
}

func (d *dumper) VisitSwitchStmt(n *ast.SwitchStmt) {
	cases := make([]any, len(n.Cases))
	for i, c := range n.Cases {
		cases[i] = map[string]any{"value": Dump(c.Value), "body": dumpStmts(c.Body)}
	}
	d.out = node("SwitchStmt", map[string]any{"subject": Dump(n.Subject), "cases": cases})
}

func (d *dumper) VisitTryStmt(n *ast.TryStmt) {
	catches := make([]any, len(n.Catches))
	for i, c := range n.Catches {
		catches[i] = map[string]any{"types": dumpNames(c.Types), "varname": c.Varname, "body": dumpStmts(c.Body)}
	}
	d.out = node("TryStmt", map[string]any{"body": dumpStmts(n.Body), "catches": catches, "finally": dumpStmts(n.Finally)})
}

func (d *dumper) VisitReturnStmt(n *ast.ReturnStmt) { d.out = node("ReturnStmt", map[string]any{"value": Dump(n.Value)}) }
func (d *dumper) VisitBreakStmt(n *ast.BreakStmt)   { d.out = node("BreakStmt", map[string]any{"level": Dump(n.Level)}) }
func (d *dumper) VisitContinueStmt(n *ast.ContinueStmt) {
	d.out = node("ContinueStmt", map[string]any{"level": Dump(n.Level)})
}
func (d *dumper) VisitEchoStmt(n *ast.EchoStmt) { d.out = node("EchoStmt", map[string]any{"values": dumpExprs(n.Values)}) }
func (d *dumper) VisitGlobalStmt(n *ast.GlobalStmt) { d.out = node("GlobalStmt", map[string]any{"names": n.Names}) }

func (d *dumper) VisitStaticVarStmt(n *ast.StaticVarStmt) {
	vars := make([]any, len(n.Vars))
	for i, v := range n.Vars {
		vars[i] = map[string]any{"name": v.Name, "default": Dump(v.Default)}
	}
	d.out = node("StaticVarStmt", map[string]any{"vars": vars})
}

func (d *dumper) VisitGotoStmt(n *ast.GotoStmt)   { d.out = node("GotoStmt", map[string]any{"label": n.Label}) }
func (d *dumper) VisitLabelStmt(n *ast.LabelStmt) { d.out = node("LabelStmt", map[string]any{"name": n.Name}) }

func (d *dumper) VisitAttributedStmt(n *ast.AttributedStmt) {
	d.out = node("AttributedStmt", map[string]any{"inner": Dump(n.Inner)})
}

var _ ast.Visitor = (*dumper)(nil)
