// Package prettyprinter renders an ast.Program back into source text. It
// implements ast.Visitor so it reaches every node kind the parser can
// produce, following the same dispatch shape the type engine uses rather
// than a separate switch-based walk.
package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
)

// binaryPrecedence mirrors the parser's own binding-power table closely
// enough to avoid emitting redundant parentheses around common
// expressions, without having to import the parser package (which would
// create an import cycle back through ast).
var binaryPrecedence = map[string]int{
	"or": 1, "xor": 2, "and": 3,
	"??": 5,
	"||": 6, "&&": 7,
	"|": 8, "^": 9, "&": 10,
	"==": 11, "!=": 11, "===": 11, "!==": 11, "<>": 11, "<=>": 11,
	"<": 12, ">": 12, "<=": 12, ">=": 12,
	"<<": 13, ">>": 13,
	".": 15,
	"+": 15, "-": 15,
	"*": 16, "/": 16, "%": 16,
	"instanceof": 18,
	"**":         19,
}

func precedenceOf(op string) int {
	if p, ok := binaryPrecedence[op]; ok {
		return p
	}
	return 17
}

var rightAssoc = map[string]bool{"**": true, "??": true}

// CodePrinter accumulates rendered source into a buffer, tracking
// indentation depth and the current column. The column is kept
// internally; no method exposes it.
type CodePrinter struct {
	ast.BaseVisitor
	buf    bytes.Buffer
	indent int
	column int
}

// NewCodePrinter builds a CodePrinter ready to render one Program.
func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders prog and returns the resulting source text.
func Print(prog *ast.Program) string {
	p := NewCodePrinter()
	p.write("<?php")
	p.writeln()
	for _, stmt := range prog.Statements {
		p.writeIndent()
		stmt.Accept(p)
		p.writeln()
	}
	return p.String()
}

func (p *CodePrinter) String() string { return p.buf.String() }

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
	p.column = 0
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
	p.column = p.indent * 4
}

func (p *CodePrinter) printExpr(e ast.Expression) {
	if e == nil {
		p.write("<missing>")
		return
	}
	e.Accept(p)
}

// printBinaryOperand wraps child in parens when its own precedence would
// otherwise bind looser than the parent operator requires.
func (p *CodePrinter) printBinaryOperand(child ast.Expression, parentPrec int, isRightOperand bool) {
	if bin, ok := child.(*ast.BinaryExpr); ok {
		childPrec := precedenceOf(bin.Op)
		needParens := childPrec < parentPrec
		if childPrec == parentPrec {
			if isRightOperand && !rightAssoc[bin.Op] {
				needParens = true
			}
			if !isRightOperand && rightAssoc[bin.Op] {
				needParens = true
			}
		}
		if needParens {
			p.write("(")
			p.printExpr(child)
			p.write(")")
			return
		}
	}
	p.printExpr(child)
}

func (p *CodePrinter) printBlockOrStmt(s ast.Statement) {
	if block, ok := s.(*ast.BlockStmt); ok {
		p.write(" {")
		p.writeln()
		p.indent++
		for _, inner := range block.Statements {
			p.writeIndent()
			inner.Accept(p)
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		return
	}
	p.writeln()
	p.indent++
	p.writeIndent()
	s.Accept(p)
	p.indent--
}

func (p *CodePrinter) printArgs(args []ast.Argument) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		if a.Spread {
			p.write("...")
		}
		if a.Name != "" {
			p.write(a.Name + ": ")
		}
		p.printExpr(a.Value)
	}
	p.write(")")
}

func (p *CodePrinter) printParams(params []ast.Param) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		if param.PromotedVis != "" {
			p.write(param.PromotedVis + " ")
		}
		if param.Readonly {
			p.write("readonly ")
		}
		if param.Type != nil {
			p.printTypeHint(param.Type)
			p.write(" ")
		}
		if param.ByRef {
			p.write("&")
		}
		if param.Variadic {
			p.write("...")
		}
		p.write("$" + param.Name)
		if param.Default != nil {
			p.write(" = ")
			p.printExpr(param.Default)
		}
	}
	p.write(")")
}

func (p *CodePrinter) printTypeHint(t *ast.TypeHint) {
	if t == nil {
		return
	}
	if t.Nullable {
		p.write("?")
	}
	if len(t.Union) > 0 {
		for i, m := range t.Union {
			if i > 0 {
				p.write("|")
			}
			p.printTypeHint(m)
		}
		return
	}
	if len(t.Intersection) > 0 {
		for i, m := range t.Intersection {
			if i > 0 {
				p.write("&")
			}
			p.printTypeHint(m)
		}
		return
	}
	if t.Name != nil {
		p.write(t.Name.String())
	}
}

func (p *CodePrinter) printName(n *ast.Name) { p.write(n.String()) }

// --- core / name / type hint ---

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for i, s := range n.Statements {
		if i > 0 {
			p.writeln()
			p.writeIndent()
		}
		s.Accept(p)
	}
}

func (p *CodePrinter) VisitMissing(n *ast.Missing) { p.write("<missing>") }
func (p *CodePrinter) VisitName(n *ast.Name)       { p.printName(n) }
func (p *CodePrinter) VisitTypeHint(n *ast.TypeHint) {
	p.printTypeHint(n)
}

// --- expressions ---

func (p *CodePrinter) VisitBinaryExpr(n *ast.BinaryExpr) {
	prec := precedenceOf(n.Op)
	p.printBinaryOperand(n.Left, prec, false)
	p.write(" " + n.Op + " ")
	p.printBinaryOperand(n.Right, prec, true)
}

func (p *CodePrinter) VisitAssignExpr(n *ast.AssignExpr) {
	p.printExpr(n.Left)
	p.write(" " + n.Op + " ")
	p.printExpr(n.Right)
}

func (p *CodePrinter) VisitReferenceExpr(n *ast.ReferenceExpr) {
	p.write("&")
	p.printExpr(n.Right)
}

func (p *CodePrinter) VisitUnaryExpr(n *ast.UnaryExpr) {
	if n.Fixity == ast.Prefix {
		p.write(n.Op)
		p.printExpr(n.Operand)
		return
	}
	p.printExpr(n.Operand)
	p.write(n.Op)
}

func (p *CodePrinter) VisitTernaryExpr(n *ast.TernaryExpr) {
	p.printExpr(n.Condition)
	p.write(" ? ")
	p.printExpr(n.Then)
	p.write(" : ")
	p.printExpr(n.Else)
}

func (p *CodePrinter) VisitShortTernaryExpr(n *ast.ShortTernaryExpr) {
	p.printExpr(n.Condition)
	p.write(" ?: ")
	p.printExpr(n.Else)
}

func (p *CodePrinter) VisitInstanceofExpr(n *ast.InstanceofExpr) {
	p.printExpr(n.Left)
	p.write(" instanceof ")
	p.printExpr(n.Right)
}

var castKeywords = map[ast.CastKind]string{
	ast.CastInt: "int", ast.CastFloat: "float", ast.CastString: "string",
	ast.CastArray: "array", ast.CastBool: "bool", ast.CastObject: "object",
	ast.CastUnset: "unset",
}

func (p *CodePrinter) VisitCastExpr(n *ast.CastExpr) {
	p.write("(" + castKeywords[n.Kind] + ")")
	p.printExpr(n.Operand)
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.write(strconv.FormatInt(n.Value, 10))
}

func (p *CodePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write("'" + strings.ReplaceAll(string(n.Value), "'", "\\'") + "'")
}

func (p *CodePrinter) VisitBoolLiteral(n *ast.BoolLiteral) {
	if n.Value {
		p.write("true")
	} else {
		p.write("false")
	}
}

func (p *CodePrinter) VisitNullLiteral(n *ast.NullLiteral) { p.write("null") }

var magicConstantText = map[ast.MagicConstantKind]string{
	ast.MagicLine: "__LINE__", ast.MagicFile: "__FILE__", ast.MagicDir: "__DIR__",
	ast.MagicFunction: "__FUNCTION__", ast.MagicClass: "__CLASS__",
	ast.MagicMethod: "__METHOD__", ast.MagicNamespace: "__NAMESPACE__", ast.MagicTrait: "__TRAIT__",
}

func (p *CodePrinter) VisitMagicConstant(n *ast.MagicConstant) {
	p.write(magicConstantText[n.Kind])
}

func (p *CodePrinter) VisitVariable(n *ast.Variable) { p.write("$" + n.Name) }

func (p *CodePrinter) VisitVariableVariable(n *ast.VariableVariable) {
	p.write("$")
	if _, ok := n.Name.(*ast.Variable); ok {
		p.printExpr(n.Name)
		return
	}
	p.write("{")
	p.printExpr(n.Name)
	p.write("}")
}

func (p *CodePrinter) VisitParenthesizedExpr(n *ast.ParenthesizedExpr) {
	p.write("(")
	p.printExpr(n.Inner)
	p.write(")")
}

func (p *CodePrinter) VisitArrayExpr(n *ast.ArrayExpr) {
	open, close := "[", "]"
	if !n.Short {
		open, close = "array(", ")"
	}
	p.write(open)
	for i, item := range n.Items {
		if i > 0 {
			p.write(", ")
		}
		if item.Spread {
			p.write("...")
		}
		if item.Key != nil {
			p.printExpr(item.Key)
			p.write(" => ")
		}
		if item.ByRef {
			p.write("&")
		}
		p.printExpr(item.Value)
	}
	p.write(close)
}

func (p *CodePrinter) VisitIndexExpr(n *ast.IndexExpr) {
	p.printExpr(n.Target)
	p.write("[")
	if n.Index != nil {
		p.printExpr(n.Index)
	}
	p.write("]")
}

func (p *CodePrinter) VisitPropertyAccessExpr(n *ast.PropertyAccessExpr) {
	p.printExpr(n.Target)
	if n.NullSafe {
		p.write("?->")
	} else {
		p.write("->")
	}
	if v, ok := n.Property.(*ast.Variable); ok {
		p.write(v.Name)
		return
	}
	p.printExpr(n.Property)
}

func (p *CodePrinter) VisitStaticAccessExpr(n *ast.StaticAccessExpr) {
	p.printExpr(n.Target)
	p.write("::")
	switch n.Kind {
	case ast.StaticProperty:
		if v, ok := n.Member.(*ast.Variable); ok {
			p.write("$" + v.Name)
			return
		}
		p.printExpr(n.Member)
	case ast.StaticBraced:
		p.write("{")
		p.printExpr(n.Member)
		p.write("}")
	case ast.StaticClassFetch:
		p.write("class")
	default:
		p.printExpr(n.Member)
	}
}

func (p *CodePrinter) VisitCallExpr(n *ast.CallExpr) {
	p.printExpr(n.Target)
	p.printArgs(n.Args)
}

func (p *CodePrinter) VisitFunctionClosureCreationExpr(n *ast.FunctionClosureCreationExpr) {
	p.printExpr(n.Target)
	p.write("(...)")
}

func (p *CodePrinter) VisitNewExpr(n *ast.NewExpr) {
	p.write("new ")
	p.printExpr(n.Target)
	p.printArgs(n.Args)
}

func (p *CodePrinter) VisitCloneExpr(n *ast.CloneExpr) {
	p.write("clone ")
	p.printExpr(n.Operand)
}

func (p *CodePrinter) VisitThrowExpr(n *ast.ThrowExpr) {
	p.write("throw ")
	p.printExpr(n.Value)
}

func (p *CodePrinter) VisitYieldExpr(n *ast.YieldExpr) {
	p.write("yield")
	if n.From {
		p.write(" from ")
		p.printExpr(n.Value)
		return
	}
	if n.Value == nil {
		return
	}
	p.write(" ")
	if n.Key != nil {
		p.printExpr(n.Key)
		p.write(" => ")
	}
	p.printExpr(n.Value)
}

func (p *CodePrinter) VisitMatchExpr(n *ast.MatchExpr) {
	p.write("match (")
	p.printExpr(n.Subject)
	p.write(") {")
	p.writeln()
	p.indent++
	for _, arm := range n.Arms {
		p.writeIndent()
		if len(arm.Conditions) == 0 {
			p.write("default")
		} else {
			for i, c := range arm.Conditions {
				if i > 0 {
					p.write(", ")
				}
				p.printExpr(c)
			}
		}
		p.write(" => ")
		p.printExpr(arm.Result)
		p.write(",")
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

var controlKeywords = map[ast.ControlKind]string{
	ast.CtlIsset: "isset", ast.CtlUnset: "unset", ast.CtlEmpty: "empty",
	ast.CtlEval: "eval", ast.CtlPrint: "print", ast.CtlDie: "die", ast.CtlExit: "exit",
}

func (p *CodePrinter) VisitControlExpr(n *ast.ControlExpr) {
	p.write(controlKeywords[n.Kind])
	if n.Kind == ast.CtlPrint {
		if len(n.Args) > 0 {
			p.write(" ")
			p.printExpr(n.Args[0])
		}
		return
	}
	p.write("(")
	for i, a := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(a)
	}
	p.write(")")
}

var includeKeywords = map[ast.IncludeKind]string{
	ast.IncludeInclude: "include", ast.IncludeIncludeOnce: "include_once",
	ast.IncludeRequire: "require", ast.IncludeRequireOnce: "require_once",
}

func (p *CodePrinter) VisitIncludeExpr(n *ast.IncludeExpr) {
	p.write(includeKeywords[n.Kind] + " ")
	p.printExpr(n.Path)
}

func (p *CodePrinter) VisitClosureExpr(n *ast.ClosureExpr) {
	if n.Static {
		p.write("static ")
	}
	p.write("function ")
	if n.ByRef {
		p.write("&")
	}
	p.printParams(n.Params)
	if len(n.Uses) > 0 {
		p.write(" use (")
		for i, u := range n.Uses {
			if i > 0 {
				p.write(", ")
			}
			if u.ByRef {
				p.write("&")
			}
			p.write("$" + u.Name)
		}
		p.write(")")
	}
	if n.ReturnType != nil {
		p.write(": ")
		p.printTypeHint(n.ReturnType)
	}
	p.write(" {")
	p.writeln()
	p.indent++
	for _, s := range n.Body {
		p.writeIndent()
		s.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitArrowFunctionExpr(n *ast.ArrowFunctionExpr) {
	if n.Static {
		p.write("static ")
	}
	p.write("fn ")
	if n.ByRef {
		p.write("&")
	}
	p.printParams(n.Params)
	if n.ReturnType != nil {
		p.write(": ")
		p.printTypeHint(n.ReturnType)
	}
	p.write(" => ")
	p.printExpr(n.Body)
}

func (p *CodePrinter) VisitInterpolatedStringExpr(n *ast.InterpolatedStringExpr) {
	p.write("\"")
	for _, part := range n.Parts {
		if lit, ok := part.(*ast.StringLiteral); ok {
			p.write(string(lit.Value))
			continue
		}
		p.write("{")
		p.printExpr(part)
		p.write("}")
	}
	p.write("\"")
}

func (p *CodePrinter) VisitShellExecExpr(n *ast.ShellExecExpr) {
	p.write("`")
	for _, part := range n.Parts {
		if lit, ok := part.(*ast.StringLiteral); ok {
			p.write(string(lit.Value))
			continue
		}
		p.write("{")
		p.printExpr(part)
		p.write("}")
	}
	p.write("`")
}

func (p *CodePrinter) VisitAttributedClosureExpr(n *ast.AttributedClosureExpr) {
	p.printExpr(n.Inner)
}

// --- statements ---

func (p *CodePrinter) VisitExpressionStmt(n *ast.ExpressionStmt) {
	if n.Expr != nil {
		p.printExpr(n.Expr)
	}
	p.write(";")
}

func (p *CodePrinter) VisitBlockStmt(n *ast.BlockStmt) {
	p.write("{")
	p.writeln()
	p.indent++
	for _, s := range n.Statements {
		p.writeIndent()
		s.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitInlineHTMLStmt(n *ast.InlineHTMLStmt) {
	p.write("?>")
	p.write(string(n.Text))
	p.write("<?php")
}

func (p *CodePrinter) VisitNamespaceStmt(n *ast.NamespaceStmt) {
	p.write("namespace")
	if n.Name != nil {
		p.write(" ")
		p.printName(n.Name)
	}
	if n.Braced {
		p.write(" {")
		p.writeln()
		p.indent++
		for _, s := range n.Body {
			p.writeIndent()
			s.Accept(p)
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("}")
		return
	}
	p.write(";")
}

var useKindKeywords = map[ast.UseKind]string{
	ast.UseClass: "", ast.UseFunction: "function ", ast.UseConst: "const ",
}

func (p *CodePrinter) VisitUseStmt(n *ast.UseStmt) {
	p.write("use " + useKindKeywords[n.Kind])
	for i, item := range n.Items {
		if i > 0 {
			p.write(", ")
		}
		p.printName(item.Name)
		if item.Alias != "" {
			p.write(" as " + item.Alias)
		}
	}
	p.write(";")
}

func (p *CodePrinter) VisitFunctionDeclStmt(n *ast.FunctionDeclStmt) {
	p.write("function ")
	if n.ByRef {
		p.write("&")
	}
	p.write(n.Name)
	p.printParams(n.Params)
	if n.ReturnType != nil {
		p.write(": ")
		p.printTypeHint(n.ReturnType)
	}
	p.write(" {")
	p.writeln()
	p.indent++
	for _, s := range n.Body {
		p.writeIndent()
		s.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

var classKindKeywords = map[ast.ClassKind]string{
	ast.ClassOrdinary: "class", ast.ClassAbstract: "abstract class", ast.ClassFinal: "final class",
	ast.ClassInterface: "interface", ast.ClassTrait: "trait", ast.ClassEnum: "enum",
}

func (p *CodePrinter) VisitClassDeclStmt(n *ast.ClassDeclStmt) {
	p.write(classKindKeywords[n.Kind] + " " + n.Name)
	if n.BackingType != nil {
		p.write(": ")
		p.printTypeHint(n.BackingType)
	}
	if len(n.Extends) > 0 {
		p.write(" extends ")
		for i, e := range n.Extends {
			if i > 0 {
				p.write(", ")
			}
			p.printName(e)
		}
	}
	if len(n.Implements) > 0 {
		p.write(" implements ")
		for i, im := range n.Implements {
			if i > 0 {
				p.write(", ")
			}
			p.printName(im)
		}
	}
	p.write(" {")
	p.writeln()
	p.indent++
	for _, m := range n.Members {
		p.writeIndent()
		m.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitMethodDecl(n *ast.MethodDecl) {
	if n.Visibility != "" {
		p.write(n.Visibility + " ")
	}
	if n.Static {
		p.write("static ")
	}
	if n.Abstract {
		p.write("abstract ")
	}
	if n.Final {
		p.write("final ")
	}
	p.write("function ")
	if n.ByRef {
		p.write("&")
	}
	p.write(n.Name)
	p.printParams(n.Params)
	if n.ReturnType != nil {
		p.write(": ")
		p.printTypeHint(n.ReturnType)
	}
	if n.Body == nil {
		p.write(";")
		return
	}
	p.write(" {")
	p.writeln()
	p.indent++
	for _, s := range n.Body {
		p.writeIndent()
		s.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitPropertyDecl(n *ast.PropertyDecl) {
	if n.Visibility != "" {
		p.write(n.Visibility + " ")
	}
	if n.Static {
		p.write("static ")
	}
	if n.Readonly {
		p.write("readonly ")
	}
	if n.Type != nil {
		p.printTypeHint(n.Type)
		p.write(" ")
	}
	for i, item := range n.Items {
		if i > 0 {
			p.write(", ")
		}
		p.write("$" + item.Name)
		if item.Value != nil {
			p.write(" = ")
			p.printExpr(item.Value)
		}
	}
	p.write(";")
}

func (p *CodePrinter) VisitClassConstDecl(n *ast.ClassConstDecl) {
	if n.Visibility != "" {
		p.write(n.Visibility + " ")
	}
	p.write("const ")
	for i, item := range n.Items {
		if i > 0 {
			p.write(", ")
		}
		p.write(item.Name + " = ")
		p.printExpr(item.Value)
	}
	p.write(";")
}

func (p *CodePrinter) VisitUseTraitDecl(n *ast.UseTraitDecl) {
	p.write("use ")
	for i, t := range n.Traits {
		if i > 0 {
			p.write(", ")
		}
		p.printName(t)
	}
	if len(n.Adaptations) == 0 {
		p.write(";")
		return
	}
	p.write(" { ... }")
}

func (p *CodePrinter) VisitEnumCaseDecl(n *ast.EnumCaseDecl) {
	p.write("case " + n.Name)
	if n.Value != nil {
		p.write(" = ")
		p.printExpr(n.Value)
	}
	p.write(";")
}

func (p *CodePrinter) VisitTopLevelConstStmt(n *ast.TopLevelConstStmt) {
	p.write("const ")
	for i, item := range n.Items {
		if i > 0 {
			p.write(", ")
		}
		p.write(item.Name + " = ")
		p.printExpr(item.Value)
	}
	p.write(";")
}

func (p *CodePrinter) VisitIfStmt(n *ast.IfStmt) {
	p.write("if (")
	p.printExpr(n.Condition)
	p.write(")")
	p.printBlockOrStmt(n.Then)
	for _, ei := range n.ElseIfs {
		p.write(" elseif (")
		p.printExpr(ei.Condition)
		p.write(")")
		p.printBlockOrStmt(ei.Then)
	}
	if n.Else != nil {
		p.write(" else")
		p.printBlockOrStmt(n.Else)
	}
}

func (p *CodePrinter) VisitWhileStmt(n *ast.WhileStmt) {
	p.write("while (")
	p.printExpr(n.Condition)
	p.write(")")
	p.printBlockOrStmt(n.Body)
}

func (p *CodePrinter) VisitDoWhileStmt(n *ast.DoWhileStmt) {
	p.write("do")
	p.printBlockOrStmt(n.Body)
	p.write(" while (")
	p.printExpr(n.Condition)
	p.write(");")
}

func (p *CodePrinter) printExprList(exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e)
	}
}

func (p *CodePrinter) VisitForStmt(n *ast.ForStmt) {
	p.write("for (")
	p.printExprList(n.Init)
	p.write("; ")
	p.printExprList(n.Condition)
	p.write("; ")
	p.printExprList(n.Step)
	p.write(")")
	p.printBlockOrStmt(n.Body)
}

func (p *CodePrinter) VisitForeachStmt(n *ast.ForeachStmt) {
	p.write("foreach (")
	p.printExpr(n.Subject)
	p.write(" as ")
	if n.Key != nil {
		p.printExpr(n.Key)
		p.write(" => ")
	}
	if n.ValueByRef {
		p.write("&")
	}
	p.printExpr(n.Value)
	p.write(")")
	p.printBlockOrStmt(n.Body)
}

func (p *CodePrinter) VisitSwitchStmt(n *ast.SwitchStmt) {
	p.write("switch (")
	p.printExpr(n.Subject)
	p.write(") {")
	p.writeln()
	p.indent++
	for _, c := range n.Cases {
		p.writeIndent()
		if c.Value == nil {
			p.write("default:")
		} else {
			p.write("case ")
			p.printExpr(c.Value)
			p.write(":")
		}
		p.writeln()
		p.indent++
		for _, s := range c.Body {
			p.writeIndent()
			s.Accept(p)
			p.writeln()
		}
		p.indent--
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitTryStmt(n *ast.TryStmt) {
	p.write("try {")
	p.writeln()
	p.indent++
	for _, s := range n.Body {
		p.writeIndent()
		s.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	for _, c := range n.Catches {
		p.write(" catch (")
		for i, t := range c.Types {
			if i > 0 {
				p.write("|")
			}
			p.printName(t)
		}
		if c.Varname != "" {
			p.write(" $" + c.Varname)
		}
		p.write(") {")
		p.writeln()
		p.indent++
		for _, s := range c.Body {
			p.writeIndent()
			s.Accept(p)
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("}")
	}
	if n.Finally != nil {
		p.write(" finally {")
		p.writeln()
		p.indent++
		for _, s := range n.Finally {
			p.writeIndent()
			s.Accept(p)
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("}")
	}
}

func (p *CodePrinter) VisitReturnStmt(n *ast.ReturnStmt) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		p.printExpr(n.Value)
	}
	p.write(";")
}

func (p *CodePrinter) VisitBreakStmt(n *ast.BreakStmt) {
	p.write("break")
	if n.Level != nil {
		p.write(" ")
		p.printExpr(n.Level)
	}
	p.write(";")
}

func (p *CodePrinter) VisitContinueStmt(n *ast.ContinueStmt) {
	p.write("continue")
	if n.Level != nil {
		p.write(" ")
		p.printExpr(n.Level)
	}
	p.write(";")
}

func (p *CodePrinter) VisitEchoStmt(n *ast.EchoStmt) {
	p.write("echo ")
	p.printExprList(n.Values)
	p.write(";")
}

func (p *CodePrinter) VisitGlobalStmt(n *ast.GlobalStmt) {
	p.write("global ")
	for i, name := range n.Names {
		if i > 0 {
			p.write(", ")
		}
		p.write("$" + name)
	}
	p.write(";")
}

func (p *CodePrinter) VisitStaticVarStmt(n *ast.StaticVarStmt) {
	p.write("static ")
	for i, v := range n.Vars {
		if i > 0 {
			p.write(", ")
		}
		p.write("$" + v.Name)
		if v.Default != nil {
			p.write(" = ")
			p.printExpr(v.Default)
		}
	}
	p.write(";")
}

func (p *CodePrinter) VisitGotoStmt(n *ast.GotoStmt) { p.write("goto " + n.Label + ";") }
func (p *CodePrinter) VisitLabelStmt(n *ast.LabelStmt) { p.write(n.Name + ":") }

func (p *CodePrinter) VisitAttributedStmt(n *ast.AttributedStmt) {
	n.Inner.Accept(p)
}

var _ ast.Visitor = (*CodePrinter)(nil)
