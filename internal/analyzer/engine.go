package analyzer

import (
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/symbols"
	"github.com/gophp-lang/corephp/internal/typesystem"
)

// Engine runs a single in-order AST walk: it
// assigns every node an inferred typesystem.Type and records it into a
// TypeMap, consulting a symbols.Index for call/new resolution and a
// Scope stack for variable types. One Engine runs exactly one parse;
// nothing here is shared across concurrent runs.
type Engine struct {
	index *symbols.Index
	types TypeMap
	scope *Scope
}

// NewEngine builds an Engine that resolves function/class lookups
// against index. A nil index is accepted — every lookup then misses and
// falls back to Mixed, which is useful for tests that don't care about
// resolution.
func NewEngine(index *symbols.Index) *Engine {
	return &Engine{index: index, types: TypeMap{}}
}

// Run walks prog and returns the completed TypeMap.
func Run(prog *ast.Program, index *symbols.Index) TypeMap {
	e := NewEngine(index)
	e.scope = newScope(nil)
	for _, s := range prog.Statements {
		e.stmt(s)
	}
	return e.types
}

// pushFunctionScope pushes a fresh root scope (no outer link) for a
// function/method declaration boundary.
func (e *Engine) pushFunctionScope() *Scope {
	prev := e.scope
	e.scope = newScope(nil)
	return prev
}

func (e *Engine) popScope(prev *Scope) {
	e.scope = prev
}

func (e *Engine) bindParam(p ast.Param) {
	t := typeFromHint(p.Type)
	if p.Variadic {
		t = typesystem.TypedArrayType{Key: typesystem.Integer, Value: t}
	}
	e.scope.Set(p.Name, t)
}

// stmt walks one statement. Statements are not themselves typed (the
// Type sum in has no statement member); stmt exists purely to
// thread scopes through function/closure boundaries and to reach every
// expression node so the TypeMap invariant holds.
func (e *Engine) stmt(s ast.Statement) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		e.expr(n.Expr)
	case *ast.BlockStmt:
		for _, inner := range n.Statements {
			e.stmt(inner)
		}
	case *ast.InlineHTMLStmt:
		// raw markup carries no expressions
	case *ast.NamespaceStmt:
		for _, inner := range n.Body {
			e.stmt(inner)
		}
	case *ast.UseStmt:
		// import bookkeeping already happened at parse time
	case *ast.FunctionDeclStmt:
		prev := e.pushFunctionScope()
		for _, p := range n.Params {
			e.bindParam(p)
		}
		for _, inner := range n.Body {
			e.stmt(inner)
		}
		e.popScope(prev)
	case *ast.ClassDeclStmt:
		for _, member := range n.Members {
			e.classMember(member)
		}
	case *ast.IfStmt:
		e.expr(n.Condition)
		e.stmt(n.Then)
		for _, ei := range n.ElseIfs {
			e.expr(ei.Condition)
			e.stmt(ei.Then)
		}
		if n.Else != nil {
			e.stmt(n.Else)
		}
	case *ast.WhileStmt:
		e.expr(n.Condition)
		e.stmt(n.Body)
	case *ast.DoWhileStmt:
		e.stmt(n.Body)
		e.expr(n.Condition)
	case *ast.ForStmt:
		for _, x := range n.Init {
			e.expr(x)
		}
		for _, x := range n.Condition {
			e.expr(x)
		}
		for _, x := range n.Step {
			e.expr(x)
		}
		e.stmt(n.Body)
	case *ast.ForeachStmt:
		e.foreachStmt(n)
	case *ast.SwitchStmt:
		e.expr(n.Subject)
		for _, c := range n.Cases {
			if c.Value != nil {
				e.expr(c.Value)
			}
			for _, inner := range c.Body {
				e.stmt(inner)
			}
		}
	case *ast.TryStmt:
		for _, inner := range n.Body {
			e.stmt(inner)
		}
		for _, c := range n.Catches {
			e.catchClause(c)
		}
		for _, inner := range n.Finally {
			e.stmt(inner)
		}
	case *ast.ReturnStmt:
		if n.Value != nil {
			e.expr(n.Value)
		}
	case *ast.BreakStmt:
		if n.Level != nil {
			e.expr(n.Level)
		}
	case *ast.ContinueStmt:
		if n.Level != nil {
			e.expr(n.Level)
		}
	case *ast.EchoStmt:
		for _, v := range n.Values {
			e.expr(v)
		}
	case *ast.GlobalStmt:
		for _, name := range n.Names {
			if _, ok := e.scope.Lookup(name); !ok {
				e.scope.Set(name, typesystem.Mixed)
			}
		}
	case *ast.StaticVarStmt:
		for _, v := range n.Vars {
			if v.Default != nil {
				e.scope.Set(v.Name, e.expr(v.Default))
			} else {
				e.scope.Set(v.Name, typesystem.Mixed)
			}
		}
	case *ast.GotoStmt, *ast.LabelStmt:
		// no expressions to walk
	case *ast.AttributedStmt:
		e.stmt(n.Inner)
	case *ast.TopLevelConstStmt:
		for _, item := range n.Items {
			if item.Value != nil {
				e.expr(item.Value)
			}
		}
	}
}

// classMember dispatches over the Node union ClassDeclStmt.Members holds
// (MethodDecl | PropertyDecl | ClassConstDecl | UseTraitDecl |
// EnumCaseDecl).
func (e *Engine) classMember(member ast.Node) {
	switch n := member.(type) {
	case *ast.MethodDecl:
		if n.Body == nil {
			return // abstract/interface signature, nothing to walk
		}
		prev := e.pushFunctionScope()
		for _, p := range n.Params {
			e.bindParam(p)
		}
		for _, inner := range n.Body {
			e.stmt(inner)
		}
		e.popScope(prev)
	case *ast.PropertyDecl:
		for _, item := range n.Items {
			if item.Value != nil {
				e.expr(item.Value)
			}
		}
	case *ast.ClassConstDecl:
		for _, item := range n.Items {
			if item.Value != nil {
				e.expr(item.Value)
			}
		}
	case *ast.UseTraitDecl:
		// adaptation blocks (insteadof/as) rename/resolve methods, a
		// semantic-validation concern places out of scope
	case *ast.EnumCaseDecl:
		if n.Value != nil {
			e.expr(n.Value)
		}
	}
}

func (e *Engine) foreachStmt(n *ast.ForeachStmt) {
	subjectType := e.expr(n.Subject)
	var keyType, valueType typesystem.Type = typesystem.Mixed, typesystem.Mixed
	if arr, ok := subjectType.(typesystem.TypedArrayType); ok {
		keyType, valueType = arr.Key, arr.Value
	}
	if n.Key != nil {
		e.bindLoopVar(n.Key, keyType)
	}
	e.bindLoopVar(n.Value, valueType)
	e.stmt(n.Body)
}

// bindLoopVar records target's inferred type and, if it is a simple
// variable, binds it in scope for the loop body — the same "simple
// variable" special case describes for assignment.
func (e *Engine) bindLoopVar(target ast.Expression, t typesystem.Type) {
	if target == nil {
		return
	}
	if v, ok := target.(*ast.Variable); ok {
		e.scope.Set(v.Name, t)
		e.types[v.ID()] = t
		return
	}
	e.expr(target)
}

func (e *Engine) catchClause(c ast.CatchClause) {
	var members []typesystem.Type
	for _, name := range c.Types {
		if name.IsResolved() {
			members = append(members, typesystem.NamedType{Name: name.Resolved})
		}
	}
	if c.Varname != "" {
		e.scope.Set(c.Varname, typesystem.SimplifyUnion(members))
	}
	for _, inner := range c.Body {
		e.stmt(inner)
	}
}
