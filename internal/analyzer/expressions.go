package analyzer

import (
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/typesystem"
)

// expr walks node, recording its inferred type into the TypeMap and
// returning it — the single entry point every statement and expression
// production calls instead of duplicating the record-then-return pair.
//
// Variable is special-cased ahead of the dispatch switch: a scope miss
// must leave the node out of the TypeMap entirely, which the generic record-after-compute shape
// below cannot express.
func (e *Engine) expr(node ast.Expression) typesystem.Type {
	if node == nil {
		return typesystem.Mixed
	}
	if v, ok := node.(*ast.Variable); ok {
		if t, ok := e.scope.Lookup(v.Name); ok {
			e.types[v.ID()] = t
			return t
		}
		return typesystem.Mixed
	}
	t := e.computeExprType(node)
	e.types[node.ID()] = t
	return t
}

func (e *Engine) computeExprType(node ast.Expression) typesystem.Type {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return typesystem.Integer
	case *ast.FloatLiteral:
		return typesystem.Float
	case *ast.StringLiteral:
		return typesystem.LiteralStringType{Value: string(n.Value)}
	case *ast.BoolLiteral:
		if n.Value {
			return typesystem.True
		}
		return typesystem.False
	case *ast.NullLiteral:
		// 's Type sum has no Null member; Mixed is the safe
		// top type for a value the sum cannot name precisely.
		return typesystem.Mixed
	case *ast.MagicConstant:
		if n.Kind == ast.MagicLine {
			return typesystem.Integer
		}
		return typesystem.String

	case *ast.Name:
		// A bare Name used standalone (instanceof RHS, a call target
		// visited for its own sake) carries no inferred value type on
		// its own; callReturnType/newTargetType special-case it from
		// the enclosing CallExpr/NewExpr instead.
		return typesystem.Mixed

	case *ast.ParenthesizedExpr:
		return e.expr(n.Inner)

	case *ast.VariableVariable:
		e.expr(n.Name)
		return typesystem.Mixed

	case *ast.AssignExpr:
		rhs := e.expr(n.Right)
		if v, ok := n.Left.(*ast.Variable); ok {
			e.scope.Set(v.Name, rhs)
			e.types[v.ID()] = rhs
		} else {
			e.expr(n.Left)
		}
		return rhs

	case *ast.ReferenceExpr:
		return e.expr(n.Right)

	case *ast.BinaryExpr:
		left := e.expr(n.Left)
		right := e.expr(n.Right)
		return binaryType(n.Family, left, right)

	case *ast.UnaryExpr:
		operand := e.expr(n.Operand)
		return unaryType(n.Op, operand)

	case *ast.TernaryExpr:
		e.expr(n.Condition)
		var thenType typesystem.Type = typesystem.Mixed
		if n.Then != nil {
			thenType = e.expr(n.Then)
		}
		elseType := e.expr(n.Else)
		return typesystem.SimplifyUnion([]typesystem.Type{thenType, elseType})

	case *ast.ShortTernaryExpr:
		cond := e.expr(n.Condition)
		elseType := e.expr(n.Else)
		return typesystem.SimplifyUnion([]typesystem.Type{cond, elseType})

	case *ast.InstanceofExpr:
		e.expr(n.Left)
		e.expr(n.Right)
		return typesystem.Boolean

	case *ast.CastExpr:
		e.expr(n.Operand)
		return castType(n.Kind)

	case *ast.ArrayExpr:
		return e.arrayType(n)

	case *ast.IndexExpr:
		targetType := e.expr(n.Target)
		if n.Index != nil {
			e.expr(n.Index)
		}
		if arr, ok := targetType.(typesystem.TypedArrayType); ok {
			return arr.Value
		}
		return typesystem.Mixed

	case *ast.PropertyAccessExpr:
		e.expr(n.Target)
		if n.Property != nil {
			e.expr(n.Property)
		}
		// Member resolution against a class's declared property types is
		// full semantic validation, out of scope here.
		return typesystem.Mixed

	case *ast.StaticAccessExpr:
		e.expr(n.Target)
		if n.Member != nil {
			e.expr(n.Member)
		}
		if n.Kind == ast.StaticClassFetch {
			if name, ok := unwrapParens(n.Target).(*ast.Name); ok && name.IsResolved() {
				return typesystem.LiteralStringType{Value: name.Resolved}
			}
			return typesystem.String
		}
		return typesystem.Mixed

	case *ast.CallExpr:
		e.expr(n.Target)
		for _, a := range n.Args {
			e.expr(a.Value)
		}
		return e.callReturnType(n.Target)

	case *ast.FunctionClosureCreationExpr:
		e.expr(n.Target)
		return typesystem.Object

	case *ast.NewExpr:
		targetType := e.expr(n.Target)
		for _, a := range n.Args {
			e.expr(a.Value)
		}
		return e.newTargetType(n.Target, targetType)

	case *ast.CloneExpr:
		return e.expr(n.Operand)

	case *ast.ThrowExpr:
		e.expr(n.Value)
		return typesystem.Never

	case *ast.YieldExpr:
		if n.Key != nil {
			e.expr(n.Key)
		}
		if n.Value != nil {
			e.expr(n.Value)
		}
		return typesystem.Mixed

	case *ast.MatchExpr:
		return e.matchType(n)

	case *ast.ControlExpr:
		for _, a := range n.Args {
			e.expr(a)
		}
		return controlType(n.Kind)

	case *ast.IncludeExpr:
		e.expr(n.Path)
		return typesystem.Mixed

	case *ast.ClosureExpr:
		return e.closureType(n)

	case *ast.ArrowFunctionExpr:
		return e.arrowFunctionType(n)

	case *ast.InterpolatedStringExpr:
		for _, part := range n.Parts {
			e.expr(part)
		}
		return typesystem.String

	case *ast.ShellExecExpr:
		for _, part := range n.Parts {
			e.expr(part)
		}
		return typesystem.String

	case *ast.AttributedClosureExpr:
		return e.expr(n.Inner)

	case *ast.Missing:
		return typesystem.Missing

	default:
		return typesystem.Mixed
	}
}

// unwrapParens peels ParenthesizedExpr wrappers so call/new target
// matching sees through `(strlen)(...)`-shaped code (// "Parenthesized(e) → recurse on e", generalized to the new-target rule
// too).
func unwrapParens(e ast.Expression) ast.Expression {
	for {
		p, ok := e.(*ast.ParenthesizedExpr)
		if !ok || p.Inner == nil {
			return e
		}
		e = p.Inner
	}
}

// callReturnType implements "Function call".
func (e *Engine) callReturnType(target ast.Expression) typesystem.Type {
	switch t := unwrapParens(target).(type) {
	case *ast.Name:
		if t.IsResolved() && e.index != nil {
			if fn, ok := e.index.GetFunction(t.Resolved); ok {
				return fn.ReturnType
			}
		}
		return typesystem.Mixed
	case *ast.ClosureExpr:
		if t.ReturnType != nil {
			return typeFromHint(t.ReturnType)
		}
		return typesystem.Mixed
	case *ast.StringLiteral:
		val := string(t.Value)
		if strings.Contains(val, "::") {
			// Method-reference callable strings ("Cls::m") are left as
			// an open question in — returns Mixed until a
			// design decision resolves them. todo: resolve against the
			// named class's method table once one exists.
			return typesystem.Mixed
		}
		if e.index != nil {
			if fn, ok := e.index.GetFunction(val); ok {
				return fn.ReturnType
			}
		}
		return typesystem.Mixed
	default:
		return typesystem.Mixed
	}
}

// newTargetType implements "new".
func (e *Engine) newTargetType(target ast.Expression, targetType typesystem.Type) typesystem.Type {
	if name, ok := unwrapParens(target).(*ast.Name); ok && name.IsResolved() {
		return typesystem.NamedType{Name: name.Resolved}
	}
	if lit, ok := targetType.(typesystem.LiteralStringType); ok && e.index != nil {
		if cls, ok := e.index.GetClass(lit.Value); ok {
			return typesystem.NamedType{Name: cls.Name}
		}
	}
	return typesystem.Object
}

// arrayType implements "Array literals". A positional list
// (no item carries an explicit key) yields TypedArray(Integer,
// union(values)); otherwise every element contributes a key (its own
// type if explicit, Integer if positional) and TypedArray(union(keys),
// union(values)) is produced.
func (e *Engine) arrayType(n *ast.ArrayExpr) typesystem.Type {
	var keys, values []typesystem.Type
	positional := true
	for _, item := range n.Items {
		if item.Value == nil {
			continue // skipped hole in a list-destructuring pattern
		}
		values = append(values, e.expr(item.Value))
		if item.Key != nil {
			positional = false
			keys = append(keys, e.expr(item.Key))
		} else {
			keys = append(keys, typesystem.Integer)
		}
	}
	if positional {
		return typesystem.TypedArrayType{Key: typesystem.Integer, Value: typesystem.SimplifyUnion(values)}
	}
	return typesystem.TypedArrayType{Key: typesystem.SimplifyUnion(keys), Value: typesystem.SimplifyUnion(values)}
}

func (e *Engine) matchType(n *ast.MatchExpr) typesystem.Type {
	e.expr(n.Subject)
	var results []typesystem.Type
	for _, arm := range n.Arms {
		for _, cond := range arm.Conditions {
			e.expr(cond)
		}
		results = append(results, e.expr(arm.Result))
	}
	return typesystem.SimplifyUnion(results)
}

// closureType implements "Function bodies" for an anonymous
// `function (...) use (...) { ... }`: a fresh root scope pre-populated
// with the captured `use` bindings (looked up, by value, in the scope
// active where the closure is created) plus its own parameters.
func (e *Engine) closureType(n *ast.ClosureExpr) typesystem.Type {
	captured := make(map[string]typesystem.Type, len(n.Uses))
	for _, u := range n.Uses {
		if t, ok := e.scope.Lookup(u.Name); ok {
			captured[u.Name] = t
		} else {
			captured[u.Name] = typesystem.Mixed
		}
	}
	prev := e.pushFunctionScope()
	for name, t := range captured {
		e.scope.Set(name, t)
	}
	for _, p := range n.Params {
		e.bindParam(p)
	}
	for _, stmt := range n.Body {
		e.stmt(stmt)
	}
	e.popScope(prev)
	return typesystem.Object
}

// arrowFunctionType implements the arrow-function variant: it implicitly
// captures its enclosing scope by value rather than requiring a `use`
// clause, so its scope's outer link is the enclosing scope itself.
func (e *Engine) arrowFunctionType(n *ast.ArrowFunctionExpr) typesystem.Type {
	prev := e.scope
	e.scope = newScope(prev)
	for _, p := range n.Params {
		e.bindParam(p)
	}
	e.expr(n.Body)
	e.scope = prev
	return typesystem.Object
}

func binaryType(family ast.OperatorFamily, left, right typesystem.Type) typesystem.Type {
	switch family {
	case ast.FamilyConcat:
		return typesystem.String
	case ast.FamilyBitwise:
		return typesystem.Integer
	case ast.FamilyLogical, ast.FamilyComparison:
		return typesystem.Boolean
	case ast.FamilyCoalesce:
		return typesystem.SimplifyUnion([]typesystem.Type{left, right})
	case ast.FamilyArithmetic:
		if left.Kind() == typesystem.KFloat || right.Kind() == typesystem.KFloat {
			return typesystem.Float
		}
		if left.Kind() == typesystem.KInteger && right.Kind() == typesystem.KInteger {
			return typesystem.Integer
		}
		return typesystem.Mixed
	default:
		return typesystem.Mixed
	}
}

func unaryType(op string, operand typesystem.Type) typesystem.Type {
	switch op {
	case "!":
		return typesystem.Boolean
	case "~":
		return typesystem.Integer
	case "@":
		return operand
	case "-", "+", "++", "--":
		if operand.Kind() == typesystem.KFloat {
			return typesystem.Float
		}
		if operand.Kind() == typesystem.KInteger {
			return typesystem.Integer
		}
		return typesystem.Mixed
	default:
		return typesystem.Mixed
	}
}

func castType(kind ast.CastKind) typesystem.Type {
	switch kind {
	case ast.CastInt:
		return typesystem.Integer
	case ast.CastFloat:
		return typesystem.Float
	case ast.CastString:
		return typesystem.String
	case ast.CastArray:
		return typesystem.TypedArrayType{Key: typesystem.Mixed, Value: typesystem.Mixed}
	case ast.CastBool:
		return typesystem.Boolean
	case ast.CastObject:
		return typesystem.Object
	default: // CastUnset
		return typesystem.Mixed
	}
}

func controlType(kind ast.ControlKind) typesystem.Type {
	switch kind {
	case ast.CtlEval:
		return typesystem.Mixed
	case ast.CtlEmpty, ast.CtlIsset:
		return typesystem.Boolean
	case ast.CtlUnset:
		return typesystem.Void
	case ast.CtlDie, ast.CtlExit:
		return typesystem.Never
	case ast.CtlPrint:
		// Observed source irregularity kept intentionally:
		// print is typed as a literal-propagating ConstExpr(1), not
		// plain Integer.
		return typesystem.ConstExprType{ConstKind: typesystem.ConstInt, IntValue: 1}
	default:
		return typesystem.Mixed
	}
}
