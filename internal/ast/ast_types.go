package ast

import "github.com/gophp-lang/corephp/internal/token"

// TypeHint is a parsed source-level type annotation (param/return/property
// types), distinct from the inferred analyzer.Type the type engine
// produces.
type TypeHint struct {
	Base
	Nullable     bool
	Name         *Name   // simple / class-name hint
	Union        []*TypeHint
	Intersection []*TypeHint
}

func (t *TypeHint) Accept(v Visitor) { v.VisitTypeHint(t) }

// Param is one function/method/closure parameter.
type Param struct {
	Base
	Name         string
	Type         *TypeHint
	Default      Expression
	ByRef        bool
	Variadic     bool
	PromotedVis  string // "" | "public" | "protected" | "private" (constructor promotion)
	Readonly     bool
}

// Argument is one call-site argument; Name is set for named arguments.
type Argument struct {
	Base
	Name   string
	Value  Expression
	Spread bool
}

// ClosureUse is one entry of a closure's `use (...)` clause.
type ClosureUse struct {
	Name  string
	ByRef bool
}

// ArrayItem is one element of an array/list literal.
type ArrayItem struct {
	Key    Expression // nil for positional items
	Value  Expression
	ByRef  bool
	Spread bool
}

// MatchArm is one `condition(s) => result` arm of a match expression.
type MatchArm struct {
	Conditions []Expression // nil/empty means the default arm
	Result     Expression
}

// CatchClause is one `catch (Type1|Type2 $e) { ... }` clause.
type CatchClause struct {
	Types   []*Name
	Varname string
	Body    []Statement
}

// UseItem is one imported symbol in a `use` statement.
type UseItem struct {
	Name  *Name
	Alias string
}

// ConstItem is one `NAME = value` binding inside a const declaration.
type ConstItem struct {
	Name  string
	Value Expression
}

// StaticVar is one `$name = default` binding inside a `static` statement.
type StaticVar struct {
	Name    string
	Default Expression
}

// EnumCase is one `case Name = value;` inside an enum declaration.
type EnumCase struct {
	Name  string
	Value Expression
}

func zeroSpan() token.Span { return token.Span{} }
