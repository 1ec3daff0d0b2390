package ast

// Two-level family design: each binary/unary
// operator belongs to a family (so tooling can pattern-match by family —
// arithmetic, comparison, ...) while the concrete operator token is kept
// alongside it so operator spans and exact spelling survive.

// OperatorFamily groups related binary operators.
type OperatorFamily int

const (
	FamilyArithmetic OperatorFamily = iota
	FamilyBitwise
	FamilyLogical
	FamilyComparison
	FamilyConcat
	FamilyCoalesce
)

// BinaryExpr is an infix operator expression: Left <op> Right.
type BinaryExpr struct {
	Base
	Family OperatorFamily
	Op     string
	Left   Expression
	Right  Expression
}

func (e *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(e) }
func (e *BinaryExpr) expressionNode()  {}

// AssignExpr is `Left <op>= Right` (plain `=` has Op == "=").
type AssignExpr struct {
	Base
	Op    string
	Left  Expression
	Right Expression
}

func (e *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(e) }
func (e *AssignExpr) expressionNode()  {}

// ReferenceExpr wraps the right-hand side of `X = &Y`.
type ReferenceExpr struct {
	Base
	Right Expression
}

func (e *ReferenceExpr) Accept(v Visitor) { v.VisitReferenceExpr(e) }
func (e *ReferenceExpr) expressionNode()  {}

// UnaryFixity distinguishes prefix from postfix unary operators.
type UnaryFixity int

const (
	Prefix UnaryFixity = iota
	Postfix
)

// UnaryExpr is a prefix (!x, ~x, -x, +x, @x, ++x, --x) or postfix (x++,
// x--) unary operator application.
type UnaryExpr struct {
	Base
	Op      string
	Fixity  UnaryFixity
	Operand Expression
}

func (e *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(e) }
func (e *UnaryExpr) expressionNode()  {}

// TernaryExpr is `cond ? then : else`. Use ShortTernaryExpr for
// `cond ?: else` instead, so the two remain distinguishable at the
// AST level rather than collapsing onto a shared synthesized-Then shape.
type TernaryExpr struct {
	Base
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *TernaryExpr) Accept(v Visitor) { v.VisitTernaryExpr(e) }
func (e *TernaryExpr) expressionNode()  {}

// ShortTernaryExpr is `cond ?: else`.
type ShortTernaryExpr struct {
	Base
	Condition Expression
	Else      Expression
}

func (e *ShortTernaryExpr) Accept(v Visitor) { v.VisitShortTernaryExpr(e) }
func (e *ShortTernaryExpr) expressionNode()  {}

// InstanceofExpr is `Left instanceof Right`.
type InstanceofExpr struct {
	Base
	Left  Expression
	Right Expression
}

func (e *InstanceofExpr) Accept(v Visitor) { v.VisitInstanceofExpr(e) }
func (e *InstanceofExpr) expressionNode()  {}

// CastKind enumerates the source language's cast operators.
type CastKind int

const (
	CastInt CastKind = iota
	CastFloat
	CastString
	CastArray
	CastBool
	CastObject
	CastUnset
)

// CastExpr is `(int) x` and its siblings.
type CastExpr struct {
	Base
	Kind    CastKind
	Operand Expression
}

func (e *CastExpr) Accept(v Visitor) { v.VisitCastExpr(e) }
func (e *CastExpr) expressionNode()  {}

// Literal kinds.

type IntegerLiteral struct {
	Base
	Value int64
}

func (e *IntegerLiteral) Accept(v Visitor) { v.VisitIntegerLiteral(e) }
func (e *IntegerLiteral) expressionNode()  {}

type FloatLiteral struct {
	Base
	Value float64
}

func (e *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(e) }
func (e *FloatLiteral) expressionNode()  {}

type StringLiteral struct {
	Base
	Value []byte // content with quotes already stripped
}

func (e *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(e) }
func (e *StringLiteral) expressionNode()  {}

type BoolLiteral struct {
	Base
	Value bool
}

func (e *BoolLiteral) Accept(v Visitor) { v.VisitBoolLiteral(e) }
func (e *BoolLiteral) expressionNode()  {}

type NullLiteral struct {
	Base
}

func (e *NullLiteral) Accept(v Visitor) { v.VisitNullLiteral(e) }
func (e *NullLiteral) expressionNode()  {}

// MagicConstantKind enumerates __LINE__, __FILE__, etc.
type MagicConstantKind int

const (
	MagicLine MagicConstantKind = iota
	MagicFile
	MagicDir
	MagicFunction
	MagicClass
	MagicMethod
	MagicNamespace
	MagicTrait
)

type MagicConstant struct {
	Base
	Kind MagicConstantKind
}

func (e *MagicConstant) Accept(v Visitor) { v.VisitMagicConstant(e) }
func (e *MagicConstant) expressionNode()  {}

// Variable is a `$name` reference.
type Variable struct {
	Base
	Name string
}

func (e *Variable) Accept(v Visitor) { v.VisitVariable(e) }
func (e *Variable) expressionNode()  {}

// VariableVariable is `$$name` / `${expr}` — a dynamically named variable.
type VariableVariable struct {
	Base
	Name Expression
}

func (e *VariableVariable) Accept(v Visitor) { v.VisitVariableVariable(e) }
func (e *VariableVariable) expressionNode()  {}

// ParenthesizedExpr wraps `(expr)`.
type ParenthesizedExpr struct {
	Base
	Inner Expression
}

func (e *ParenthesizedExpr) Accept(v Visitor) { v.VisitParenthesizedExpr(e) }
func (e *ParenthesizedExpr) expressionNode()  {}

// ArrayExpr is an `array(...)` or short `[...]` literal, and also covers
// `list(...)`/`[...]` destructuring patterns on the left of an assignment
// (IsList distinguishes the two for tooling, though both share this shape).
type ArrayExpr struct {
	Base
	Items  []ArrayItem
	Short  bool
	IsList bool
}

func (e *ArrayExpr) Accept(v Visitor) { v.VisitArrayExpr(e) }
func (e *ArrayExpr) expressionNode()  {}

// IndexExpr is `target[index]`; Index is nil for the append form `target[]`.
type IndexExpr struct {
	Base
	Target Expression
	Index  Expression
}

func (e *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(e) }
func (e *IndexExpr) expressionNode()  {}

// PropertyAccessExpr is `target->prop` / `target?->prop`. Property is
// either an Identifier-shaped Name, a Variable (dynamic property), or a
// braced expression.
type PropertyAccessExpr struct {
	Base
	Target     Expression
	Property   Expression
	NullSafe   bool
}

func (e *PropertyAccessExpr) Accept(v Visitor) { v.VisitPropertyAccessExpr(e) }
func (e *PropertyAccessExpr) expressionNode()  {}

// StaticAccessKind distinguishes the four things that can follow `::`.
type StaticAccessKind int

const (
	StaticProperty StaticAccessKind = iota
	StaticConstOrMethod
	StaticBraced
	StaticClassFetch
)

// StaticAccessExpr is `Target::Member` in its various forms.
type StaticAccessExpr struct {
	Base
	Target Expression // a Name or an arbitrary expression
	Kind   StaticAccessKind
	Member Expression // Variable | Identifier-as-Name | braced expr | nil for StaticClassFetch
}

func (e *StaticAccessExpr) Accept(v Visitor) { v.VisitStaticAccessExpr(e) }
func (e *StaticAccessExpr) expressionNode()  {}

// CallExpr is `target(args...)`.
type CallExpr struct {
	Base
	Target Expression
	Args   []Argument
}

func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }
func (e *CallExpr) expressionNode()  {}

// FunctionClosureCreationExpr is the `target(...)` shorthand for a
// first-class callable.
type FunctionClosureCreationExpr struct {
	Base
	Target Expression
}

func (e *FunctionClosureCreationExpr) Accept(v Visitor) { v.VisitFunctionClosureCreationExpr(e) }
func (e *FunctionClosureCreationExpr) expressionNode()  {}

// NewExpr is `new Target(args...)`.
type NewExpr struct {
	Base
	Target Expression // Name, or an arbitrary expression for `new $class()`
	Args   []Argument
}

func (e *NewExpr) Accept(v Visitor) { v.VisitNewExpr(e) }
func (e *NewExpr) expressionNode()  {}

type CloneExpr struct {
	Base
	Operand Expression
}

func (e *CloneExpr) Accept(v Visitor) { v.VisitCloneExpr(e) }
func (e *CloneExpr) expressionNode()  {}

type ThrowExpr struct {
	Base
	Value Expression
}

func (e *ThrowExpr) Accept(v Visitor) { v.VisitThrowExpr(e) }
func (e *ThrowExpr) expressionNode()  {}

// YieldExpr is `yield`, `yield Value`, `yield Key => Value`, or
// `yield from Value`.
type YieldExpr struct {
	Base
	Key   Expression
	Value Expression
	From  bool
}

func (e *YieldExpr) Accept(v Visitor) { v.VisitYieldExpr(e) }
func (e *YieldExpr) expressionNode()  {}

// MatchExpr is the source language's `match` expression.
type MatchExpr struct {
	Base
	Subject Expression
	Arms    []MatchArm
}

func (e *MatchExpr) Accept(v Visitor) { v.VisitMatchExpr(e) }
func (e *MatchExpr) expressionNode()  {}

// ControlKind enumerates the language-construct expressions this group
// covers: isset/unset/empty/eval/print/die/exit.
type ControlKind int

const (
	CtlIsset ControlKind = iota
	CtlUnset
	CtlEmpty
	CtlEval
	CtlPrint
	CtlDie
	CtlExit
)

// ControlExpr covers isset/unset/empty/eval/print/die/exit, which all
// share the "language construct with parenthesized or bare argument form"
// shape.
type ControlExpr struct {
	Base
	Kind ControlKind
	Args []Expression
}

func (e *ControlExpr) Accept(v Visitor) { v.VisitControlExpr(e) }
func (e *ControlExpr) expressionNode()  {}

// IncludeKind enumerates the include/require family.
type IncludeKind int

const (
	IncludeInclude IncludeKind = iota
	IncludeIncludeOnce
	IncludeRequire
	IncludeRequireOnce
)

type IncludeExpr struct {
	Base
	Kind IncludeKind
	Path Expression
}

func (e *IncludeExpr) Accept(v Visitor) { v.VisitIncludeExpr(e) }
func (e *IncludeExpr) expressionNode()  {}

// ClosureExpr is an anonymous `function (...) use (...) { ... }`.
type ClosureExpr struct {
	Base
	Static     bool
	ByRef      bool
	Params     []Param
	Uses       []ClosureUse
	ReturnType *TypeHint
	Body       []Statement
}

func (e *ClosureExpr) Accept(v Visitor) { v.VisitClosureExpr(e) }
func (e *ClosureExpr) expressionNode()  {}

// ArrowFunctionExpr is `fn (...) => expr`; it implicitly captures its
// enclosing scope by value (no explicit `use` clause).
type ArrowFunctionExpr struct {
	Base
	Static     bool
	ByRef      bool
	Params     []Param
	ReturnType *TypeHint
	Body       Expression
}

func (e *ArrowFunctionExpr) Accept(v Visitor) { v.VisitArrowFunctionExpr(e) }
func (e *ArrowFunctionExpr) expressionNode()  {}

// InterpolatedStringExpr is a double-quoted/heredoc string containing one
// or more `{$expr}` / `$var` / `${expr}` interpolation holes; Parts
// alternates raw StringLiteral fragments and embedded expressions in
// source order.
type InterpolatedStringExpr struct {
	Base
	Parts  []Expression
	Nowdoc bool
}

func (e *InterpolatedStringExpr) Accept(v Visitor) { v.VisitInterpolatedStringExpr(e) }
func (e *InterpolatedStringExpr) expressionNode()  {}

// ShellExecExpr is a backtick `` `cmd` `` expression.
type ShellExecExpr struct {
	Base
	Parts []Expression
}

func (e *ShellExecExpr) Accept(v Visitor) { v.VisitShellExecExpr(e) }
func (e *ShellExecExpr) expressionNode()  {}

// AttributedClosureExpr wraps a closure/arrow-function preceded by one or
// more `#[Attr]` groups.
type AttributedClosureExpr struct {
	Base
	Inner Expression
}

func (e *AttributedClosureExpr) Accept(v Visitor) { v.VisitAttributedClosureExpr(e) }
func (e *AttributedClosureExpr) expressionNode()  {}
