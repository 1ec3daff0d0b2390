package ast

// ExpressionStmt wraps a bare expression used as a statement.
type ExpressionStmt struct {
	Base
	Expr Expression
}

func (s *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(s) }
func (s *ExpressionStmt) statementNode()   {}

// BlockStmt is a `{ ... }` brace-delimited statement list.
type BlockStmt struct {
	Base
	Statements []Statement
}

func (s *BlockStmt) Accept(v Visitor) { v.VisitBlockStmt(s) }
func (s *BlockStmt) statementNode()   {}

// InlineHTMLStmt is a run of raw markup outside `<?php ?>` tags.
type InlineHTMLStmt struct {
	Base
	Text []byte
}

func (s *InlineHTMLStmt) Accept(v Visitor) { v.VisitInlineHTMLStmt(s) }
func (s *InlineHTMLStmt) statementNode()   {}

// NamespaceStmt is `namespace Name;` or `namespace Name { ... }`.
type NamespaceStmt struct {
	Base
	Name *Name // nil for the global `namespace;` form
	Body []Statement
	Braced bool
}

func (s *NamespaceStmt) Accept(v Visitor) { v.VisitNamespaceStmt(s) }
func (s *NamespaceStmt) statementNode()   {}

// UseKind distinguishes the three `use` import groups.
type UseKind int

const (
	UseClass UseKind = iota
	UseFunction
	UseConst
)

// UseStmt is a `use Foo\Bar as Baz, ...;` import declaration.
type UseStmt struct {
	Base
	Kind  UseKind
	Items []UseItem
}

func (s *UseStmt) Accept(v Visitor) { v.VisitUseStmt(s) }
func (s *UseStmt) statementNode()   {}

// FunctionDeclStmt is a named top-level/nested function declaration.
type FunctionDeclStmt struct {
	Base
	Name       string
	ByRef      bool
	Params     []Param
	ReturnType *TypeHint
	Body       []Statement
}

func (s *FunctionDeclStmt) Accept(v Visitor) { v.VisitFunctionDeclStmt(s) }
func (s *FunctionDeclStmt) statementNode()   {}

// ClassKind distinguishes class/interface/trait/enum declarations, which
// share most of their member grammar.
type ClassKind int

const (
	ClassOrdinary ClassKind = iota
	ClassAbstract
	ClassFinal
	ClassInterface
	ClassTrait
	ClassEnum
)

// ClassDeclStmt is a class/interface/trait/enum declaration.
type ClassDeclStmt struct {
	Base
	Kind        ClassKind
	Name        string
	Extends     []*Name // single entry for class, multiple for interface extends
	Implements  []*Name
	BackingType *TypeHint // enum only
	Members     []Node    // MethodDecl | PropertyDecl | ClassConstDecl | UseTraitDecl | EnumCaseDecl
}

func (s *ClassDeclStmt) Accept(v Visitor) { v.VisitClassDeclStmt(s) }
func (s *ClassDeclStmt) statementNode()   {}

// MethodDecl is a class/interface/trait method. Body is nil for abstract
// methods and for interface method signatures.
type MethodDecl struct {
	Base
	Name       string
	Visibility string // "public" | "protected" | "private"
	Static     bool
	Abstract   bool
	Final      bool
	ByRef      bool
	Params     []Param
	ReturnType *TypeHint
	Body       []Statement
}

func (s *MethodDecl) Accept(v Visitor) { v.VisitMethodDecl(s) }
func (s *MethodDecl) statementNode()   {}

// PropertyDecl is one `visibility [static] [type] $name = default, ...;`
// declaration group.
type PropertyDecl struct {
	Base
	Visibility string
	Static     bool
	Readonly   bool
	Type       *TypeHint
	Items      []ConstItem // reuse Name/Value shape; Value may be nil
}

func (s *PropertyDecl) Accept(v Visitor) { v.VisitPropertyDecl(s) }
func (s *PropertyDecl) statementNode()   {}

// ClassConstDecl is a `[visibility] const NAME = value, ...;` group.
type ClassConstDecl struct {
	Base
	Visibility string
	Items      []ConstItem
}

func (s *ClassConstDecl) Accept(v Visitor) { v.VisitClassConstDecl(s) }
func (s *ClassConstDecl) statementNode()   {}

// UseTraitDecl is a `use TraitA, TraitB { ... }` clause inside a class body.
type UseTraitDecl struct {
	Base
	Traits      []*Name
	Adaptations []Node // empty when there is no `{ ... }` adaptation block
}

func (s *UseTraitDecl) Accept(v Visitor) { v.VisitUseTraitDecl(s) }
func (s *UseTraitDecl) statementNode()   {}

// EnumCaseDecl is a `case Name = value;` member of an enum body.
type EnumCaseDecl struct {
	Base
	Name  string
	Value Expression
}

func (s *EnumCaseDecl) Accept(v Visitor) { v.VisitEnumCaseDecl(s) }
func (s *EnumCaseDecl) statementNode()   {}

// TopLevelConstStmt is a global `const NAME = value, ...;` declaration.
type TopLevelConstStmt struct {
	Base
	Items []ConstItem
}

func (s *TopLevelConstStmt) Accept(v Visitor) { v.VisitTopLevelConstStmt(s) }
func (s *TopLevelConstStmt) statementNode()   {}

// IfStmt is `if (cond) then [elseif ...] [else ...]`. Alt reports whether
// the source used the alternate colon syntax (`if (...): ... endif;`),
// preserved so a pretty-printer can round-trip it.
type IfStmt struct {
	Base
	Condition Expression
	Then      Statement
	ElseIfs   []ElseIfClause
	Else      Statement // nil if absent
	Alt       bool
}

// ElseIfClause is one `elseif (cond) then` arm.
type ElseIfClause struct {
	Condition Expression
	Then      Statement
}

func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }
func (s *IfStmt) statementNode()   {}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Base
	Condition Expression
	Body      Statement
	Alt       bool
}

func (s *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(s) }
func (s *WhileStmt) statementNode()   {}

// DoWhileStmt is `do body while (cond);`.
type DoWhileStmt struct {
	Base
	Body      Statement
	Condition Expression
}

func (s *DoWhileStmt) Accept(v Visitor) { v.VisitDoWhileStmt(s) }
func (s *DoWhileStmt) statementNode()   {}

// ForStmt is `for (init; cond; step) body`; each clause is a comma
// sequence so every slot is a slice.
type ForStmt struct {
	Base
	Init      []Expression
	Condition []Expression
	Step      []Expression
	Body      Statement
	Alt       bool
}

func (s *ForStmt) Accept(v Visitor) { v.VisitForStmt(s) }
func (s *ForStmt) statementNode()   {}

// ForeachStmt is `foreach (Subject as [Key =>] Value) body`. ValueByRef
// covers `as &$v`; the parser enforces the key/value order invariant
// (a `Key =>` before Value, never the reverse) while building this
// node, so downstream consumers never see a malformed one.
type ForeachStmt struct {
	Base
	Subject    Expression
	Key        Expression // nil if no `Key =>` clause
	Value      Expression
	ValueByRef bool
	Body       Statement
	Alt        bool
}

func (s *ForeachStmt) Accept(v Visitor) { v.VisitForeachStmt(s) }
func (s *ForeachStmt) statementNode()   {}

// SwitchStmt is `switch (Subject) { case ...: ... }`.
type SwitchStmt struct {
	Base
	Subject Expression
	Cases   []SwitchCase
	Alt     bool
}

// SwitchCase is one `case Value:` or `default:` arm; Value is nil for
// the default arm.
type SwitchCase struct {
	Value Expression
	Body  []Statement
}

func (s *SwitchStmt) Accept(v Visitor) { v.VisitSwitchStmt(s) }
func (s *SwitchStmt) statementNode()   {}

// TryStmt is `try { ... } catch (...) { ... } finally { ... }`.
type TryStmt struct {
	Base
	Body    []Statement
	Catches []CatchClause
	Finally []Statement // nil if absent
}

func (s *TryStmt) Accept(v Visitor) { v.VisitTryStmt(s) }
func (s *TryStmt) statementNode()   {}

// ReturnStmt is `return [Value];`.
type ReturnStmt struct {
	Base
	Value Expression // nil for bare `return;`
}

func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }
func (s *ReturnStmt) statementNode()   {}

// BreakStmt is `break [Level];`.
type BreakStmt struct {
	Base
	Level Expression // nil for bare `break;`
}

func (s *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(s) }
func (s *BreakStmt) statementNode()   {}

// ContinueStmt is `continue [Level];`.
type ContinueStmt struct {
	Base
	Level Expression
}

func (s *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(s) }
func (s *ContinueStmt) statementNode()   {}

// EchoStmt is `echo Values, ...;`.
type EchoStmt struct {
	Base
	Values []Expression
}

func (s *EchoStmt) Accept(v Visitor) { v.VisitEchoStmt(s) }
func (s *EchoStmt) statementNode()   {}

// GlobalStmt is `global $a, $b;`.
type GlobalStmt struct {
	Base
	Names []string
}

func (s *GlobalStmt) Accept(v Visitor) { v.VisitGlobalStmt(s) }
func (s *GlobalStmt) statementNode()   {}

// StaticVarStmt is `static $a = 1, $b;` inside a function body.
type StaticVarStmt struct {
	Base
	Vars []StaticVar
}

func (s *StaticVarStmt) Accept(v Visitor) { v.VisitStaticVarStmt(s) }
func (s *StaticVarStmt) statementNode()   {}

// GotoStmt is `goto Label;`.
type GotoStmt struct {
	Base
	Label string
}

func (s *GotoStmt) Accept(v Visitor) { v.VisitGotoStmt(s) }
func (s *GotoStmt) statementNode()   {}

// LabelStmt is `Label:`.
type LabelStmt struct {
	Base
	Name string
}

func (s *LabelStmt) Accept(v Visitor) { v.VisitLabelStmt(s) }
func (s *LabelStmt) statementNode()   {}

// AttributedStmt wraps a declaration preceded by one or more `#[Attr]`
// groups.
type AttributedStmt struct {
	Base
	Inner Statement
}

func (s *AttributedStmt) Accept(v Visitor) { v.VisitAttributedStmt(s) }
func (s *AttributedStmt) statementNode()   {}
