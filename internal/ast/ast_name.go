package ast

import "github.com/gophp-lang/corephp/internal/token"

// NameForm distinguishes the three shapes a Name can take.
type NameForm int

const (
	NameResolved NameForm = iota
	NameUnresolved
	NameSpecial
)

// SpecialName enumerates the reserved scope names.
type SpecialName int

const (
	SpecialSelf SpecialName = iota
	SpecialParent
	SpecialStatic
)

func (s SpecialName) String() string {
	switch s {
	case SpecialSelf:
		return "self"
	case SpecialParent:
		return "parent"
	case SpecialStatic:
		return "static"
	default:
		return "?"
	}
}

// ResolutionHint records why a name could not be resolved, so later
// tooling can still render something useful.
type ResolutionHint int

const (
	HintNone ResolutionHint = iota
	HintFunction
	HintConst
	HintClass
)

// Name is a sum type: a resolved fully-qualified
// name, an unresolved symbol with a hint, or a reserved scope name.
type Name struct {
	Base
	form NameForm

	// NameResolved
	Resolved string
	Original string

	// NameUnresolved
	Hint ResolutionHint

	// NameSpecial
	Special SpecialName
}

func (n *Name) Accept(v Visitor)  { v.VisitName(n) }
func (n *Name) expressionNode()   {}

var _ Expression = (*Name)(nil)

// IsResolved reports whether this name carries a resolved fully-qualified
// form.
func (n *Name) IsResolved() bool { return n.form == NameResolved }

// IsSpecial reports whether this is a self/parent/static scope name.
func (n *Name) IsSpecial() bool { return n.form == NameSpecial }

// NewResolvedName builds a Name in its Resolved form.
func NewResolvedName(id uint32, sp token.Span, resolved, original string) *Name {
	return &Name{Base: Base{Id: id, Sp: sp}, form: NameResolved, Resolved: resolved, Original: original}
}

// NewUnresolvedName builds a Name in its Unresolved form.
func NewUnresolvedName(id uint32, sp token.Span, original string, hint ResolutionHint) *Name {
	return &Name{Base: Base{Id: id, Sp: sp}, form: NameUnresolved, Original: original, Hint: hint}
}

// NewSpecialName builds a Name in its Special form (self/parent/static).
func NewSpecialName(id uint32, sp token.Span, kind SpecialName) *Name {
	return &Name{Base: Base{Id: id, Sp: sp}, form: NameSpecial, Special: kind}
}

// FormKind reports which variant of the Name sum this value holds.
func (n *Name) FormKind() NameForm { return n.form }

// String renders the most useful textual form for diagnostics.
func (n *Name) String() string {
	switch n.form {
	case NameResolved:
		return n.Resolved
	case NameUnresolved:
		return n.Original
	case NameSpecial:
		return n.Special.String()
	default:
		return "<name>"
	}
}
