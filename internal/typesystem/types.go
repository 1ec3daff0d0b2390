// Package typesystem defines the closed Type sum the type engine assigns
// to every AST node. Unlike a Hindley-Milner engine with type variables,
// unification, and substitution, this is a flat structural lattice with
// no unification step: generic instantiation and full semantic
// validation are out of scope, so there is nothing here for
// Unify/Subst/TVar to do.
package typesystem

import "sort"

// Type is implemented by every member of the sum. Kind distinguishes the
// variant for switches that don't want a type assertion per case.
type Type interface {
	Kind() Kind
	String() string
}

// Kind tags the Type sum's variants.
type Kind int

const (
	KMixed Kind = iota
	KNever
	KVoid
	KBoolean
	KTrue
	KFalse
	KInteger
	KFloat
	KString
	KLiteralString
	KObject
	KNamed
	KTypedArray
	KUnion
	KConstExpr
	KMissing
)

// simple is every zero-payload variant (Mixed, Never, Void, Boolean,
// True, False, Integer, Float, String, Object, Missing).
type simple struct {
	kind Kind
	name string
}

func (s simple) Kind() Kind    { return s.kind }
func (s simple) String() string { return s.name }

var (
	Mixed   Type = simple{KMixed, "mixed"}
	Never   Type = simple{KNever, "never"}
	Void    Type = simple{KVoid, "void"}
	Boolean Type = simple{KBoolean, "bool"}
	True    Type = simple{KTrue, "true"}
	False   Type = simple{KFalse, "false"}
	Integer Type = simple{KInteger, "int"}
	Float   Type = simple{KFloat, "float"}
	String  Type = simple{KString, "string"}
	Object  Type = simple{KObject, "object"}
	Missing Type = simple{KMissing, "missing"}
)

// LiteralStringType is a string literal's exact content, used to resolve
// callable-string call targets and class names given as strings.
type LiteralStringType struct {
	Value string
}

func (LiteralStringType) Kind() Kind           { return KLiteralString }
func (t LiteralStringType) String() string     { return "string(" + t.Value + ")" }

// NamedType is a resolved class/interface/enum name used as a type.
type NamedType struct {
	Name string
}

func (NamedType) Kind() Kind       { return KNamed }
func (t NamedType) String() string { return t.Name }

// TypedArrayType is `array<Key, Value>`.
type TypedArrayType struct {
	Key   Type
	Value Type
}

func (TypedArrayType) Kind() Kind { return KTypedArray }
func (t TypedArrayType) String() string {
	return "array<" + t.Key.String() + ", " + t.Value.String() + ">"
}

// UnionType is a normalized (deduplicated, non-singleton) set of types.
type UnionType struct {
	Members []Type
}

func (UnionType) Kind() Kind { return KUnion }
func (t UnionType) String() string {
	s := ""
	for i, m := range t.Members {
		if i > 0 {
			s += "|"
		}
		s += m.String()
	}
	return s
}

// ConstKind distinguishes the scalar kinds a ConstExprType can carry.
type ConstKind int

const (
	ConstInt ConstKind = iota
	ConstString
)

// ConstExprType carries a literal constant value through as a type, used
// for the `print` expression's `ConstExpr(Integer(1))` result.
type ConstExprType struct {
	ConstKind ConstKind
	IntValue  int64
	StrValue  string
}

func (ConstExprType) Kind() Kind { return KConstExpr }
func (t ConstExprType) String() string {
	if t.ConstKind == ConstString {
		return "const(" + t.StrValue + ")"
	}
	return "const(int)"
}

// typeKey produces a structural-equality key for deduplication in
// SimplifyUnion; two types with the same key are considered equal.
func typeKey(t Type) string {
	switch v := t.(type) {
	case simple:
		return "s:" + v.name
	case LiteralStringType:
		return "ls:" + v.Value
	case NamedType:
		return "n:" + v.Name
	case TypedArrayType:
		return "a:" + typeKey(v.Key) + ":" + typeKey(v.Value)
	case UnionType:
		keys := make([]string, len(v.Members))
		for i, m := range v.Members {
			keys[i] = typeKey(m)
		}
		sort.Strings(keys)
		out := "u:"
		for _, k := range keys {
			out += k + ","
		}
		return out
	case ConstExprType:
		if v.ConstKind == ConstString {
			return "c:s:" + v.StrValue
		}
		return "c:i"
	default:
		return "?"
	}
}

// SimplifyUnion deduplicates members by structural equality and collapses
// a singleton union to its element.
func SimplifyUnion(members []Type) Type {
	seen := map[string]bool{}
	var flat []Type
	var flatten func(Type)
	flatten = func(t Type) {
		if u, ok := t.(UnionType); ok {
			for _, m := range u.Members {
				flatten(m)
			}
			return
		}
		key := typeKey(t)
		if seen[key] {
			return
		}
		seen[key] = true
		flat = append(flat, t)
	}
	for _, m := range members {
		flatten(m)
	}
	if len(flat) == 0 {
		return Mixed
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return UnionType{Members: flat}
}
