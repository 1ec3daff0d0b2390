package analyzer

import (
	"strings"

	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/typesystem"
)

// typeFromHint converts a parsed source-level type annotation into the
// inferred typesystem.Type used for parameter/return typing.
//
// The source language's scalar type names (int, string, ...) parse as
// ordinary identifiers and go through the same name-resolution path as
// class names, so they arrive here as a Resolved Name
// whose Original field keeps the exact keyword spelling; that's what
// this function switches on rather than the namespaced Resolved form.
func typeFromHint(h *ast.TypeHint) typesystem.Type {
	if h == nil {
		return typesystem.Mixed
	}
	if len(h.Union) > 0 {
		members := make([]typesystem.Type, len(h.Union))
		for i, m := range h.Union {
			members[i] = typeFromHint(m)
		}
		return typesystem.SimplifyUnion(members)
	}
	if len(h.Intersection) > 0 {
		// The Type sum in has no intersection-type member;
		// Object is the closest available approximation for "some
		// instance satisfying every named interface".
		return typesystem.Object
	}
	if h.Name == nil {
		return typesystem.Mixed
	}
	if h.Name.IsSpecial() {
		return typesystem.Object
	}
	switch strings.ToLower(h.Name.Original) {
	case "int", "integer":
		return typesystem.Integer
	case "float", "double":
		return typesystem.Float
	case "string":
		return typesystem.String
	case "bool", "boolean":
		return typesystem.Boolean
	case "true":
		return typesystem.True
	case "false":
		return typesystem.False
	case "void":
		return typesystem.Void
	case "never":
		return typesystem.Never
	case "mixed":
		return typesystem.Mixed
	case "object":
		return typesystem.Object
	case "array":
		return typesystem.TypedArrayType{Key: typesystem.Mixed, Value: typesystem.Mixed}
	case "callable", "iterable", "self", "static", "parent":
		// None of these map onto a distinct Type sum member; // closes the sum without a Callable/Iterable/late-static-bound
		// variant, so Mixed is the honest answer rather than inventing one.
		return typesystem.Mixed
	default:
		if h.Name.IsResolved() {
			return typesystem.NamedType{Name: h.Name.Resolved}
		}
		return typesystem.Mixed
	}
}
