package typesystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gophp-lang/corephp/internal/typesystem"
)

func TestSimplifyUnionCollapsesSingleton(t *testing.T) {
	got := typesystem.SimplifyUnion([]typesystem.Type{typesystem.Integer})
	assert.Equal(t, typesystem.Integer, got)
}

func TestSimplifyUnionOfNothingIsMixed(t *testing.T) {
	got := typesystem.SimplifyUnion(nil)
	assert.Equal(t, typesystem.Mixed, got)
}

func TestSimplifyUnionDeduplicatesStructurally(t *testing.T) {
	got := typesystem.SimplifyUnion([]typesystem.Type{
		typesystem.Integer, typesystem.String, typesystem.Integer,
	})
	union, ok := got.(typesystem.UnionType)
	assert.True(t, ok)
	assert.Len(t, union.Members, 2)
}

func TestSimplifyUnionFlattensNestedUnions(t *testing.T) {
	nested := typesystem.UnionType{Members: []typesystem.Type{typesystem.Integer, typesystem.Float}}
	got := typesystem.SimplifyUnion([]typesystem.Type{nested, typesystem.String})
	union, ok := got.(typesystem.UnionType)
	assert.True(t, ok)
	assert.Len(t, union.Members, 3)
}

func TestNamedAndTypedArrayStringForms(t *testing.T) {
	arr := typesystem.TypedArrayType{Key: typesystem.Integer, Value: typesystem.NamedType{Name: "Widget"}}
	assert.Equal(t, "array<int, Widget>", arr.String())
}

func TestConstExprTypeStringForms(t *testing.T) {
	i := typesystem.ConstExprType{ConstKind: typesystem.ConstInt, IntValue: 1}
	assert.Equal(t, "const(int)", i.String())

	s := typesystem.ConstExprType{ConstKind: typesystem.ConstString, StrValue: "hi"}
	assert.Equal(t, "const(hi)", s.String())
}

func TestLiteralStringTypeDistinctFromPlainString(t *testing.T) {
	lit := typesystem.LiteralStringType{Value: "x"}
	assert.Equal(t, typesystem.KLiteralString, lit.Kind())
	assert.NotEqual(t, typesystem.KString, lit.Kind())
}
