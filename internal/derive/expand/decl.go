// Package expand generates text-parser implementations from the shape of a
// type declaration.
//
// A declaration arrives as a [TypeDecl] with exactly one body kind. [Expand]
// classifies the body and picks one of two strategies: a single-field struct
// delegates parsing to its field's own text parser (forward expansion), while
// a fieldless struct or an enum of fieldless variants becomes a
// case-insensitive keyword matcher (flat expansion). Every other shape is
// rejected with a position-anchored diagnostic.
package expand

import (
	"go/token"
	"go/types"
)

// TypeDecl describes one type declaration a text parser is derived for. The
// parse package builds it; expansion consumes it within a single call and
// never mutates it.
type TypeDecl struct {
	// TypeName is the declared identifier. Keyword matching and the
	// no-match error report this name, without type arguments.
	TypeName string

	// FuncName is the name of the parse function to generate.
	FuncName string

	// Type is the target type: a named type, or an instantiation when a var
	// directive names one.
	Type types.Type

	// TypeParams carries the type parameters when the target is a generic
	// definition. Nil for concrete and instantiated targets.
	TypeParams *types.TypeParamList

	// Body is the single body kind of the declaration.
	Body Body

	// WantMethod requests the UnmarshalText companion method. The strategy
	// may still withhold it when the method cannot be expressed.
	WantMethod bool

	// DeclPos and DeclEnd anchor diagnostics at the declaration.
	DeclPos token.Pos
	DeclEnd token.Pos
}

func (d *TypeDecl) Pos() token.Pos { return d.DeclPos }
func (d *TypeDecl) End() token.Pos { return d.DeclEnd }

// Body is the body kind of a type declaration: exactly one of [StructBody],
// [EnumBody], or [UnionBody].
type Body interface {
	body()
}

// StructBody is a struct-like body carrying one fields shape.
type StructBody struct {
	// Shape is the fields shape of the struct.
	Shape Shape

	// FieldsPos anchors diagnostics at the field list.
	FieldsPos token.Pos
}

func (*StructBody) body()            {}
func (b *StructBody) Pos() token.Pos { return b.FieldsPos }

// EnumBody is an enumeration body: a fixed set of matchable variants.
type EnumBody struct {
	Variants []Variant
}

func (*EnumBody) body() {}

// UnionBody is an opaque union-like body. It only exists to be rejected.
type UnionBody struct {
	// TermPos anchors diagnostics at the union-like construct.
	TermPos token.Pos
}

func (*UnionBody) body()            {}
func (b *UnionBody) Pos() token.Pos { return b.TermPos }

// Variant is one matchable member of an enum body.
type Variant struct {
	// Name is the identifier the matcher recognizes.
	Name string

	// Path is the constructor path: the constant name, or the literal path
	// of an implementation type such as "Click" or "&Click".
	Path string

	// Shape is the variant's fields shape.
	Shape Shape

	// NamePos anchors diagnostics at the variant.
	NamePos token.Pos
}

func (v *Variant) Pos() token.Pos { return v.NamePos }
