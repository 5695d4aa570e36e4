package expand

import "go/token"

// either treats a fieldless struct and an enum variant uniformly as one
// matchable entry of a flat expansion. Exactly one side is set: a fieldless
// struct contributes itself as its only entry, an enum contributes one entry
// per variant.
type either struct {
	decl    *TypeDecl
	variant *Variant
}

// name returns the keyword the entry is matched by. For a struct entry this
// is the type's own name.
func (e either) name() string {
	if e.variant != nil {
		return e.variant.Name
	}
	return e.decl.TypeName
}

// shape returns the entry's fields shape.
func (e either) shape() Shape {
	if e.variant != nil {
		return e.variant.Shape
	}
	return e.decl.Body.(*StructBody).Shape
}

// constructor builds the expression constructing the entry's value. selfExpr
// is the rendered target type, used as the constructor path of a struct
// entry.
func (e either) constructor(selfExpr string) string {
	if e.variant != nil {
		return e.variant.Shape.Constructor(e.variant.Path)
	}
	return e.decl.Body.(*StructBody).Shape.Constructor(selfExpr)
}

// Pos anchors diagnostics at the entry.
func (e either) Pos() token.Pos {
	if e.variant != nil {
		return e.variant.NamePos
	}
	return e.decl.DeclPos
}
