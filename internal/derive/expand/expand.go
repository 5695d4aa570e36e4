package expand

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
)

// Resolver supplies package-level context for expansion: the package being
// generated for, and the parse functions generated for other declarations in
// the same run so that a forwarding field can delegate to them.
type Resolver interface {
	codefmt.Pkger

	// GeneratedParser returns the name of the parse function generated in
	// the same run for t, if there is one.
	GeneratedParser(t types.Type) (string, bool)
}

// Impl is one generated implementation: a parse function and, when the
// declaration requests it and the strategy can express it, the UnmarshalText
// companion method.
type Impl interface {
	// Name returns the name of the generated parse function.
	Name() string

	// Pos returns the declaration position, which fixes the output order.
	Pos() token.Pos

	// WriteImpl writes the implementation through w.
	WriteImpl(w *codefmt.Writer)
}

// Expand classifies the body of decl and returns the strategy generating its
// parse function.
//
// A struct is classified by its field count: no fields expands flat with the
// type itself as the only matchable entry, exactly one field forwards to the
// field's text parser, and anything else is rejected. An enum expands flat
// over its variants, each of which must carry no fields. Union-like bodies
// are always rejected.
func Expand(r Resolver, decl *TypeDecl) (Impl, error) {
	switch body := decl.Body.(type) {
	case *StructBody:
		switch body.Shape.NumFields() {
		case 0:
			return newFlat(r, decl, []either{{decl: decl}})
		case 1:
			return newForward(r, decl, body)
		default:
			return nil, codefmt.Errorf(r, body, "struct must have zero or exactly one field")
		}

	case *EnumBody:
		entries := make([]either, len(body.Variants))
		for i := range body.Variants {
			entries[i] = either{variant: &body.Variants[i]}
		}
		return newFlat(r, decl, entries)

	case *UnionBody:
		return nil, codefmt.Errorf(r, body, "unions are not supported")
	}

	panic(fmt.Sprintf("expand: unknown body %T", decl.Body))
}

// selfExpr renders the target type as it appears in the generated source:
// the declared name with its own type parameters for a generic definition,
// or the possibly instantiated type itself otherwise.
func selfExpr(w *codefmt.Writer, decl *TypeDecl) string {
	if decl.TypeParams == nil || decl.TypeParams.Len() == 0 {
		return w.Sprintf("%t", decl.Type)
	}
	return decl.TypeName + typeArgsExpr(decl)
}

// typeArgsExpr renders the type argument list binding the declaration's own
// type parameters, such as "[T]". Empty for non-generic declarations.
func typeArgsExpr(decl *TypeDecl) string {
	if decl.TypeParams == nil || decl.TypeParams.Len() == 0 {
		return ""
	}

	names := make([]string, decl.TypeParams.Len())
	for i := range names {
		names[i] = decl.TypeParams.At(i).Obj().Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// typeParamsSig renders the type parameter list of the generated function.
// extra, when non-empty, is appended as an additional parameter declaration.
func typeParamsSig(w *codefmt.Writer, decl *TypeDecl, extra string) string {
	if (decl.TypeParams == nil || decl.TypeParams.Len() == 0) && extra == "" {
		return ""
	}

	var parts []string
	if decl.TypeParams != nil {
		for i := 0; i < decl.TypeParams.Len(); i++ {
			tp := decl.TypeParams.At(i)
			parts = append(parts, tp.Obj().Name()+" "+constraintExpr(w, tp.Constraint()))
		}
	}
	if extra != "" {
		parts = append(parts, extra)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// constraintExpr renders a type parameter constraint, preferring "any" over
// the spelled-out empty interface.
func constraintExpr(w *codefmt.Writer, c types.Type) string {
	if iface, ok := c.(*types.Interface); ok && iface.Empty() {
		return "any"
	}
	return w.Sprintf("%t", c)
}

// reserveTypeParams keeps the declaration's type parameter names out of the
// writer's namespace so generated locals cannot shadow them.
func reserveTypeParams(w *codefmt.Writer, decl *TypeDecl) {
	if decl.TypeParams == nil {
		return
	}
	for i := 0; i < decl.TypeParams.Len(); i++ {
		w.Reserve(decl.TypeParams.At(i).Obj().Name())
	}
}
