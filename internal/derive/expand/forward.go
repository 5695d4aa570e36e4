package expand

import (
	"fmt"
	"go/token"
	"go/types"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
	"github.com/ErmitaVulpe/derive-more/internal/typeinfo"
)

// forward is the delegation strategy for a struct with exactly one field.
// The input is parsed by the field type's own text parser and the result
// wrapped into the struct. A parse failure returns the delegate's error
// verbatim.
type forward struct {
	decl  *TypeDecl
	shape Shape
	inner types.Type
	del   delegate
}

func newForward(r Resolver, decl *TypeDecl, body *StructBody) (*forward, error) {
	var inner types.Type
	switch shape := body.Shape.(type) {
	case NamedFields:
		inner = shape.Fields[0].Type()
	case PositionalFields:
		inner = shape.Types[0]
	default:
		panic(fmt.Sprintf("expand: shape %T cannot hold a single field", body.Shape))
	}

	del, err := resolveDelegate(r, body, inner)
	if err != nil {
		return nil, err
	}
	return &forward{decl: decl, shape: body.Shape, inner: inner, del: del}, nil
}

// delegate is the mechanism a forward expansion parses the inner value with.
type delegate interface {
	// writeParse writes the statements parsing s into a fresh variable,
	// returning zero and the untouched parse error on failure. It returns
	// the expression of the parsed value, converted to the field type if the
	// shape needs that.
	writeParse(w *codefmt.Writer, x *forward, s, self string) string
}

// resolveDelegate picks how the single field's type is parsed from text. A
// field whose type is exactly one of the declaration's type parameters is
// parsed through an extra pointer-constrained type parameter. A concrete
// field type resolves, in order, to a parse function generated in the same
// run, to its own UnmarshalText, or to the strconv parser of its basic kind.
func resolveDelegate(r Resolver, body *StructBody, inner types.Type) (delegate, error) {
	if tp, ok := types.Unalias(inner).(*types.TypeParam); ok {
		return &typeParamDelegate{tparam: tp}, nil
	}
	if typeinfo.TypeOf(inner).IsGeneric() {
		return nil, codefmt.Errorf(r, body, "field type %t depends on type parameters", inner)
	}

	if fn, ok := r.GeneratedParser(inner); ok {
		return sameRunDelegate{funcName: fn}, nil
	}

	// UnmarshalText on an interface-typed field would be called on a nil
	// value, so interfaces never take this path.
	if _, isIface := inner.Underlying().(*types.Interface); !isIface {
		if _, ok := typeinfo.ImplementsTextUnmarshaler(inner); ok {
			return unmarshalDelegate{}, nil
		}
	}

	if basic, ok := inner.Underlying().(*types.Basic); ok {
		if basic.Kind() == types.String {
			return stringDelegate{}, nil
		}
		if call, ok := strconvCalls[basic.Kind()]; ok {
			return basicDelegate{call: call}, nil
		}
	}

	return nil, codefmt.Errorf(r, body, "field type %t cannot be parsed from text", inner)
}

func (x *forward) Name() string   { return x.decl.FuncName }
func (x *forward) Pos() token.Pos { return x.decl.DeclPos }

func (x *forward) WriteImpl(w *codefmt.Writer) {
	w = w.WithNS(codefmt.NewNS(w.Pkg().Types.Scope()))
	reserveTypeParams(w, x.decl)

	var extra string
	tpd, needsPT := x.del.(*typeParamDelegate)
	if needsPT {
		extra = tpd.paramDecl(w)
	}

	self := selfExpr(w, x.decl)
	s := w.Name("s")

	w.Printf("// %s parses %s as %s.\n", x.decl.FuncName, s, x.decl.TypeName)
	w.Printf("func %s%s(%s string) (%s, error) {\n", x.decl.FuncName, typeParamsSig(w, x.decl, extra), s, self)
	value := x.del.writeParse(w, x, s, self)
	w.Printf("return %s, nil\n", x.shape.Constructor(self, value))
	w.Printf("}\n")

	// The companion cannot be expressed when parsing needs the extra type
	// parameter: a method cannot introduce one.
	if x.decl.WantMethod && !needsPT {
		writeMethod(w, x.decl)
	}
}

// convertExpr converts a parsed value to the field type when they differ. A
// positional shape needs no conversion because its constructor already is
// one.
func (x *forward) convertExpr(w *codefmt.Writer, natural types.Type, value string) string {
	if _, ok := x.shape.(PositionalFields); ok {
		return value
	}
	if types.Identical(natural, x.inner) {
		return value
	}
	return w.Sprintf("%t(%s)", x.inner, value)
}

// writeErrReturn writes the failure branch returning the zero value and the
// delegate's error.
func writeErrReturn(w *codefmt.Writer, self, err string) {
	zero := w.Name("zero")
	w.Printf("var %s %s\n", zero, self)
	w.Printf("return %s, %s\n", zero, err)
}

// strconvCall describes one strconv parser: its name, its arguments after
// the input string, and the type it naturally returns.
type strconvCall struct {
	fn      string
	args    string
	natural types.Type
}

// strconvCalls maps basic kinds to their strconv parser. Sized integer
// parsers take the matching bit size so range errors surface from strconv
// instead of being truncated by a conversion.
var strconvCalls = map[types.BasicKind]strconvCall{
	types.Bool:       {"ParseBool", "", types.Typ[types.Bool]},
	types.Int:        {"Atoi", "", types.Typ[types.Int]},
	types.Int8:       {"ParseInt", "10, 8", types.Typ[types.Int64]},
	types.Int16:      {"ParseInt", "10, 16", types.Typ[types.Int64]},
	types.Int32:      {"ParseInt", "10, 32", types.Typ[types.Int64]},
	types.Int64:      {"ParseInt", "10, 64", types.Typ[types.Int64]},
	types.Uint:       {"ParseUint", "10, 0", types.Typ[types.Uint64]},
	types.Uint8:      {"ParseUint", "10, 8", types.Typ[types.Uint64]},
	types.Uint16:     {"ParseUint", "10, 16", types.Typ[types.Uint64]},
	types.Uint32:     {"ParseUint", "10, 32", types.Typ[types.Uint64]},
	types.Uint64:     {"ParseUint", "10, 64", types.Typ[types.Uint64]},
	types.Uintptr:    {"ParseUint", "10, 0", types.Typ[types.Uint64]},
	types.Float32:    {"ParseFloat", "32", types.Typ[types.Float64]},
	types.Float64:    {"ParseFloat", "64", types.Typ[types.Float64]},
	types.Complex64:  {"ParseComplex", "64", types.Typ[types.Complex128]},
	types.Complex128: {"ParseComplex", "128", types.Typ[types.Complex128]},
}

// basicDelegate parses the field through the strconv function matching its
// basic kind.
type basicDelegate struct {
	call strconvCall
}

func (d basicDelegate) writeParse(w *codefmt.Writer, x *forward, s, self string) string {
	v := w.Name("v")
	err := w.Name("err")

	strconvName := w.Import("strconv", "strconv")
	if d.call.args == "" {
		w.Printf("%s, %s := %s.%s(%s)\n", v, err, strconvName, d.call.fn, s)
	} else {
		w.Printf("%s, %s := %s.%s(%s, %s)\n", v, err, strconvName, d.call.fn, s, d.call.args)
	}
	w.Printf("if %s != nil {\n", err)
	writeErrReturn(w, self, err)
	w.Printf("}\n")

	return x.convertExpr(w, d.call.natural, v)
}

// stringDelegate is the identity parse of a string-kinded field. It cannot
// fail, so no error branch is written.
type stringDelegate struct{}

func (d stringDelegate) writeParse(w *codefmt.Writer, x *forward, s, self string) string {
	return x.convertExpr(w, types.Typ[types.String], s)
}

// sameRunDelegate calls the parse function generated for the field type in
// the same run. funcName may carry explicit type arguments.
type sameRunDelegate struct {
	funcName string
}

func (d sameRunDelegate) writeParse(w *codefmt.Writer, x *forward, s, self string) string {
	v := w.Name("v")
	err := w.Name("err")

	w.Printf("%s, %s := %s(%s)\n", v, err, d.funcName, s)
	w.Printf("if %s != nil {\n", err)
	writeErrReturn(w, self, err)
	w.Printf("}\n")

	return v
}

// unmarshalDelegate parses the field through its own UnmarshalText method.
type unmarshalDelegate struct{}

func (d unmarshalDelegate) writeParse(w *codefmt.Writer, x *forward, s, self string) string {
	v := w.Name("v")
	err := w.Name("err")

	// A pointer-typed field must point at something before unmarshaling
	// into it.
	if ptr, ok := types.Unalias(x.inner).(*types.Pointer); ok {
		w.Printf("%s := new(%t)\n", v, ptr.Elem())
	} else {
		w.Printf("var %s %t\n", v, x.inner)
	}
	w.Printf("if %s := %s.UnmarshalText([]byte(%s)); %s != nil {\n", err, v, s, err)
	writeErrReturn(w, self, err)
	w.Printf("}\n")

	return v
}

// typeParamDelegate parses a field whose type is one of the declaration's
// own type parameters. The generated function takes an extra type parameter
// constrained to the pointer of the field's one, which both proves
// UnmarshalText exists and lets the compiler infer it.
type typeParamDelegate struct {
	tparam *types.TypeParam
	ptName string
}

// paramDecl allocates the extra type parameter and renders its declaration.
func (d *typeParamDelegate) paramDecl(w *codefmt.Writer) string {
	d.ptName = w.Name("PT")
	encodingName := w.Import("encoding", "encoding")
	return fmt.Sprintf("%s interface{ *%s; %s.TextUnmarshaler }", d.ptName, d.tparam.Obj().Name(), encodingName)
}

func (d *typeParamDelegate) writeParse(w *codefmt.Writer, x *forward, s, self string) string {
	v := w.Name("v")
	err := w.Name("err")

	w.Printf("var %s %s\n", v, d.tparam.Obj().Name())
	w.Printf("if %s := %s(&%s).UnmarshalText([]byte(%s)); %s != nil {\n", err, d.ptName, v, s, err)
	writeErrReturn(w, self, err)
	w.Printf("}\n")

	return v
}
