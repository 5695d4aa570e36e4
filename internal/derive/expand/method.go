package expand

import (
	"unicode"
	"unicode/utf8"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
)

// writeMethod writes the UnmarshalText companion method, which delegates to
// the generated parse function and assigns through the receiver. The method
// gets its own namespace since it opens a new function scope.
func writeMethod(w *codefmt.Writer, decl *TypeDecl) {
	w = w.WithNS(codefmt.NewNS(w.Pkg().Types.Scope()))
	reserveTypeParams(w, decl)

	recv := w.Name(receiverName(decl.TypeName))
	text := w.Name("text")
	v := w.Name("v")
	err := w.Name("err")

	w.Printf("\n")
	w.Printf("// UnmarshalText implements encoding.TextUnmarshaler.\n")
	w.Printf("func (%s *%s) UnmarshalText(%s []byte) error {\n", recv, selfExpr(w, decl), text)
	w.Printf("%s, %s := %s%s(string(%s))\n", v, err, decl.FuncName, typeArgsExpr(decl), text)
	w.Printf("if %s != nil {\n", err)
	w.Printf("return %s\n", err)
	w.Printf("}\n")
	w.Printf("*%s = %s\n", recv, v)
	w.Printf("return nil\n")
	w.Printf("}\n")
}

// receiverName suggests a receiver name from the first letter of the type
// name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}
