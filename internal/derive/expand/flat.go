package expand

import (
	"go/token"
	"strings"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
)

// fromStrErrorsPath is the package carrying the runtime error type no-match
// results are reported with.
const fromStrErrorsPath = "github.com/ErmitaVulpe/derive-more/pkg/fromstrerrors"

// flat is the keyword-matcher strategy. Every entry is matched against the
// input by name and constructed without data. Matching ignores case, except
// between entries whose names differ only by case: those are grouped under
// their shared lowercased keyword and told apart by exact spelling.
type flat struct {
	decl    *TypeDecl
	entries []either

	// similar counts entries per lowercased name. A count above one marks a
	// collision group.
	similar map[string]int
}

// newFlat validates that every entry is fieldless and indexes the entry
// names by their lowercased form.
func newFlat(r Resolver, decl *TypeDecl, entries []either) (*flat, error) {
	similar := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.shape().NumFields() > 0 {
			return nil, codefmt.Errorf(r, e, "enum variants must have no fields")
		}
		similar[strings.ToLower(e.name())]++
	}
	return &flat{decl: decl, entries: entries, similar: similar}, nil
}

func (x *flat) Name() string   { return x.decl.FuncName }
func (x *flat) Pos() token.Pos { return x.decl.DeclPos }

func (x *flat) WriteImpl(w *codefmt.Writer) {
	w = w.WithNS(codefmt.NewNS(w.Pkg().Types.Scope()))
	reserveTypeParams(w, x.decl)

	self := selfExpr(w, x.decl)
	s := w.Name("s")

	w.Printf("// %s returns the %s whose name matches %s, ignoring case.\n", x.decl.FuncName, x.decl.TypeName, s)
	w.Printf("func %s%s(%s string) (%s, error) {\n", x.decl.FuncName, typeParamsSig(w, x.decl, ""), s, self)

	if len(x.entries) > 0 {
		stringsName := w.Import("strings", "strings")
		w.Printf("switch %s.ToLower(%s) {\n", stringsName, s)

		written := make(map[string]bool, len(x.similar))
		for _, e := range x.entries {
			low := strings.ToLower(e.name())
			if written[low] {
				continue
			}
			written[low] = true

			w.Printf("case %q:\n", low)
			if x.similar[low] > 1 {
				// Names that collapse to the same keyword are told apart by
				// exact spelling. No default: a miss falls out of both
				// switches into the no-match return.
				w.Printf("switch %s {\n", s)
				for _, g := range x.entries {
					if strings.ToLower(g.name()) != low {
						continue
					}
					w.Printf("case %q:\n", g.name())
					w.Printf("return %s, nil\n", g.constructor(self))
				}
				w.Printf("}\n")
			} else {
				w.Printf("return %s, nil\n", e.constructor(self))
			}
		}
		w.Printf("}\n")
	}

	zero := w.Name("zero")
	errsName := w.Import(fromStrErrorsPath, "fromstrerrors")
	w.Printf("var %s %s\n", zero, self)
	w.Printf("return %s, %s.New(%q)\n", zero, errsName, x.decl.TypeName)
	w.Printf("}\n")

	if x.decl.WantMethod {
		writeMethod(w, x.decl)
	}
}
