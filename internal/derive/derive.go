package deriveinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"go/types"
	"io"
	"path/filepath"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
	"github.com/ErmitaVulpe/derive-more/internal/derive/expand"
	"github.com/ErmitaVulpe/derive-more/internal/derive/parse"
)

// Debug, when non-nil, receives a dump of every type declaration built
// during [DeriveMore.Build]. The CLI points it at stderr for -debug.
var Debug io.Writer

var debugSpew = spew.ConfigState{
	Indent:                  "\t",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DeriveMore generates parser code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type DeriveMore struct {
	p   *parse.Parser
	reg *parse.Registry
	buf *bytes.Buffer
	w   *codefmt.Writer

	impls []expand.Impl
}

// New creates a new [DeriveMore] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*DeriveMore, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &DeriveMore{
		p:   parser,
		reg: parse.NewRegistry(),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Pkg returns the target package.
func (dm *DeriveMore) Pkg() *packages.Package { return dm.p.Pkg() }

// GeneratedParser returns the name of the parser generated for t in this
// run, so parsers can delegate to each other before any of them exists.
func (dm *DeriveMore) GeneratedParser(t types.Type) (string, bool) {
	return dm.reg.GeneratedParser(t)
}

// Build prepares code generation by parsing directives and expanding their
// target declarations. All potential errors are returned by this method. It
// must be called before [Generate].
func (dm *DeriveMore) Build() error {
	if err := dm.p.ParseDirectives(dm.reg); err != nil {
		return err
	}
	if dm.reg.Len() == 0 {
		// No directives found
		return nil
	}

	var errs error
	for d := range dm.reg.All() {
		decl, err := dm.p.BuildTypeDecl(d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if Debug != nil {
			fmt.Fprintf(Debug, "derivemore: %s\n", decl.FuncName)
			debugSpew.Fdump(Debug, decl)
		}

		impl, err := expand.Expand(dm, decl)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		dm.impls = append(dm.impls, impl)
	}

	return errs
}

// Generate generates parser code for the package. It must be called after
// [Build] succeeds. It returns nil when the package has neither directives
// nor tagged files, so no output file should be written.
func (dm *DeriveMore) Generate() []byte {
	if len(dm.impls) == 0 && len(dm.p.DeriveGoFiles()) == 0 {
		return nil
	}

	dm.writeParserCode()
	dm.mergeCode()
	return dm.frameCode()
}

// writeParserCode writes function declaration code for the expanded parsers
// in the order their directives appear in the source.
func (dm *DeriveMore) writeParserCode() {
	if len(dm.impls) == 0 {
		return
	}

	dm.w.Printf("// derivemore: generated parsers\n\n")

	impls := slices.Clone(dm.impls)
	slices.SortFunc(impls, func(a, b expand.Impl) int {
		if a.Pos() < b.Pos() {
			return -1
		}
		if a.Pos() > b.Pos() {
			return 1
		}
		return 0
	})

	for _, impl := range impls {
		impl.WriteImpl(dm.w)
		dm.w.Printf("\n")
	}
}

// mergeCode copies non-directive code from the source files tagged with
// "//go:build derivemore". It erases directive assignments to remove any
// references to the derivemore package.
func (dm *DeriveMore) mergeCode() {
	directives := make(map[token.Pos]bool)
	for d := range dm.reg.All() {
		directives[d.Pos()] = true
	}

	for _, file := range dm.p.DeriveGoFiles() {
		name := filepath.Base(dm.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(dm.buf, "// %s:\n\n", name)
				first = false
			}

			// Erase directive assignments
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-directive values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						// Enum consts may not have values
						names = append(names, spec.Names[i])
						continue
					}

					if !directives[spec.Values[i].Pos()] {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == 0 {
					// Input:  var ( a = derivemore.FromStr[A]() )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( a, b = derivemore.FromStr[A](), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(dm.w, decl)

			// Write rewritten declaration code
			printer.Fprint(dm.buf, dm.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(dm.buf, "\n\n")
		}
	}
}

func (dm *DeriveMore) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !derivemore\n")
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n", parse.ModulePath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", dm.p.Pkg().Name)

	if len(dm.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range dm.w.Imports() {
			// Check for remaining directive import
			if imp.Path() == parse.ModulePath {
				fmt.Println("derivemore import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, dm.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
