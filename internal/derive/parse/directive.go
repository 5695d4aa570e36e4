package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
	"github.com/ErmitaVulpe/derive-more/internal/lcs"
)

// docPrefix starts every doc directive comment.
const docPrefix = "//derivemore:"

// varDirectives and docDirectives are the known directive names per surface.
var (
	varDirectives = []string{"FromStr"}
	docDirectives = []string{"fromstr"}
)

// Directive is one parsed derive directive, not yet checked against its
// target's shape.
type Directive struct {
	// Target is the type to generate a parse function for.
	Target types.Type

	// FuncName names the generated function: the assigned variable of a var
	// directive, or Parse<Type> for a doc directive.
	FuncName string

	// FromDoc marks a doc directive. Only doc directives may also emit the
	// UnmarshalText companion.
	FromDoc bool

	pkg *packages.Package
	pos token.Pos
	end token.Pos
}

// Pkg returns the package where the directive is written. Directive
// implements [codefmt.Pkger] by this method.
func (d Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the position of the directive. Directive implements
// [codefmt.Poser] by this method.
func (d Directive) Pos() token.Pos { return d.pos }

// End returns the end position of the directive.
func (d Directive) End() token.Pos { return d.end }

// ParseDirectives collects every directive of the package into reg. Parse
// and registration errors are joined so a run reports as many problems as
// possible at once.
func (p *Parser) ParseDirectives(reg *Registry) error {
	var errs error

	for _, file := range p.DeriveGoFiles() {
		for d, err := range p.parseVarDirectives(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			errs = errors.Join(errs, reg.Add(d))
		}
	}

	for _, file := range p.Pkg().Syntax {
		for d, err := range p.parseDocDirectives(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			errs = errors.Join(errs, reg.Add(d))
		}
	}

	return errs
}

// parseVarDirectives parses and yields the var directives in the given
// file, which must carry the derivemore build tag.
func (p *Parser) parseVarDirectives(file *ast.File) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				if len(val.Names) != len(val.Values) {
					// A directive returns exactly one value, so an unpacking
					// assignment cannot hold one.
					continue
				}

				for i := range val.Values {
					call, ok := val.Values[i].(*ast.CallExpr)
					if !ok {
						continue
					}

					name, ok := p.GetDirective(call)
					if !ok {
						continue
					}

					if name != "FromStr" {
						if !yield(Directive{}, p.errUnknownDirective(call, name, varDirectives)) {
							return
						}
						continue
					}

					d, err := p.parseFromStrVar(val.Names[i], call)
					if !yield(d, err) {
						return
					}
				}
			}
		}
	}
}

// parseFromStrVar parses one "var Name = derivemore.FromStr[T]()" directive.
// The target type is taken from the declared variable's signature, so type
// inference and aliases are already resolved.
func (p *Parser) parseFromStrVar(id *ast.Ident, call *ast.CallExpr) (Directive, error) {
	if id.Name == "_" {
		return Directive{}, codefmt.Errorf(p, id, "cannot assign directive to blank identifier")
	}

	obj := p.Pkg().TypesInfo.ObjectOf(id)
	sig, ok := obj.Type().(*types.Signature)
	if !ok || sig.Results().Len() != 2 {
		// The declared variable does not hold the directive's parse
		// function, for example due to an unresolved type error.
		return Directive{}, codefmt.Errorf(p, call, "cannot resolve directive target of %s", id.Name)
	}

	return Directive{
		Target:   sig.Results().At(0).Type(),
		FuncName: id.Name,
		pkg:      p.Pkg(),
		pos:      call.Pos(),
		end:      call.End(),
	}, nil
}

// DocDirectiveNames returns the names of the parse functions that the doc
// directives in the given files declare. It needs only syntax, so it works
// on packages that still have type errors.
func DocDirectiveNames(files []*ast.File) []string {
	var names []string
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if _, ok := directiveComment(doc); ok {
					names = append(names, "Parse"+ts.Name.Name)
				}
			}
		}
	}
	return names
}

// parseDocDirectives parses and yields the doc directives in the given file.
func (p *Parser) parseDocDirectives(file *ast.File) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		for _, decl := range file.Decls {
			gen, isGen := decl.(*ast.GenDecl)
			if !isGen || gen.Tok != token.TYPE {
				// Directives on anything but a type declaration are
				// mistakes worth reporting, not ignoring.
				if c, ok := directiveComment(declDoc(decl)); ok {
					if !yield(Directive{}, codefmt.Errorf(p, c, "directive must be on a type declaration")) {
						return
					}
				}
				continue
			}

			if c, ok := directiveComment(gen.Doc); ok && len(gen.Specs) > 1 {
				if !yield(Directive{}, codefmt.Errorf(p, c, "directive on a grouped declaration must be on the individual type")) {
					return
				}
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				c, ok := directiveComment(doc)
				if !ok {
					continue
				}

				d, err := p.parseDocDirective(ts, c)
				if !yield(d, err) {
					return
				}
			}
		}
	}
}

// parseDocDirective parses one "//derivemore:fromstr" comment on a type
// declaration.
func (p *Parser) parseDocDirective(ts *ast.TypeSpec, c *ast.Comment) (Directive, error) {
	rest := strings.TrimPrefix(c.Text, docPrefix)
	name, args, _ := strings.Cut(rest, " ")

	if name != "fromstr" {
		return Directive{}, p.errUnknownDirective(c, name, docDirectives)
	}
	if strings.TrimSpace(args) != "" {
		return Directive{}, codefmt.Errorf(p, c, "directive fromstr takes no arguments")
	}

	obj := p.Pkg().TypesInfo.Defs[ts.Name]
	if obj == nil {
		return Directive{}, codefmt.Errorf(p, ts, "cannot resolve type %s", ts.Name.Name)
	}

	return Directive{
		Target:   obj.Type(),
		FuncName: "Parse" + ts.Name.Name,
		FromDoc:  true,
		pkg:      p.Pkg(),
		pos:      c.Pos(),
		end:      c.End(),
	}, nil
}

// declDoc returns the doc comment group of any declaration kind.
func declDoc(decl ast.Decl) *ast.CommentGroup {
	switch decl := decl.(type) {
	case *ast.GenDecl:
		return decl.Doc
	case *ast.FuncDecl:
		return decl.Doc
	}
	return nil
}

// directiveComment returns the first comment of the group starting with the
// directive prefix.
func directiveComment(doc *ast.CommentGroup) (*ast.Comment, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, docPrefix) {
			return c, true
		}
	}
	return nil, false
}

// errUnknownDirective reports an unknown directive name, suggesting the
// closest known one when the shared affixes cover enough of it.
func (p *Parser) errUnknownDirective(at codefmt.Poser, name string, known []string) error {
	if suggestion, ok := suggestDirective(name, known); ok {
		return codefmt.Errorf(p, at, "unknown directive %q\n\tdid you mean %q?", name, suggestion)
	}
	return codefmt.Errorf(p, at, "unknown directive %q", name)
}

func suggestDirective(name string, known []string) (string, bool) {
	var best string
	var bestN int
	for _, k := range known {
		pre := len(lcs.CommonPrefix([]string{name, k}))
		suf := len(lcs.CommonSuffix([]string{name, k}))
		if n := max(pre, suf); n > bestN {
			best, bestN = k, n
		}
	}

	if best != "" && bestN*2 >= len(best) {
		return best, true
	}
	return "", false
}
