// Package parse discovers derive directives in a package and turns their
// targets into declarations ready for expansion.
//
// Directives come in two surfaces. A var directive assigns the result of
// calling [derivemore.FromStr] to the variable naming the parse function to
// generate, and lives in a file constrained by the "derivemore" build tag. A
// doc directive is a "//derivemore:fromstr" comment on a type declaration
// anywhere in the package, naming the generated function after the type.
package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ModulePath is the import path user code pulls directives from.
const ModulePath = "github.com/ErmitaVulpe/derive-more"

func IsDeriveImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ModulePath
}

// Parser inspects an AST of the underlying package to collect derive
// directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the directive function name if the call expression
// calls into this module. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsDeriveImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a directive with the given
// name.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}
	return calleeName == name
}

// DeriveGoFiles returns the Go files that have a "//go:build derivemore"
// constraint. Var directives may only live in such files, which keeps them
// out of regular builds.
func (p *Parser) DeriveGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildDerivemore(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildDerivemore checks if the file has a "//go:build derivemore"
// constraint.
func hasGoBuildDerivemore(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == "derivemore" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}
