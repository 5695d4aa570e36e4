package parse

import (
	"cmp"
	"go/types"
	"slices"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
	"github.com/ErmitaVulpe/derive-more/internal/derive/expand"
	"github.com/ErmitaVulpe/derive-more/internal/typeinfo"
)

// BuildTypeDecl checks the directive's target and maps its declaration onto
// the expansion model: struct fields stay a struct body, a defined basic
// type becomes an enum of its constants or a wrapper of its underlying type,
// and a method interface becomes an enum of its in-package implementations.
func (p *Parser) BuildTypeDecl(d Directive) (*expand.TypeDecl, error) {
	target := types.Unalias(d.Target)

	named, ok := target.(*types.Named)
	if !ok {
		return nil, codefmt.Errorf(p, d, "cannot derive for %t; target must be a named type", d.Target)
	}
	if named.Obj().Pkg() != p.Pkg().Types {
		return nil, codefmt.Errorf(p, d, "%t must be declared in %s", d.Target, p.Pkg().PkgPath)
	}

	if d.FromDoc {
		if conflict := p.Pkg().Types.Scope().Lookup(d.FuncName); conflict != nil {
			return nil, codefmt.Errorf(p, d, "generated name %s conflicts with %o declared at %b", d.FuncName, conflict, conflict.Pos())
		}
	}

	body, err := p.buildBody(named)
	if err != nil {
		return nil, err
	}

	decl := &expand.TypeDecl{
		TypeName: named.Obj().Name(),
		FuncName: d.FuncName,
		Type:     named,
		Body:     body,
		DeclPos:  d.pos,
		DeclEnd:  d.end,
	}
	if isGenericDef(named) {
		decl.TypeParams = named.TypeParams()
	}

	// Only doc directives emit the companion, and only where a method can
	// exist and none is already written by hand.
	_, isIface := named.Underlying().(*types.Interface)
	if d.FromDoc && !isIface {
		_, declared := typeinfo.TypeOf(named).Method("UnmarshalText")
		decl.WantMethod = !declared
	}

	return decl, nil
}

func (p *Parser) buildBody(named *types.Named) (expand.Body, error) {
	switch u := named.Underlying().(type) {
	case *types.Struct:
		fields := make([]*types.Var, u.NumFields())
		for i := range fields {
			fields[i] = u.Field(i)
		}
		pos := named.Obj().Pos()
		if len(fields) > 0 {
			pos = fields[0].Pos()
		}
		return &expand.StructBody{Shape: expand.NamedFields{Fields: fields}, FieldsPos: pos}, nil

	case *types.Interface:
		if !u.IsMethodSet() {
			// Type-set interfaces carry union terms, not variants.
			return &expand.UnionBody{TermPos: named.Obj().Pos()}, nil
		}
		return p.buildImplEnum(named, u)

	case *types.Basic:
		if variants := p.constVariants(named); len(variants) > 0 {
			return &expand.EnumBody{Variants: variants}, nil
		}
		return &expand.StructBody{
			Shape:     expand.PositionalFields{Types: []types.Type{u}},
			FieldsPos: named.Obj().Pos(),
		}, nil

	default:
		// Slices, maps, pointers, channels, and functions wrap their
		// underlying type. Whether that parses is the expansion's call.
		return &expand.StructBody{
			Shape:     expand.PositionalFields{Types: []types.Type{named.Underlying()}},
			FieldsPos: named.Obj().Pos(),
		}, nil
	}
}

// constVariants collects the package-level constants declared with the exact
// target type, in declaration order.
func (p *Parser) constVariants(named *types.Named) []expand.Variant {
	scope := p.Pkg().Types.Scope()

	var variants []expand.Variant
	for _, name := range scope.Names() {
		con, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(con.Type(), named) {
			continue
		}
		variants = append(variants, expand.Variant{
			Name:    con.Name(),
			Path:    con.Name(),
			Shape:   expand.UnitFields{},
			NamePos: con.Pos(),
		})
	}

	sortVariants(variants)
	return variants
}

// buildImplEnum treats the in-package implementations of a method interface
// as its variants. A pointer-receiver implementation is constructed by
// address.
func (p *Parser) buildImplEnum(named *types.Named, iface *types.Interface) (expand.Body, error) {
	scope := p.Pkg().Types.Scope()

	var variants []expand.Variant
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		t := typeinfo.TypeOf(tn.Type())
		if t.IsInterface() || t.IsGeneric() || !t.IsNamed() {
			continue
		}

		v := expand.Variant{
			Name:    name,
			Path:    name,
			Shape:   implShape(t.Named),
			NamePos: tn.Pos(),
		}
		switch {
		case types.AssertableTo(iface, t.Named):
		case types.AssertableTo(iface, t.Ref().Pointer):
			v.Path = "&" + name
		default:
			continue
		}
		variants = append(variants, v)
	}

	sortVariants(variants)
	return &expand.EnumBody{Variants: variants}, nil
}

// implShape maps an implementation type onto a fields shape. Only fieldless
// shapes survive expansion, but carrying the real shape keeps the diagnostic
// anchored at the offending implementation.
func implShape(named *types.Named) expand.Shape {
	switch u := named.Underlying().(type) {
	case *types.Struct:
		fields := make([]*types.Var, u.NumFields())
		for i := range fields {
			fields[i] = u.Field(i)
		}
		return expand.NamedFields{Fields: fields}
	default:
		return expand.PositionalFields{Types: []types.Type{u}}
	}
}

// sortVariants restores declaration order; package scopes list names
// alphabetically.
func sortVariants(variants []expand.Variant) {
	slices.SortFunc(variants, func(a, b expand.Variant) int {
		return cmp.Compare(a.NamePos, b.NamePos)
	})
}
