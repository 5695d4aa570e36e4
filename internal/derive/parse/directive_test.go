package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarDirective(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"derive.go": `//go:build derivemore

package p

import "github.com/ErmitaVulpe/derive-more"

var ParseDirection = derivemore.FromStr[Direction]()
`,
		"types.go": `package p

type Direction int
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)

	ds := directives(reg)
	require.Len(t, ds, 1)
	require.Equal(t, "ParseDirection", ds[0].FuncName)
	require.False(t, ds[0].FromDoc)
	require.Equal(t, "example.com/p.Direction", ds[0].Target.String())
}

func TestVarDirectiveInstantiated(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"derive.go": `//go:build derivemore

package p

import "github.com/ErmitaVulpe/derive-more"

var ParseIntBox = derivemore.FromStr[Box[int]]()
`,
		"types.go": `package p

type Box[T any] struct{ Value T }
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)

	ds := directives(reg)
	require.Len(t, ds, 1)
	require.Equal(t, "ParseIntBox", ds[0].FuncName)
	require.Equal(t, "example.com/p.Box[int]", ds[0].Target.String())
}

func TestVarDirectiveMultiAssign(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"derive.go": `//go:build derivemore

package p

import "github.com/ErmitaVulpe/derive-more"

var ParseA, ParseB = derivemore.FromStr[A](), derivemore.FromStr[B]()
`,
		"types.go": `package p

type A int

type B string
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)

	ds := directives(reg)
	require.Len(t, ds, 2)
	require.Equal(t, "ParseA", ds[0].FuncName)
	require.Equal(t, "example.com/p.A", ds[0].Target.String())
	require.Equal(t, "ParseB", ds[1].FuncName)
	require.Equal(t, "example.com/p.B", ds[1].Target.String())
}

func TestVarDirectiveBlank(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"derive.go": `//go:build derivemore

package p

import "github.com/ErmitaVulpe/derive-more"

var _ = derivemore.FromStr[Direction]()
`,
		"types.go": `package p

type Direction int
`,
	})

	_, err := collect(t, p)
	require.ErrorContains(t, err, "cannot assign directive to blank identifier")
}

func TestVarDirectiveUntaggedFileIgnored(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"plain.go": `package p

import "github.com/ErmitaVulpe/derive-more"

type Direction int

var ParseDirection = derivemore.FromStr[Direction]()
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)
	require.Equal(t, 0, reg.Len())
}

func TestDocDirective(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstr
type Direction int
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)

	ds := directives(reg)
	require.Len(t, ds, 1)
	require.Equal(t, "ParseDirection", ds[0].FuncName)
	require.True(t, ds[0].FromDoc)
	require.Equal(t, "example.com/p.Direction", ds[0].Target.String())

	pos := p.Pkg().Fset.Position(ds[0].Pos())
	require.Equal(t, 3, pos.Line)
}

func TestDocDirectiveParenSingle(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstr
type (
	Direction int
)
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)

	ds := directives(reg)
	require.Len(t, ds, 1)
	require.Equal(t, "ParseDirection", ds[0].FuncName)
}

func TestDocDirectiveGrouped(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstr
type (
	A int
	B int
)
`,
	})

	_, err := collect(t, p)
	require.ErrorContains(t, err, "directive on a grouped declaration must be on the individual type")
}

func TestDocDirectiveInsideGroup(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

type (
	//derivemore:fromstr
	A int

	B int
)
`,
	})

	reg, err := collect(t, p)
	require.NoError(t, err)

	ds := directives(reg)
	require.Len(t, ds, 1)
	require.Equal(t, "ParseA", ds[0].FuncName)
}

func TestDocDirectiveUnknown(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstring
type Direction int
`,
	})

	_, err := collect(t, p)
	require.ErrorContains(t, err, `unknown directive "fromstring"`)
	require.ErrorContains(t, err, `did you mean "fromstr"?`)
}

func TestDocDirectiveArgs(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstr lax
type Direction int
`,
	})

	_, err := collect(t, p)
	require.ErrorContains(t, err, "directive fromstr takes no arguments")
}

func TestDocDirectiveOnFunc(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstr
func Direction() {}
`,
	})

	_, err := collect(t, p)
	require.ErrorContains(t, err, "directive must be on a type declaration")
}

func TestDocDirectiveNames(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"types.go": `package p

//derivemore:fromstr
type Direction int

//derivemore:fromstring
type Typo int

type Plain int
`,
	})

	// A misspelled directive still reserves its name; the real diagnostic
	// comes from ParseDirectives.
	names := DocDirectiveNames(p.Pkg().Syntax)
	require.Equal(t, []string{"ParseDirection", "ParseTypo"}, names)
}

func TestDuplicateDirective(t *testing.T) {
	p := loadPackage(t, map[string]string{
		"derive.go": `//go:build derivemore

package p

import "github.com/ErmitaVulpe/derive-more"

var ParseDirection = derivemore.FromStr[Direction]()
`,
		"types.go": `package p

//derivemore:fromstr
type Direction int
`,
	})

	_, err := collect(t, p)
	require.ErrorContains(t, err, "duplicate derive for Direction")
	require.ErrorContains(t, err, "previous directive at")
}
