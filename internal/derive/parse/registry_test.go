package parse

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupType(t *testing.T, p *Parser, name string) types.Type {
	t.Helper()

	obj, ok := p.Pkg().Types.Scope().Lookup(name).(*types.TypeName)
	require.True(t, ok, "no type %s in fixture", name)
	return obj.Type()
}

func registryFixture(t *testing.T) *Parser {
	t.Helper()

	return loadPackage(t, map[string]string{
		"types.go": `package p

type Direction int

type DirAlias = Direction

type Box[T any] struct{ Value T }

type Other string
`,
	})
}

func TestRegistryAdd(t *testing.T) {
	p := registryFixture(t)

	reg := NewRegistry()
	require.NoError(t, reg.Add(Directive{Target: lookupType(t, p, "Direction"), FuncName: "ParseDirection", pkg: p.Pkg()}))
	require.NoError(t, reg.Add(Directive{Target: lookupType(t, p, "Other"), FuncName: "ParseOther", pkg: p.Pkg()}))
	require.Equal(t, 2, reg.Len())

	ds := directives(reg)
	require.Len(t, ds, 2)
	require.Equal(t, "ParseDirection", ds[0].FuncName)
	require.Equal(t, "ParseOther", ds[1].FuncName)
}

func TestRegistryDuplicate(t *testing.T) {
	p := registryFixture(t)

	reg := NewRegistry()
	require.NoError(t, reg.Add(Directive{Target: lookupType(t, p, "Direction"), FuncName: "ParseDirection", pkg: p.Pkg()}))

	err := reg.Add(Directive{Target: lookupType(t, p, "Direction"), FuncName: "FromString", pkg: p.Pkg()})
	require.ErrorContains(t, err, "duplicate derive for Direction")
}

func TestRegistryAliasKey(t *testing.T) {
	p := registryFixture(t)

	reg := NewRegistry()
	require.NoError(t, reg.Add(Directive{Target: lookupType(t, p, "Direction"), FuncName: "ParseDirection", pkg: p.Pkg()}))

	name, ok := reg.GeneratedParser(lookupType(t, p, "DirAlias"))
	require.True(t, ok)
	require.Equal(t, "ParseDirection", name)
}

func TestRegistryGeneratedParser(t *testing.T) {
	p := registryFixture(t)

	reg := NewRegistry()
	require.NoError(t, reg.Add(Directive{Target: lookupType(t, p, "Direction"), FuncName: "ParseDirection", pkg: p.Pkg()}))

	name, ok := reg.GeneratedParser(lookupType(t, p, "Direction"))
	require.True(t, ok)
	require.Equal(t, "ParseDirection", name)

	_, ok = reg.GeneratedParser(types.Typ[types.Int])
	require.False(t, ok)

	_, ok = reg.GeneratedParser(lookupType(t, p, "Other"))
	require.False(t, ok)
}

func TestRegistryGeneratedParserInstantiated(t *testing.T) {
	p := registryFixture(t)
	box := lookupType(t, p, "Box")

	reg := NewRegistry()
	require.NoError(t, reg.Add(Directive{Target: box, FuncName: "ParseBox", pkg: p.Pkg()}))

	// The generic definition itself has no usable parser expression.
	_, ok := reg.GeneratedParser(box)
	require.False(t, ok)

	inst, err := types.Instantiate(nil, box, []types.Type{types.Typ[types.Int]}, false)
	require.NoError(t, err)

	name, ok := reg.GeneratedParser(inst)
	require.True(t, ok)
	require.Equal(t, "ParseBox[int]", name)
}

func TestRegistryGeneratedParserExactInstance(t *testing.T) {
	p := registryFixture(t)
	box := lookupType(t, p, "Box")

	inst, err := types.Instantiate(nil, box, []types.Type{types.Typ[types.String]}, false)
	require.NoError(t, err)

	reg := NewRegistry()
	require.NoError(t, reg.Add(Directive{Target: inst, FuncName: "ParseStringBox", pkg: p.Pkg()}))

	name, ok := reg.GeneratedParser(inst)
	require.True(t, ok)
	require.Equal(t, "ParseStringBox", name)
}
