package expand

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

func field(name string, typ types.Type) *types.Var {
	return types.NewVar(token.NoPos, nil, name, typ)
}

func TestNamedFieldsConstructor(t *testing.T) {
	empty := NamedFields{}
	require.Equal(t, "Ping{}", empty.Constructor("Ping"))

	one := NamedFields{Fields: []*types.Var{field("Value", types.Typ[types.Int])}}
	require.Equal(t, "Box{Value: v}", one.Constructor("Box", "v"))

	two := NamedFields{Fields: []*types.Var{
		field("A", types.Typ[types.Int]),
		field("B", types.Typ[types.Int]),
	}}
	require.Equal(t, "Pair{A: x, B: y}", two.Constructor("Pair", "x", "y"))
}

func TestPositionalFieldsConstructor(t *testing.T) {
	one := PositionalFields{Types: []types.Type{types.Typ[types.Int64]}}
	require.Equal(t, "UserID(v)", one.Constructor("UserID", "v"))
}

func TestUnitFieldsConstructor(t *testing.T) {
	require.Equal(t, "North", UnitFields{}.Constructor("North"))
}

func TestConstructorArity(t *testing.T) {
	one := NamedFields{Fields: []*types.Var{field("Value", types.Typ[types.Int])}}
	require.PanicsWithValue(t,
		"expand: constructor for 1 field(s) called with 0 value(s)",
		func() { one.Constructor("Box") })
	require.PanicsWithValue(t,
		"expand: constructor for 1 field(s) called with 2 value(s)",
		func() { one.Constructor("Box", "x", "y") })

	require.PanicsWithValue(t,
		"expand: constructor for 0 field(s) called with 1 value(s)",
		func() { UnitFields{}.Constructor("North", "x") })

	positional := PositionalFields{Types: []types.Type{types.Typ[types.Int]}}
	require.PanicsWithValue(t,
		"expand: constructor for 1 field(s) called with 0 value(s)",
		func() { positional.Constructor("UserID") })
}
