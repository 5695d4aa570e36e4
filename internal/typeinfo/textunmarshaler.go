package typeinfo

import (
	"go/token"
	"go/types"
)

// textUnmarshaler mirrors encoding.TextUnmarshaler structurally. Checking
// against a synthesized interface works even when the inspected package never
// imports encoding.
var textUnmarshaler = func() *types.Interface {
	text := types.NewVar(token.NoPos, nil, "text", types.NewSlice(types.Typ[types.Byte]))
	err := types.NewVar(token.NoPos, nil, "", types.Universe.Lookup("error").Type())
	sig := types.NewSignatureType(nil, nil, nil, types.NewTuple(text), types.NewTuple(err), false)
	fn := types.NewFunc(token.NoPos, nil, "UnmarshalText", sig)

	iface := types.NewInterfaceType([]*types.Func{fn}, nil)
	iface.Complete()
	return iface
}()

// ImplementsTextUnmarshaler reports whether t implements
// encoding.TextUnmarshaler. When only the pointer type *t implements it,
// viaPtr is true.
func ImplementsTextUnmarshaler(t types.Type) (viaPtr, ok bool) {
	if types.Implements(t, textUnmarshaler) {
		return false, true
	}
	if types.Implements(types.NewPointer(t), textUnmarshaler) {
		return true, true
	}
	return false, false
}
