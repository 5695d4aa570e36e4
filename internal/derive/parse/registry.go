package parse

import (
	"go/types"
	"iter"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/ErmitaVulpe/derive-more/internal/codefmt"
)

// Registry collects directives in their discovery order, keyed by the
// canonical string of their target type so each type is derived at most
// once. It also resolves the generated parser names that forwarding fields
// delegate to.
type Registry struct {
	m *linkedhashmap.Map
}

func NewRegistry() *Registry {
	return &Registry{m: linkedhashmap.New()}
}

// key canonicalizes a target type. A generic definition renders with its
// parameter list, an instantiation with its arguments, so the two never
// collide.
func key(t types.Type) string {
	return types.TypeString(types.Unalias(t), nil)
}

// Add registers the directive, rejecting a second directive for the same
// target.
func (r *Registry) Add(d Directive) error {
	k := key(d.Target)
	if prev, ok := r.m.Get(k); ok {
		return codefmt.Errorf(d, d, "duplicate derive for %t\n\tprevious directive at %b", d.Target, prev.(Directive))
	}
	r.m.Put(k, d)
	return nil
}

// Len returns the number of registered directives.
func (r *Registry) Len() int {
	return r.m.Size()
}

// All yields the registered directives in discovery order.
func (r *Registry) All() iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		it := r.m.Iterator()
		for it.Next() {
			if !yield(it.Value().(Directive)) {
				return
			}
		}
	}
}

// GeneratedParser returns the parse function generated in this run for t. An
// instantiation of a derived generic definition resolves to that definition's
// function with explicit type arguments.
func (r *Registry) GeneratedParser(t types.Type) (string, bool) {
	if v, ok := r.m.Get(key(t)); ok {
		d := v.(Directive)
		if isGenericDef(d.Target) {
			// The bare generic name cannot be called without arguments.
			return "", false
		}
		return d.FuncName, true
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeArgs().Len() == 0 {
		return "", false
	}

	v, ok := r.m.Get(key(named.Origin()))
	if !ok {
		return "", false
	}
	d := v.(Directive)
	if !isGenericDef(d.Target) {
		return "", false
	}

	args := make([]string, named.TypeArgs().Len())
	for i := range args {
		args[i] = codefmt.FormatType(d, named.TypeArgs().At(i))
	}
	return d.FuncName + "[" + strings.Join(args, ", ") + "]", true
}

// isGenericDef reports whether t is an uninstantiated generic definition.
func isGenericDef(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	return ok && named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0
}
