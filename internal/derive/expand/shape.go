package expand

import (
	"fmt"
	"go/types"
	"strings"
)

// Shape describes how a declaration or variant stores its data: named struct
// fields, a positional wrapped type, or nothing at all. A shape knows how
// many values its constructor consumes and how to build the constructing
// expression.
type Shape interface {
	// NumFields returns the number of values the constructor consumes.
	NumFields() int

	// Constructor builds the expression constructing a value at path from
	// the bound value expressions. Passing any other number of values than
	// NumFields is a bug in the calling strategy and panics.
	Constructor(path string, values ...string) string
}

// bindValues enforces the arity contract shared by every shape.
func bindValues(shape Shape, values []string) []string {
	if len(values) != shape.NumFields() {
		panic(fmt.Sprintf("expand: constructor for %d field(s) called with %d value(s)", shape.NumFields(), len(values)))
	}
	return values
}

// NamedFields is the shape of a struct with identified fields. With no
// fields it constructs the empty composite literal.
type NamedFields struct {
	Fields []*types.Var
}

func (s NamedFields) NumFields() int { return len(s.Fields) }

func (s NamedFields) Constructor(path string, values ...string) string {
	values = bindValues(s, values)

	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('{')
	for i, field := range s.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.Name())
		b.WriteString(": ")
		b.WriteString(values[i])
	}
	b.WriteByte('}')
	return b.String()
}

// PositionalFields is the shape of a defined type wrapping its underlying
// type. Construction is a conversion expression.
type PositionalFields struct {
	Types []types.Type
}

func (s PositionalFields) NumFields() int { return len(s.Types) }

func (s PositionalFields) Constructor(path string, values ...string) string {
	values = bindValues(s, values)
	return path + "(" + strings.Join(values, ", ") + ")"
}

// UnitFields is the shape of a value referred to by its bare path, such as
// an enum constant.
type UnitFields struct{}

func (UnitFields) NumFields() int { return 0 }

func (s UnitFields) Constructor(path string, values ...string) string {
	bindValues(s, values)
	return path
}
