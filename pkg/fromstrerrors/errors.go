// Package fromstrerrors provides the error values reported by parse functions
// that derivemore generates. Generated code is the only intended producer;
// user code consumes them through the standard errors helpers.
package fromstrerrors

import (
	"errors"
	"fmt"
)

// ErrNoMatch indicates that input text matched no value of the target type.
// Every error produced by New matches it:
//
//	dir, err := ParseDirection("nowhere")
//	if errors.Is(err, fromstrerrors.ErrNoMatch) {
//		...
//	}
var ErrNoMatch = errors.New("value not recognized")

// New returns the error a generated parse function reports when its input
// matches no known value of the named type.
func New(typeName string) error {
	return &Error{TypeName: typeName}
}

// Error reports that input text did not match any value of TypeName. It
// carries the type name only, not the offending input.
type Error struct {
	// TypeName is the name of the type the text was parsed as.
	TypeName string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.TypeName, ErrNoMatch)
}

// Is reports whether target is ErrNoMatch so that errors.Is recognizes
// generated parse failures without exposing any wrapping structure.
func (e *Error) Is(target error) bool {
	return target == ErrNoMatch
}
