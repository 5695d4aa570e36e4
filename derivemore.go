// Package derivemore provides directives for deriving text-parsing code.
//
// Derivemore eliminates the boilerplate of mapping strings onto Go values.
// Mark a type once, and the generator produces a parse function for it along
// with an [encoding.TextUnmarshaler] implementation, so the type plugs into
// flag.TextVar, encoding/json, and everything else that speaks text.
//
// The simplest way to mark a type is the doc directive. It goes on the type
// declaration in a regular file:
//
//	// source:
//	//derivemore:fromstr
//	type Direction int
//
//	const (
//		North Direction = iota
//		South
//		East
//		West
//	)
//
//	// generated: (simplified)
//	func ParseDirection(s string) (Direction, error) {
//		switch strings.ToLower(s) {
//		case "north":
//			return North, nil
//		...
//		}
//		var zero Direction
//		return zero, fromstrerrors.New("Direction")
//	}
//
//	func (d *Direction) UnmarshalText(text []byte) error { ... }
//
// Matching is case-insensitive. When two names collapse to the same
// lowercase keyword, only their exact spellings are accepted, so no input
// ever parses ambiguously.
//
// To pick the generated function's name yourself, use the var directive
// instead. Var directives live in files constrained to the derivemore build
// tag:
//
//	//go:build derivemore
//
//	package compass
//
//	import "github.com/ErmitaVulpe/derive-more"
//
//	var FromString = derivemore.FromStr[Direction]()
//
// The variable holding the directive is rewritten to the actual function
// when derivemore generates code. Unlike the doc directive, the var
// directive derives no UnmarshalText method; the variable's name is the only
// thing it declares. It is also the only way to derive for an instantiated
// generic type, such as FromStr[Box[int]].
//
// After declaring directives, run the derivemore command. It will generate
// derivemore_gen.go for your package:
//
//	go run github.com/ErmitaVulpe/derive-more/cmd/derivemore
//
// # Shapes
//
// What gets generated follows the shape of the marked type:
//
//   - A defined type with constants parses each constant by name.
//   - A struct with exactly one field, or a defined type over a basic type
//     without constants, parses by delegating to the field's own parser and
//     wrapping the result. Delegates are resolved in order: another parser
//     generated in the same run, an UnmarshalText method, a strconv
//     function for basic kinds, or the string itself.
//   - A struct with no fields parses its own type name as the keyword.
//   - An interface with methods parses the names of its in-package
//     implementations.
//
// Structs with two or more fields have no single text form and are
// rejected, as are type-set interfaces.
//
// # Errors
//
// A keyword matcher that finds no match returns an error from
// [github.com/ErmitaVulpe/derive-more/pkg/fromstrerrors] naming the type. A
// delegating parser returns its delegate's error verbatim; derivemore never
// wraps it.
package derivemore

// FromStr declares that a parse function for T should be generated, named
// after the variable holding the directive:
//
//	// source:
//	var ParseDirection = derivemore.FromStr[Direction]()
//
//	// generated: (simplified)
//	func ParseDirection(s string) (Direction, error) { ... }
//
// The directive must be assigned to a package-level variable in a file
// constrained to the derivemore build tag. The generated file carries the
// inverse constraint, so exactly one of the two declarations is in any
// build.
func FromStr[T any]() func(string) (T, error) {
	panic("derivemore: not generated")
}
