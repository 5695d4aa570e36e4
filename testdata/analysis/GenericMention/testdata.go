package testdata

//derivemore:fromstr
type Wrap[T any] struct {
	Values []T // want `field type \[\]T depends on type parameters`
}
