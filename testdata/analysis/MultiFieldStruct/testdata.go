package testdata

//derivemore:fromstr
type Pair struct {
	A int // want `struct must have zero or exactly one field`
	B int
}
