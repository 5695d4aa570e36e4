package testdata

//derivemore:fromstr
type Shape interface{ isShape() }

type Circle struct { // want `enum variants must have no fields`
	Radius float64
}

func (Circle) isShape() {}
