package testdata

//derivemore:fromstr
type Callback struct {
	F func() // want `field type func\(\) cannot be parsed from text`
}
