package testdata

//derivemore:fromstr
type ID interface{ ~int | ~string } // want `unions are not supported`
