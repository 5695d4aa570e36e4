package main

import (
	"fmt"

	"example.com/CrossPackageField/lib"
)

//derivemore:fromstr
type Label struct{ Tag lib.Tag }

func main() {
	l, _ := ParseLabel("hello")
	fmt.Println(l.Tag)
}
