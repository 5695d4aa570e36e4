package main

import "fmt"

//derivemore:fromstr
type Casing int

const (
	Foo Casing = iota
	FOO
	Bar
)

func main() {
	a, _ := ParseCasing("Foo")
	b, _ := ParseCasing("FOO")
	c, _ := ParseCasing("BAR")
	_, err := ParseCasing("foo")
	fmt.Println(a, b, c, err)
}
