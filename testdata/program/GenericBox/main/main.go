package main

import "fmt"

//derivemore:fromstr
type Box[T any] struct{ Value T }

//derivemore:fromstr
type Level int

const (
	Info Level = iota
	Warn
)

func main() {
	b, _ := ParseBox[Level]("warn")
	ib, _ := ParseIntBox("7")
	_, err := ParseBox[Level]("silly")
	fmt.Println(b.Value, ib.Value, err)
}
