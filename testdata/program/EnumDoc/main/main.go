package main

import "fmt"

//derivemore:fromstr
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func main() {
	n, _ := ParseDirection("north")
	s, _ := ParseDirection("SOUTH")
	_, err := ParseDirection("Nort")
	fmt.Println(n, s, err)
}
