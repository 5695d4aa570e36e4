package main

import "fmt"

//derivemore:fromstr
type Port int

func main() {
	p, _ := ParsePort("8080")
	_, err := ParsePort("http")
	fmt.Println(p, err)
}
