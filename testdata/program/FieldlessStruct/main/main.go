package main

import "fmt"

//derivemore:fromstr
type Ping struct{}

func main() {
	p, _ := ParsePing("PING")
	_, err := ParsePing("pong")
	fmt.Printf("%T %v\n", p, err)
}
