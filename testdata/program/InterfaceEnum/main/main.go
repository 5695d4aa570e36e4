package main

import "fmt"

//derivemore:fromstr
type Event interface{ isEvent() }

type Click struct{}

func (Click) isEvent() {}

type Hover struct{}

func (*Hover) isEvent() {}

func main() {
	c, _ := ParseEvent("click")
	h, _ := ParseEvent("HOVER")
	_, err := ParseEvent("drag")
	fmt.Printf("%T %T %v\n", c, h, err)
}
