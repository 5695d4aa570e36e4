package main

import "fmt"

func main() {
	s, _ := ParseSpeed("500")
	fmt.Println(clampSpeed(s))
}
