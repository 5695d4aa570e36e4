package main

import "fmt"

func main() {
	c, _ := FromString("green")
	_, err := FromString("chartreuse")
	fmt.Println(c, err)
}
