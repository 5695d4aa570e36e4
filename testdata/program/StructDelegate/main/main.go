package main

import "fmt"

//derivemore:fromstr
type UserID int64

//derivemore:fromstr
type Account struct{ ID UserID }

func main() {
	a, _ := ParseAccount("42")
	_, err := ParseAccount("nope")
	fmt.Println(a.ID, err)
}
