package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ErmitaVulpe/derive-more/pkg/fromstrerrors"
)

//derivemore:fromstr
type Direction int

const (
	North Direction = iota
	South
)

func main() {
	var a, b struct{ Heading Direction }
	err1 := json.Unmarshal([]byte(`{"Heading": "south"}`), &a)
	err2 := json.Unmarshal([]byte(`{"Heading": "up"}`), &b)
	fmt.Println(a.Heading, err1, errors.Is(err2, fromstrerrors.ErrNoMatch))
}
