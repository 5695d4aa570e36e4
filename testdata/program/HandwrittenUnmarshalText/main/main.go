package main

import (
	"fmt"
	"strings"
)

//derivemore:fromstr
type Mode int

const (
	Auto Mode = iota
	Manual
)

// UnmarshalText trims surrounding spaces before parsing.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func main() {
	var m Mode
	err := m.UnmarshalText([]byte("  manual  "))
	fmt.Println(m, err)
}
