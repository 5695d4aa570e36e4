package main

import (
	"fmt"
	"strings"
)

type Level struct{ name string }

func (l *Level) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch s {
	case "debug", "info", "warn", "error":
		l.name = s
		return nil
	}
	return fmt.Errorf("no such level %q", string(text))
}

//derivemore:fromstr
type Severity struct{ Level Level }

func main() {
	s, _ := ParseSeverity("WARN")
	_, err := ParseSeverity("loud")
	fmt.Println(s.Level.name, err)
}
