//go:build derivemore

package testdata

import "github.com/ErmitaVulpe/derive-more"

type Direction int

var _ = derivemore.FromStr[Direction]() // want `cannot assign directive to blank identifier`
