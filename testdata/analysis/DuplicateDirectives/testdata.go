//go:build derivemore

package testdata

import "github.com/ErmitaVulpe/derive-more"

type Direction int

var ParseA = derivemore.FromStr[Direction]()

var ParseB = derivemore.FromStr[Direction]() // want `duplicate derive for Direction`
