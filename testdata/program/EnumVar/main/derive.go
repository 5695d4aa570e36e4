//go:build derivemore

package main

import "github.com/ErmitaVulpe/derive-more"

var FromString = derivemore.FromStr[Color]()
