//go:build derivemore

package main

import "github.com/ErmitaVulpe/derive-more"

var ParseIntBox = derivemore.FromStr[Box[int]]()
