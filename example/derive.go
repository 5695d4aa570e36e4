//go:build derivemore

package main

import "github.com/ErmitaVulpe/derive-more"

var ParseWeekday = derivemore.FromStr[Weekday]()
