//go:build derivemore

package main

import "github.com/ErmitaVulpe/derive-more"

// maxSpeed caps parsed speeds.
const maxSpeed = 300

var ParseSpeed = derivemore.FromStr[Speed]()

func clampSpeed(s Speed) Speed {
	if s > maxSpeed {
		return maxSpeed
	}
	return s
}
