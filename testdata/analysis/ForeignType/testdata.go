//go:build derivemore

package testdata

import (
	"time"

	"github.com/ErmitaVulpe/derive-more"
)

var ParseTime = derivemore.FromStr[time.Time]() // want `time\.Time must be declared in`
