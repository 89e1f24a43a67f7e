package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/trajectory"
)

// EnergyDrift is the largest deviation of total energy from its initial value,
// relative to |TE[0]|. When TE[0] is zero the deviation is absolute.
func EnergyDrift(e *trajectory.EnergySeries) float64 {
	if e.Len() == 0 {
		return 0
	}

	initial := e.TE[0]
	maxDrift := 0.0
	for _, te := range e.TE {
		maxDrift = math.Max(maxDrift, math.Abs(te-initial))
	}

	if initial != 0 {
		return maxDrift / math.Abs(initial)
	}
	return maxDrift
}

// Dissipated is the total energy lost between the first and last sample.
func Dissipated(e *trajectory.EnergySeries) float64 {
	if e.Len() == 0 {
		return 0
	}
	return e.TE[0] - e.TE[e.Len()-1]
}
