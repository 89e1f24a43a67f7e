package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// Point is a location on the trajectory. Index is the sample at or just after
// the point when it was interpolated.
type Point struct {
	Index int     `json:"index"`
	T     float64 `json:"t"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Apex returns the highest sample. It reports false when the body never
// rises above its launch height.
func Apex(s *trajectory.Series) (Point, bool) {
	if s.Len() == 0 {
		return Point{}, false
	}

	best := 0
	for i, y := range s.Y {
		if y > s.Y[best] {
			best = i
		}
	}

	return Point{Index: best, T: s.T[best], X: s.X[best], Y: s.Y[best]}, best > 0
}

// Range finds where the body first descends back through its launch height
// after the apex, interpolating linearly between the bracketing samples. X is
// the horizontal distance from the launch point.
func Range(s *trajectory.Series) (Point, bool) {
	apex, ok := Apex(s)
	if !ok {
		return Point{}, false
	}

	ref := s.Y[0]
	for i := apex.Index + 1; i < s.Len(); i++ {
		if s.Y[i-1] >= ref && s.Y[i] < ref {
			frac := (s.Y[i-1] - ref) / (s.Y[i-1] - s.Y[i])
			return Point{
				Index: i,
				T:     s.T[i-1] + frac*(s.T[i]-s.T[i-1]),
				X:     s.X[i-1] + frac*(s.X[i]-s.X[i-1]) - s.X[0],
				Y:     ref,
			}, true
		}
	}
	return Point{}, false
}

// Reference holds drag-free closed-form values for a launch.
type Reference struct {
	ApexTime   float64 `json:"apex_time"`
	ApexHeight float64 `json:"apex_height"`
	FlightTime float64 `json:"flight_time"`
	Range      float64 `json:"range"`
}

// Ideal evaluates the vacuum trajectory of p. FlightTime and Range are for the
// return to launch height and are zero for launches that do not rise.
func Ideal(p trajectory.Params) Reference {
	angle := dynamo.DegToRad(p.AngleDeg)
	vx0 := p.V0 * math.Cos(angle)
	vy0 := p.V0 * math.Sin(angle)

	if vy0 <= 0 || p.Gravity <= 0 {
		return Reference{ApexHeight: p.Y0}
	}

	up := vy0 / p.Gravity
	return Reference{
		ApexTime:   up,
		ApexHeight: p.Y0 + vy0*vy0/(2*p.Gravity),
		FlightTime: 2 * up,
		Range:      vx0 * 2 * up,
	}
}
