package config

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/trajectory"
)

// Range is the slider span and step of one parameter.
type Range struct {
	Min, Max, Step float64
	Unit           string
}

// Clamp limits v to [Min, Max] and snaps it to the nearest step from Min.
func (r Range) Clamp(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var bounds = map[trajectory.Param]Range{
	trajectory.ParamTMax:       {0.1, 10, 0.1, "s"},
	trajectory.ParamX0:         {-10, 10, 1, "m"},
	trajectory.ParamY0:         {-10, 10, 1, "m"},
	trajectory.ParamV0:         {0, 20, 1, "m/s"},
	trajectory.ParamAngle:      {-90, 90, 1, "°"},
	trajectory.ParamGravity:    {1, 20, 0.01, "m/s²"},
	trajectory.ParamNumSamples: {5, 500, 1, ""},
	trajectory.ParamDrag:       {0, 5, 0.1, "kg/m"},
	trajectory.ParamMass:       {1, 10, 1, "kg"},
}

var info = map[trajectory.Param]string{
	trajectory.ParamTMax:       "Time up until which to calculate the trajectory",
	trajectory.ParamX0:         "Initial x position",
	trajectory.ParamY0:         "Initial y position",
	trajectory.ParamV0:         "Initial velocity modulus",
	trajectory.ParamAngle:      "Initial velocity angle",
	trajectory.ParamGravity:    "Gravitational acceleration",
	trajectory.ParamNumSamples: "Number of points to use in calculations",
	trajectory.ParamDrag:       "Air resistance constant",
	trajectory.ParamMass:       "Mass of object",
}

func Bounds(p trajectory.Param) Range {
	return bounds[p]
}

func Info(p trajectory.Param) string {
	return info[p]
}

// CheckBounds lists every parameter outside its slider range.
func CheckBounds(p trajectory.Params) []error {
	var errs []error
	for _, param := range trajectory.AllParams() {
		r := bounds[param]
		if v := p.Get(param); !r.Contains(v) {
			errs = append(errs, fmt.Errorf("%s=%g outside [%g, %g]", param, v, r.Min, r.Max))
		}
	}
	return errs
}
