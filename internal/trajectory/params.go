package trajectory

import (
	"fmt"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// Params are the initial conditions and physical constants of one solve.
// Angles are in degrees, everything else in SI units.
type Params struct {
	TMax       float64 `yaml:"t_max" json:"t_max"`
	NumSamples int     `yaml:"num_samples" json:"num_samples"`
	X0         float64 `yaml:"x0" json:"x0"`
	Y0         float64 `yaml:"y0" json:"y0"`
	V0         float64 `yaml:"v0" json:"v0"`
	AngleDeg   float64 `yaml:"angle_deg" json:"angle_deg"`
	Gravity    float64 `yaml:"g" json:"g"`
	Drag       float64 `yaml:"k" json:"k"`
	Mass       float64 `yaml:"m" json:"m"`
}

const (
	DefaultTMax       = 2.5
	DefaultNumSamples = 250
	DefaultV0         = 10.0
	DefaultAngleDeg   = 60.0
	DefaultGravity    = 9.81
	DefaultMass       = 1.0
)

func DefaultParams() Params {
	return Params{
		TMax:       DefaultTMax,
		NumSamples: DefaultNumSamples,
		V0:         DefaultV0,
		AngleDeg:   DefaultAngleDeg,
		Gravity:    DefaultGravity,
		Mass:       DefaultMass,
	}
}

// Validate rejects inputs that would divide by zero or yield a degenerate
// grid. Physical plausibility is left to the caller.
func (p Params) Validate() error {
	if p.NumSamples < 2 {
		return &dynamo.ParameterError{Name: ParamNumSamples.String(), Value: float64(p.NumSamples), Reason: "need at least 2 samples"}
	}
	if !(p.Mass > 0) {
		return &dynamo.ParameterError{Name: ParamMass.String(), Value: p.Mass, Reason: "must be positive"}
	}
	if !(p.TMax > 0) {
		return &dynamo.ParameterError{Name: ParamTMax.String(), Value: p.TMax, Reason: "must be positive"}
	}
	return nil
}

// Dt is the constant step of the sample grid.
func (p Params) Dt() float64 {
	return p.TMax / float64(p.NumSamples-1)
}

func (p Params) String() string {
	return fmt.Sprintf("tmax=%.2fs n=%d x0=%.2f y0=%.2f v0=%.2f angle=%.1f° g=%.2f k=%.2f m=%.2f",
		p.TMax, p.NumSamples, p.X0, p.Y0, p.V0, p.AngleDeg, p.Gravity, p.Drag, p.Mass)
}
