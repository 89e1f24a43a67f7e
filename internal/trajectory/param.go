package trajectory

import "math"

// Param identifies one adjustable field of Params.
type Param int

const (
	ParamTMax Param = iota
	ParamX0
	ParamY0
	ParamV0
	ParamAngle
	ParamGravity
	ParamNumSamples
	ParamDrag
	ParamMass
)

type field struct {
	name string
	get  func(Params) float64
	set  func(*Params, float64)
}

var fields = [...]field{
	ParamTMax:       {"tmax", func(p Params) float64 { return p.TMax }, func(p *Params, v float64) { p.TMax = v }},
	ParamX0:         {"x0", func(p Params) float64 { return p.X0 }, func(p *Params, v float64) { p.X0 = v }},
	ParamY0:         {"y0", func(p Params) float64 { return p.Y0 }, func(p *Params, v float64) { p.Y0 = v }},
	ParamV0:         {"v0", func(p Params) float64 { return p.V0 }, func(p *Params, v float64) { p.V0 = v }},
	ParamAngle:      {"angle", func(p Params) float64 { return p.AngleDeg }, func(p *Params, v float64) { p.AngleDeg = v }},
	ParamGravity:    {"g", func(p Params) float64 { return p.Gravity }, func(p *Params, v float64) { p.Gravity = v }},
	ParamNumSamples: {"num", func(p Params) float64 { return float64(p.NumSamples) }, func(p *Params, v float64) { p.NumSamples = int(math.Round(v)) }},
	ParamDrag:       {"k", func(p Params) float64 { return p.Drag }, func(p *Params, v float64) { p.Drag = v }},
	ParamMass:       {"m", func(p Params) float64 { return p.Mass }, func(p *Params, v float64) { p.Mass = v }},
}

// AllParams lists every Param in display order.
func AllParams() []Param {
	out := make([]Param, len(fields))
	for i := range fields {
		out[i] = Param(i)
	}
	return out
}

func (p Param) valid() bool { return p >= 0 && int(p) < len(fields) }

func (p Param) String() string {
	if !p.valid() {
		return "unknown"
	}
	return fields[p].name
}

// ParseParam is the inverse of Param.String.
func ParseParam(name string) (Param, bool) {
	for i, f := range fields {
		if f.name == name {
			return Param(i), true
		}
	}
	return 0, false
}

// Get reads a field. Unknown params read as NaN.
func (p Params) Get(param Param) float64 {
	if !param.valid() {
		return math.NaN()
	}
	return fields[param].get(p)
}

// With returns a copy of p with one field replaced. NumSamples is rounded to
// the nearest integer. Unknown params return p unchanged.
func (p Params) With(param Param, value float64) Params {
	if !param.valid() {
		return p
	}
	fields[param].set(&p, value)
	return p
}
