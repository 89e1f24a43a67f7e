package metrics

import "github.com/san-kum/trajsim/internal/trajectory"

type Summary struct {
	Samples     int       `json:"samples"`
	Dt          float64   `json:"dt"`
	Apex        *Point    `json:"apex,omitempty"`
	Range       *Point    `json:"range,omitempty"`
	MaxSpeed    float64   `json:"max_speed"`
	FinalSpeed  float64   `json:"final_speed"`
	EnergyDrift float64   `json:"energy_drift"`
	Dissipated  float64   `json:"dissipated"`
	Ideal       Reference `json:"ideal"`
}

func Summarize(p trajectory.Params, s *trajectory.Series, e *trajectory.EnergySeries) Summary {
	sum := Summary{
		Samples:     s.Len(),
		EnergyDrift: EnergyDrift(e),
		Dissipated:  Dissipated(e),
		Ideal:       Ideal(p),
	}
	if s.Len() == 0 {
		return sum
	}

	if s.Len() > 1 {
		sum.Dt = s.T[1] - s.T[0]
	}
	if apex, ok := Apex(s); ok {
		sum.Apex = &apex
	}
	if rng, ok := Range(s); ok {
		sum.Range = &rng
	}
	for _, v := range s.V {
		if v > sum.MaxSpeed {
			sum.MaxSpeed = v
		}
	}
	sum.FinalSpeed = s.V[s.Len()-1]

	return sum
}
