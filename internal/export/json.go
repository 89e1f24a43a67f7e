package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// ErrNonFinite is returned when a series holds NaN or Inf, which JSON cannot
// represent.
var ErrNonFinite = errors.New("export: non-finite sample")

type Document struct {
	Integrator string            `json:"integrator"`
	Params     trajectory.Params `json:"params"`
	Summary    metrics.Summary   `json:"summary"`
	Series     SeriesData        `json:"series"`
	Energy     EnergyData        `json:"energy"`
}

type SeriesData struct {
	T  []float64 `json:"t"`
	X  []float64 `json:"x"`
	Y  []float64 `json:"y"`
	R  []float64 `json:"r"`
	VX []float64 `json:"vx"`
	VY []float64 `json:"vy"`
	V  []float64 `json:"v"`
	AX []float64 `json:"ax"`
	AY []float64 `json:"ay"`
	A  []float64 `json:"a"`
}

type EnergyData struct {
	KE []float64 `json:"ke"`
	PE []float64 `json:"pe"`
	TE []float64 `json:"te"`
}

func NewDocument(integrator string, p trajectory.Params, s *trajectory.Series, e *trajectory.EnergySeries) Document {
	return Document{
		Integrator: integrator,
		Params:     p,
		Summary:    metrics.Summarize(p, s, e),
		Series: SeriesData{
			T: s.T, X: s.X, Y: s.Y, R: s.R,
			VX: s.VX, VY: s.VY, V: s.V,
			AX: s.AX, AY: s.AY, A: s.A,
		},
		Energy: EnergyData{KE: e.KE, PE: e.PE, TE: e.TE},
	}
}

func (d Document) validate() error {
	cols := map[string][]float64{
		"t": d.Series.T, "x": d.Series.X, "y": d.Series.Y, "r": d.Series.R,
		"vx": d.Series.VX, "vy": d.Series.VY, "v": d.Series.V,
		"ax": d.Series.AX, "ay": d.Series.AY, "a": d.Series.A,
		"ke": d.Energy.KE, "pe": d.Energy.PE, "te": d.Energy.TE,
	}
	for name, col := range cols {
		if !dynamo.State(col).IsValid() {
			return fmt.Errorf("%w in column %s", ErrNonFinite, name)
		}
	}
	return nil
}

func WriteJSON(w io.Writer, d Document) error {
	if err := d.validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
