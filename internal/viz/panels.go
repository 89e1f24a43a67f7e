package viz

import (
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// Curve is one named line: Y plotted against X.
type Curve struct {
	Name string
	X, Y []float64
}

type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Curves []Curve
	// Parametric panels plot Y against a non-uniform X (the path itself)
	// instead of against time.
	Parametric bool
}

const (
	PanelTrajectory = iota
	PanelPosition
	PanelVelocity
	PanelAcceleration
	PanelEnergy
	NumPanels
)

func Panels(s *trajectory.Series, e *trajectory.EnergySeries) []Panel {
	return []Panel{
		PanelTrajectory: {
			Title: "Trajectory", XLabel: "X (m)", YLabel: "Y (m)", Parametric: true,
			Curves: []Curve{{Name: "Trajectory", X: s.X, Y: s.Y}},
		},
		PanelPosition: {
			Title: "Position", XLabel: "Time (s)", YLabel: "Position (m)",
			Curves: []Curve{
				{Name: "Horizontal Position", X: s.T, Y: s.X},
				{Name: "Vertical Position", X: s.T, Y: s.Y},
			},
		},
		PanelVelocity: {
			Title: "Velocity", XLabel: "Time (s)", YLabel: "Velocity (m/s)",
			Curves: []Curve{
				{Name: "Horizontal Velocity", X: s.T, Y: s.VX},
				{Name: "Vertical Velocity", X: s.T, Y: s.VY},
				{Name: "Modulus Velocity", X: s.T, Y: s.V},
			},
		},
		PanelAcceleration: {
			Title: "Acceleration", XLabel: "Time (s)", YLabel: "Acceleration (m/s^2)",
			Curves: []Curve{
				{Name: "Horizontal Acceleration", X: s.T, Y: s.AX},
				{Name: "Vertical Acceleration", X: s.T, Y: s.AY},
				{Name: "Modulus Acceleration", X: s.T, Y: s.A},
			},
		},
		PanelEnergy: {
			Title: "Energy", XLabel: "Time (s)", YLabel: "Energy (J)",
			Curves: []Curve{
				{Name: "Kinetic Energy", X: e.T, Y: e.KE},
				{Name: "Potential Energy", X: e.T, Y: e.PE},
				{Name: "Total Energy", X: e.T, Y: e.TE},
			},
		},
	}
}

// Bounds returns the data extent over every curve of the panel.
func (p Panel) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	for _, c := range p.Curves {
		for i := range c.X {
			if i >= len(c.Y) {
				break
			}
			x, y := c.X[i], c.Y[i]
			if !ok {
				minX, maxX, minY, maxY, ok = x, x, y, y, true
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	return
}

// Plottable reports whether every sample is finite and the data span itself
// fits in a float64.
func (p Panel) Plottable() bool {
	for _, c := range p.Curves {
		if !dynamo.State(c.X).IsValid() || !dynamo.State(c.Y).IsValid() {
			return false
		}
	}
	minX, maxX, minY, maxY, ok := p.Bounds()
	return !ok || dynamo.State{maxX - minX, maxY - minY}.IsValid()
}
