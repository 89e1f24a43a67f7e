package optim

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// Objective scores one solved trajectory. ok is false when the quantity is
// undefined for it, e.g. no landing within tMax.
type Objective struct {
	Name  string
	Score func(p trajectory.Params, s *trajectory.Series) (score float64, ok bool)
}

var objectives = map[string]Objective{
	"range": {"range", func(_ trajectory.Params, s *trajectory.Series) (float64, bool) {
		pt, ok := metrics.Range(s)
		return pt.X, ok
	}},
	"apex": {"apex", func(_ trajectory.Params, s *trajectory.Series) (float64, bool) {
		pt, ok := metrics.Apex(s)
		return pt.Y, ok
	}},
	"flight": {"flight", func(_ trajectory.Params, s *trajectory.Series) (float64, bool) {
		pt, ok := metrics.Range(s)
		return pt.T, ok
	}},
	// energy prefers the smallest relative loss
	"energy": {"energy", func(p trajectory.Params, s *trajectory.Series) (float64, bool) {
		drift := metrics.EnergyDrift(trajectory.DeriveEnergy(s, p.Mass, p.Gravity))
		return -drift, !math.IsNaN(drift)
	}},
}

func GetObjective(name string) (Objective, error) {
	obj, ok := objectives[name]
	if !ok {
		return Objective{}, fmt.Errorf("unknown objective: %s (available: %v)", name, ListObjectives())
	}
	return obj, nil
}

func ListObjectives() []string {
	names := make([]string, 0, len(objectives))
	for name := range objectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
