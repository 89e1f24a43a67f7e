package config

import (
	"sort"

	"github.com/san-kum/trajsim/internal/trajectory"
)

var Presets = map[string]trajectory.Params{
	"default": trajectory.DefaultParams(),
	"lob": {
		TMax: 3.0, NumSamples: 300, V0: 12, AngleDeg: 75, Gravity: 9.81, Mass: 1,
	},
	"drag": {
		TMax: 2.5, NumSamples: 250, V0: 15, AngleDeg: 45, Gravity: 9.81, Drag: 0.5, Mass: 1,
	},
	"heavy_drag": {
		TMax: 4.0, NumSamples: 400, V0: 20, AngleDeg: 45, Gravity: 9.81, Drag: 5, Mass: 10,
	},
	"freefall": {
		TMax: 1.5, NumSamples: 150, Y0: 10, Gravity: 9.81, Mass: 1,
	},
	"cliff": {
		TMax: 3.0, NumSamples: 300, X0: -10, Y0: 10, V0: 8, AngleDeg: 0, Gravity: 9.81, Drag: 0.1, Mass: 2,
	},
	"spike": {
		TMax: 2.0, NumSamples: 200, Y0: 5, V0: 20, AngleDeg: -60, Gravity: 9.81, Mass: 1,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Params = p
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
