package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/trajectory"
)

type Config struct {
	Integrator string            `yaml:"integrator"`
	Params     trajectory.Params `yaml:",inline"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: integrators.Reference,
		Params:     trajectory.DefaultParams(),
	}
}

// LoadOver reads a YAML file over a copy of base, so omitted keys keep the
// base values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg as YAML readable by LoadOver.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks what the solver needs plus the integrator name. Slider
// bounds are reported separately by CheckBounds.
func (c *Config) Validate() error {
	if _, err := integrators.New(c.Integrator); err != nil {
		return err
	}
	return c.Params.Validate()
}
