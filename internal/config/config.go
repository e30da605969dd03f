package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles   = 20
	DefaultRadiusScale = 3
	DefaultWidth       = 1280.0
	DefaultHeight      = 720.0
	DefaultMass        = 1e12
	DefaultTheta       = 0.8
	DefaultDamping     = 0.99
	DefaultDtMax       = 5.0
)

// Config is the pre-validated input surface of the simulation core. The
// engine assumes every field is in range; Validate is the gate.
type Config struct {
	Particles   int     `yaml:"particles"`
	RadiusScale int     `yaml:"radius_scale"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Mass        float64 `yaml:"mass"`
	Solver      string  `yaml:"solver"`
	Theta       float64 `yaml:"theta"`
	Damping     float64 `yaml:"damping"`
	WallDamping float64 `yaml:"wall_damping"`
	DtMax       float64 `yaml:"dt_max"`
	Seed        int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles:   DefaultParticles,
		RadiusScale: DefaultRadiusScale,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Mass:        DefaultMass,
		Solver:      "direct",
		Theta:       DefaultTheta,
		Damping:     DefaultDamping,
		WallDamping: DefaultDamping,
		DtMax:       DefaultDtMax,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Radius maps the 1-10 menu scale to a collision radius in world units.
func (c *Config) Radius() float64 {
	return 5 + 2*float64(c.RadiusScale-1)
}

func (c *Config) Validate() error {
	if c.Particles < 1 || c.Particles > 100 {
		return fmt.Errorf("particles must be in [1, 100], got %d", c.Particles)
	}
	if c.RadiusScale < 1 || c.RadiusScale > 10 {
		return fmt.Errorf("radius_scale must be in [1, 10], got %d", c.RadiusScale)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bounds must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", c.Mass)
	}
	switch c.Solver {
	case "direct", "tree":
	default:
		return fmt.Errorf("solver must be direct or tree, got %q", c.Solver)
	}
	if c.Theta <= 0 || c.Theta > 1 {
		return fmt.Errorf("theta must be in (0, 1], got %g", c.Theta)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %g", c.Damping)
	}
	if c.WallDamping <= 0 || c.WallDamping > 1 {
		return fmt.Errorf("wall_damping must be in (0, 1], got %g", c.WallDamping)
	}
	if c.DtMax <= 0 {
		return fmt.Errorf("dt_max must be positive, got %g", c.DtMax)
	}
	return nil
}
