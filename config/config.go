// Package config loads the process configuration of the game binaries.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable outside the prefabs.
type Config struct {
	Window Window `yaml:"window"`

	// MaxDeltaTime caps a single tick, in seconds.
	MaxDeltaTime float64 `yaml:"max_delta_time"`
	Seed         uint64  `yaml:"seed"`
	// InitialScreen overrides the screen screens.yaml starts on.
	InitialScreen string `yaml:"initial_screen"`
	// Damping is the fraction of velocity a physics body keeps per second.
	Damping float64 `yaml:"damping"`

	WatchPrefabs bool `yaml:"watch_prefabs"`
	Debug        bool `yaml:"debug"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "Sqwad",
		},
		MaxDeltaTime: 0.1,
		Seed:         1,
		Damping:      0.15,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("max_delta_time must be positive"))
	}
	if c.Damping < 0 || c.Damping > 1 {
		errs = append(errs, fmt.Errorf("damping %v must be within [0, 1]", c.Damping))
	}
	return errors.Join(errs...)
}
