package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "jezrium.yaml"

// Load loads the scenario configuration.
// Search order: customPath -> ~/.jezrium/configs/jezrium.yaml -> ./configs/jezrium.yaml -> embedded default
func Load(customPath string) (JezriumConfig, error) {
	// Unset fields keep their defaults.
	cfg := DefaultJezriumConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryFile(filepath.Join("configs", configFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultJezriumConfig()
	if err := yaml.Unmarshal(defaultJezriumYAML, &embedded); err != nil {
		return DefaultJezriumConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryFile loads and validates a config file, reporting false on any failure.
func tryFile(path string) (JezriumConfig, bool) {
	cfg := DefaultJezriumConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jezrium", "configs", filename)
}

// Validate checks that the configuration can drive a run.
func (c JezriumConfig) Validate() error {
	s := c.Scene
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene size %vx%v must be positive", s.Width, s.Height)
	}
	if s.BaseRadius <= 0 {
		return errors.New("base_radius must be positive")
	}
	if s.StarCount < 0 {
		return errors.New("star_count must not be negative")
	}

	t := c.Timing
	for name, v := range map[string]int{
		"laser_flight": t.LaserFlight,
		"impact_delay": t.ImpactDelay,
		"chart_reveal": t.ChartReveal,
		"settle":       t.Settle,
		"hyperjump":    t.Hyperjump,
		"portal":       t.Portal,
	} {
		if v < 0 {
			return fmt.Errorf("timing %s must not be negative, got %d", name, v)
		}
	}

	// The impact has to land before the shot's chart reveals finish.
	if pipeline := 2*t.ChartReveal + t.Settle; t.Impact() >= pipeline {
		return fmt.Errorf("impact after %d ticks lands after the shot finishes animating (%d ticks)", t.Impact(), pipeline)
	}
	return nil
}

// ParsePace converts a flag value into a preset.
func ParsePace(s string) (PacePreset, error) {
	switch PacePreset(s) {
	case PaceSlow, PaceNormal, PaceFast:
		return PacePreset(s), nil
	case "":
		return PaceNormal, nil
	}
	return "", fmt.Errorf("unknown pace %q (want slow, normal or fast)", s)
}

// ApplyPacePreset scales every animation length by the preset's factor.
// Lengths never drop below one tick.
func ApplyPacePreset(cfg *JezriumConfig, preset PacePreset) {
	f := PaceFactor(preset)
	if f == 1.0 {
		return
	}

	scale := func(v int) int {
		if v == 0 {
			return 0
		}
		n := int(math.Round(float64(v) * f))
		if n < 1 {
			n = 1
		}
		return n
	}

	t := &cfg.Timing
	t.LaserFlight = scale(t.LaserFlight)
	t.ImpactDelay = scale(t.ImpactDelay)
	t.ChartReveal = scale(t.ChartReveal)
	t.Settle = scale(t.Settle)
	t.Hyperjump = scale(t.Hyperjump)
	t.Portal = scale(t.Portal)
}
