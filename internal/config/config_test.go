package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := DefaultJezriumConfig()
	if err := yaml.Unmarshal(defaultJezriumYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultJezriumConfig()
	if cfg.Scene != def.Scene {
		t.Errorf("embedded scene = %+v, expected %+v", cfg.Scene, def.Scene)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("embedded timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Text.ContinueLabel != def.Text.ContinueLabel {
		t.Errorf("embedded continue label = %q, expected %q", cfg.Text.ContinueLabel, def.Text.ContinueLabel)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  laser_flight: 10\n  settle: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.LaserFlight != 10 {
		t.Errorf("LaserFlight = %d, expected 10", cfg.Timing.LaserFlight)
	}
	if cfg.Timing.Settle != 5 {
		t.Errorf("Settle = %d, expected 5", cfg.Timing.Settle)
	}
	// Unset keys keep their defaults.
	if cfg.Timing.Portal != 180 {
		t.Errorf("Portal = %d, expected default 180", cfg.Timing.Portal)
	}
	if cfg.Scene.StarCount != 200 {
		t.Errorf("StarCount = %d, expected default 200", cfg.Scene.StarCount)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	negative := filepath.Join(dir, "negative.yaml")
	if err := os.WriteFile(negative, []byte("timing:\n  settle: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(negative); err == nil {
		t.Error("Load() of a negative timing should fail")
	}
}

func TestImpactDefaultsToLaserFlight(t *testing.T) {
	tests := []struct {
		timing   TimingConfig
		expected int
	}{
		{TimingConfig{LaserFlight: 39}, 39},
		{TimingConfig{LaserFlight: 39, ImpactDelay: 10}, 10},
	}

	for _, tc := range tests {
		if got := tc.timing.Impact(); got != tc.expected {
			t.Errorf("Impact() = %d, expected %d", got, tc.expected)
		}
	}
}

func TestApplyPacePreset(t *testing.T) {
	tests := []struct {
		preset      PacePreset
		laser       int
		chartReveal int
		portal      int
	}{
		{PaceNormal, 39, 60, 180},
		{PaceSlow, 59, 90, 270},
		{PaceFast, 20, 30, 90},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultJezriumConfig()
			ApplyPacePreset(&cfg, tc.preset)

			if cfg.Timing.LaserFlight != tc.laser {
				t.Errorf("LaserFlight = %d, expected %d", cfg.Timing.LaserFlight, tc.laser)
			}
			if cfg.Timing.ChartReveal != tc.chartReveal {
				t.Errorf("ChartReveal = %d, expected %d", cfg.Timing.ChartReveal, tc.chartReveal)
			}
			if cfg.Timing.Portal != tc.portal {
				t.Errorf("Portal = %d, expected %d", cfg.Timing.Portal, tc.portal)
			}
			if cfg.Timing.ImpactDelay != 0 {
				t.Errorf("ImpactDelay = %d, expected 0 to keep tracking the laser", cfg.Timing.ImpactDelay)
			}
		})
	}
}

func TestParsePace(t *testing.T) {
	tests := []struct {
		in       string
		expected PacePreset
		wantErr  bool
	}{
		{"slow", PaceSlow, false},
		{"normal", PaceNormal, false},
		{"fast", PaceFast, false},
		{"", PaceNormal, false},
		{"ludicrous", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePace(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePace(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePace(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultJezriumConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Scene.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero width should be invalid")
	}
}

func TestValidateImpactOrdering(t *testing.T) {
	cfg := DefaultJezriumConfig()
	cfg.Timing.ImpactDelay = 2*cfg.Timing.ChartReveal + cfg.Timing.Settle
	if err := cfg.Validate(); err == nil {
		t.Error("impact landing after the chart reveals should be invalid")
	}

	cfg.Timing.ImpactDelay = 2*cfg.Timing.ChartReveal + cfg.Timing.Settle - 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("impact on the last animated tick should be valid: %v", err)
	}
}
