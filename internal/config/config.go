// Package config provides YAML-based configuration loading and pace presets
// for the asteroid scenario.
package config

// JezriumConfig contains all tunables of the scenario.
type JezriumConfig struct {
	Scene  SceneConfig  `yaml:"scene"`
	Timing TimingConfig `yaml:"timing"`
	Text   TextConfig   `yaml:"text"`
}

// SceneConfig defines the logical scene layout. Coordinates are in scene
// units; the renderer scales them onto the terminal.
type SceneConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	AsteroidX     float64 `yaml:"asteroid_x"`
	AsteroidY     float64 `yaml:"asteroid_y"`
	BaseRadius    float64 `yaml:"base_radius"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per tick
	LaserOriginX  float64 `yaml:"laser_origin_x"`
	LaserOriginY  float64 `yaml:"laser_origin_y"`
	StarCount     int     `yaml:"star_count"`
}

// TimingConfig defines animation lengths in ticks.
type TimingConfig struct {
	LaserFlight int `yaml:"laser_flight"`
	ImpactDelay int `yaml:"impact_delay"` // 0 = same as laser_flight
	ChartReveal int `yaml:"chart_reveal"`
	Settle      int `yaml:"settle"`
	Hyperjump   int `yaml:"hyperjump"`
	Portal      int `yaml:"portal"`
}

// Impact returns the number of ticks between firing and impact.
func (t TimingConfig) Impact() int {
	if t.ImpactDelay > 0 {
		return t.ImpactDelay
	}
	return t.LaserFlight
}

// TextConfig holds the narrative texts and choice labels.
type TextConfig struct {
	Intro         string `yaml:"intro"`
	IntroButton   string `yaml:"intro_button"`
	Decision      string `yaml:"decision"`
	ContinueLabel string `yaml:"continue_label"`
	ContinueHint  string `yaml:"continue_hint"`
	ReturnLabel   string `yaml:"return_label"`
	ReturnHint    string `yaml:"return_hint"`
	Failure       string `yaml:"failure"`
	FailureButton string `yaml:"failure_button"`
	Win           string `yaml:"win"`
	WinButton     string `yaml:"win_button"`
	Image         string `yaml:"image"`
}

// PacePreset represents a named animation speed.
type PacePreset string

const (
	PaceSlow   PacePreset = "slow"
	PaceNormal PacePreset = "normal"
	PaceFast   PacePreset = "fast"
)

// PaceFactor returns the timing multiplier for a preset.
func PaceFactor(preset PacePreset) float64 {
	switch preset {
	case PaceSlow:
		return 1.5
	case PaceFast:
		return 0.5
	default:
		return 1.0
	}
}
