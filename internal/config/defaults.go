package config

import (
	_ "embed"
)

//go:embed defaults/jezrium.yaml
var defaultJezriumYAML []byte

// DefaultJezriumConfig returns the hardcoded configuration.
// It matches defaults/jezrium.yaml and is used if the embedded file fails to parse.
func DefaultJezriumConfig() JezriumConfig {
	return JezriumConfig{
		Scene: SceneConfig{
			Width:         900,
			Height:        600,
			AsteroidX:     450,
			AsteroidY:     150,
			BaseRadius:    100,
			RotationSpeed: 0.002,
			LaserOriginX:  455,
			LaserOriginY:  453,
			StarCount:     200,
		},
		Timing: TimingConfig{
			LaserFlight: 39,
			ImpactDelay: 0,
			ChartReveal: 60,
			Settle:      60,
			Hyperjump:   120,
			Portal:      180,
		},
		Text: TextConfig{
			Intro: "Captain! An asteroid is closing in on the moon where Sol and Venus are stationed. " +
				"You carry five purple jezrium crystals; each one powers a laser shot that knocks a piece off the asteroid. " +
				"The command deck plots the marginal utility of every shot on a linear chart and on a logarithmic chart. " +
				"Fire the laser and watch how the charts and the asteroid change after each shot. " +
				"The threat to Sol and Venus is shown at the top left.",
			IntroButton: "All hands to stations",
			Decision: "Captain! Only two purple jezrium crystals are left, and we need them to fly back to Earth. " +
				"If we spend them and the asteroid survives, we cannot mine more crystals on the moon. " +
				"We have to predict how effective the next two shots will be.",
			ContinueLabel: "Stay to the end!",
			ContinueHint: "The logarithmic chart shows every shot is as effective as the one before it, " +
				"relative to the asteroid it hit. The asteroid shrinks with each hit, so a shot should be judged " +
				"against the size it was fired at, not the original size.",
			ReturnLabel: "Head home!",
			ReturnHint: "The linear chart shows the marginal utility falling with every shot; after three crystals " +
				"the line is almost flat, so more crystals would add almost nothing.",
			Failure:       "You could not save Sol and Venus. Earth is deeply disappointed and sends you to sweep dust on the moon.",
			FailureButton: "Go back in time and try again",
			Win:           "The asteroid is no longer a threat! The jezrium miners thank us and mine five more crystals for the trip.",
			WinButton:     "Start over",
			Image:         "crew",
		},
	}
}
