// Package particles implements the independent per-tick effects of the
// scene: explosion bursts, the twinkling star field, the hyperjump star
// burst and the time-portal vortex. Each effect owns its particles and
// shares nothing with the others.
package particles

import (
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/core"
)

// RGBA is a color with a numeric alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// White is opaque white.
var White = RGBA{R: 255, G: 255, B: 255, A: 1}

// WithAlpha returns the color with its alpha replaced, clamped to [0, 1].
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = core.ClampF(a, 0, 1)
	return c
}

// Fade returns the color with its alpha reduced by d.
func (c RGBA) Fade(d float64) RGBA {
	return c.WithAlpha(c.A - d)
}

// Visible reports whether the color has any opacity left.
func (c RGBA) Visible() bool {
	return c.A > 0
}

// between returns a uniform value in [min, max).
func between(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// channel returns a random color channel in [min, max).
func channel(rng *rand.Rand, min, max float64) uint8 {
	return uint8(between(rng, min, max))
}
