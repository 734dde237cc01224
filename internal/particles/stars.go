package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/core"
)

// DefaultStarCount is the number of background stars.
const DefaultStarCount = 200

// Star is a single background star.
type Star struct {
	Pos     core.Vec
	Radius  float64
	Alpha   float64
	Twinkle float64 // Angular speed of the twinkle, per millisecond
}

// StarField is the twinkling background.
type StarField struct {
	Stars  []Star
	bounds Bounds
	count  int
}

// NewStarField scatters count stars uniformly over bounds.
func NewStarField(count int, bounds Bounds, rng *rand.Rand) *StarField {
	f := &StarField{bounds: bounds, count: count}
	f.Reset(rng)
	return f
}

// Reset replaces every star with a freshly scattered one.
func (f *StarField) Reset(rng *rand.Rand) {
	f.Stars = make([]Star, 0, f.count)
	for i := 0; i < f.count; i++ {
		f.Stars = append(f.Stars, Star{
			Pos:     core.V(rng.Float64()*f.bounds.W, rng.Float64()*f.bounds.H),
			Radius:  between(rng, 0.5, 1.5),
			Alpha:   between(rng, 0.5, 1),
			Twinkle: between(rng, 0.002, 0.01),
		})
	}
}

// Update sets every star's alpha from the scene clock in milliseconds.
func (f *StarField) Update(ms float64) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Alpha = math.Abs(math.Sin(ms * s.Twinkle))
	}
}

// Len returns the number of stars.
func (f *StarField) Len() int {
	return len(f.Stars)
}
