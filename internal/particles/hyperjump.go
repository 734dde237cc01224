package particles

import (
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/core"
)

// Hyperjump tuning.
const (
	hyperjumpStarSpeed  = 5.0
	hyperjumpStarGrowth = 3.0
)

// Hyperjump streaks stars outward from the scene center, faster and larger
// as the jump progresses. Stars that leave the scene are replaced near the
// center so the density holds for the whole jump.
type Hyperjump struct {
	Stars  []Star
	bounds Bounds
	count  int
	rng    *rand.Rand
}

// NewHyperjump creates an idle hyperjump effect.
func NewHyperjump(count int, bounds Bounds, rng *rand.Rand) *Hyperjump {
	return &Hyperjump{bounds: bounds, count: count, rng: rng}
}

// Start scatters a fresh set of stars over the scene.
func (h *Hyperjump) Start() {
	h.Stars = make([]Star, 0, h.count)
	for i := 0; i < h.count; i++ {
		h.Stars = append(h.Stars, Star{
			Pos:     core.V(h.rng.Float64()*h.bounds.W, h.rng.Float64()*h.bounds.H),
			Radius:  between(h.rng, 0.5, 1.5),
			Alpha:   between(h.rng, 0.5, 1),
			Twinkle: between(h.rng, 0.002, 0.01),
		})
	}
}

// Update advances every star for normalized jump progress p.
func (h *Hyperjump) Update(p float64) {
	c := h.bounds.Center()
	for i := range h.Stars {
		s := &h.Stars[i]
		d := s.Pos.Sub(c)
		s.Pos = s.Pos.Add(d.Scale(hyperjumpStarSpeed * p))
		s.Radius += hyperjumpStarGrowth * p
		s.Alpha = 1 - p
	}

	kept := h.Stars[:0]
	for _, s := range h.Stars {
		if s.Pos.X > -s.Radius && s.Pos.X < h.bounds.W+s.Radius &&
			s.Pos.Y > -s.Radius && s.Pos.Y < h.bounds.H+s.Radius {
			kept = append(kept, s)
		}
	}
	h.Stars = kept

	for len(h.Stars) < h.count {
		h.Stars = append(h.Stars, Star{
			Pos: core.V(
				between(h.rng, h.bounds.W*0.4, h.bounds.W*0.6),
				between(h.rng, h.bounds.H*0.4, h.bounds.H*0.6),
			),
			Radius:  between(h.rng, 0.5, 1.5),
			Alpha:   between(h.rng, 0.5, 1),
			Twinkle: between(h.rng, 0.01, 0.05),
		})
	}
}

// Stop drops every star.
func (h *Hyperjump) Stop() {
	h.Stars = nil
}
