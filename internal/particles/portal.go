package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/core"
)

// Portal tuning.
const (
	PortalParticles = 100
	portalGrowth    = 1.02
	portalFade      = 0.005
	// Particles are only replaced during the first part of the effect,
	// so the vortex thins out before it ends.
	portalBackfillUntil = 0.8
)

// Portal is the time-portal vortex: colored particles fly out from the
// scene center, growing and fading as they go.
type Portal struct {
	Particles []Particle
	bounds    Bounds
	rng       *rand.Rand
}

// NewPortal creates an idle portal effect.
func NewPortal(bounds Bounds, rng *rand.Rand) *Portal {
	return &Portal{bounds: bounds, rng: rng}
}

// Start fills the portal with a fresh burst of particles.
func (v *Portal) Start() {
	v.Particles = make([]Particle, 0, PortalParticles)
	for i := 0; i < PortalParticles; i++ {
		v.spawn()
	}
}

func (v *Portal) spawn() {
	angle := v.rng.Float64() * math.Pi * 2
	speed := between(v.rng, 1, 5)
	v.Particles = append(v.Particles, Particle{
		Pos:  v.bounds.Center(),
		Vel:  core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
		Size: between(v.rng, 2, 5),
		Color: RGBA{
			R: channel(v.rng, 100, 255),
			G: channel(v.rng, 100, 255),
			B: channel(v.rng, 100, 255),
			A: 1,
		},
	})
}

// Update advances every particle for normalized portal progress p.
func (v *Portal) Update(p float64) {
	for i := range v.Particles {
		pt := &v.Particles[i]
		pt.Step()
		pt.Size *= portalGrowth
		pt.Color.A -= portalFade
	}
	v.Particles = prune(v.Particles, func(pt *Particle) bool {
		return pt.Color.A > 0
	})

	for len(v.Particles) < PortalParticles && p < portalBackfillUntil {
		v.spawn()
	}
}

// Stop drops every particle.
func (v *Portal) Stop() {
	v.Particles = nil
}
