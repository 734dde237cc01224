package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/core"
)

// Explosion tuning. Values are per tick.
const (
	ExplosionParticles = 50
	ExplosionLife      = 60
	explosionFade      = 0.02
	explosionGrowth    = 1.0
	particleShrink     = 0.98
	minParticleSize    = 0.5
)

// Flash is the short burst of light drawn when an explosion first appears.
type Flash struct {
	Pos    core.Vec
	Radius float64
	Color  RGBA
}

// Explosion is a fading, expanding envelope that throws out a single
// burst of fiery particles on its first tick.
type Explosion struct {
	Pos       core.Vec
	Size      float64
	Alpha     float64
	Particles []Particle

	emitted bool
	flash   bool
}

// NewExplosion creates an explosion at pos with a random initial size.
func NewExplosion(pos core.Vec, rng *rand.Rand) *Explosion {
	return &Explosion{
		Pos:   pos,
		Size:  between(rng, 20, 50),
		Alpha: 1,
	}
}

// Update advances the explosion by one tick.
// Returns false once the envelope has faded and the explosion should be dropped.
func (e *Explosion) Update(rng *rand.Rand) bool {
	if e.Alpha <= 0 {
		return false
	}

	e.Alpha -= explosionFade
	e.Size += explosionGrowth

	e.flash = false
	if !e.emitted {
		e.emitted = true
		e.flash = true
		e.emit(rng)
	}

	for i := range e.Particles {
		p := &e.Particles[i]
		p.Step()
		p.Size *= particleShrink
		p.Life--
		p.Color = p.Color.WithAlpha(float64(p.Life) / ExplosionLife)
	}
	e.Particles = prune(e.Particles, func(p *Particle) bool {
		return p.Life > 0 && p.Size > minParticleSize
	})
	return true
}

func (e *Explosion) emit(rng *rand.Rand) {
	e.Particles = make([]Particle, 0, ExplosionParticles)
	for i := 0; i < ExplosionParticles; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := between(rng, 1, 7)
		e.Particles = append(e.Particles, Particle{
			Pos:  e.Pos,
			Vel:  core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Size: between(rng, 3, 8),
			Color: RGBA{
				R: channel(rng, 200, 255),
				G: channel(rng, 50, 200),
				B: channel(rng, 0, 50),
				A: 1,
			},
			Life: ExplosionLife,
		})
	}
}

// Flash returns the initial flash if this tick emitted the burst.
func (e *Explosion) Flash() (Flash, bool) {
	if !e.flash {
		return Flash{}, false
	}
	return Flash{
		Pos:    e.Pos,
		Radius: e.Size * 1.5,
		Color:  RGBA{R: 255, G: 165, B: 0}.WithAlpha(e.Alpha * 0.8),
	}, true
}

// Explosions is the set of live explosions in the scene.
type Explosions struct {
	list []*Explosion
}

// Spawn adds a new explosion at pos.
func (x *Explosions) Spawn(pos core.Vec, rng *rand.Rand) *Explosion {
	e := NewExplosion(pos, rng)
	x.list = append(x.list, e)
	return e
}

// Update advances every explosion and drops the ones that have faded.
func (x *Explosions) Update(rng *rand.Rand) {
	kept := x.list[:0]
	for _, e := range x.list {
		if e.Update(rng) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(x.list); i++ {
		x.list[i] = nil
	}
	x.list = kept
}

// All returns the live explosions. The slice must not be retained.
func (x *Explosions) All() []*Explosion {
	return x.list
}

// Len returns the number of live explosions.
func (x *Explosions) Len() int {
	return len(x.list)
}

// ParticleCount returns the number of live particles across all explosions.
func (x *Explosions) ParticleCount() int {
	n := 0
	for _, e := range x.list {
		n += len(e.Particles)
	}
	return n
}

// Clear removes every explosion.
func (x *Explosions) Clear() {
	x.list = nil
}
