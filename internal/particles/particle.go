package particles

import "github.com/vovakirdan/jezrium/internal/core"

// Particle is one moving, fading dot.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Size  float64 // Radius in scene units
	Color RGBA
	Life  int // Remaining ticks; unused by effects that fade by alpha alone
}

// Step moves the particle by its velocity.
func (p *Particle) Step() {
	p.Pos = p.Pos.Add(p.Vel)
}

// Bounds is the logical scene size effects are laid out in.
type Bounds struct {
	W, H float64
}

// Center returns the middle of the scene.
func (b Bounds) Center() core.Vec {
	return core.V(b.W/2, b.H/2)
}

// prune removes particles in place, keeping those for which keep is true.
func prune(ps []Particle, keep func(*Particle) bool) []Particle {
	out := ps[:0]
	for i := range ps {
		if keep(&ps[i]) {
			out = append(out, ps[i])
		}
	}
	for i := len(out); i < len(ps); i++ {
		ps[i] = Particle{}
	}
	return out
}
