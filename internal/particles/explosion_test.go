package particles

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/jezrium/internal/core"
)

func TestExplosionEmitsOnceWithFlash(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewExplosion(core.V(100, 100), rng)

	if !e.Update(rng) {
		t.Fatal("new explosion should be alive after first update")
	}
	if len(e.Particles) != ExplosionParticles {
		t.Errorf("first update emitted %d particles, expected %d", len(e.Particles), ExplosionParticles)
	}
	if _, ok := e.Flash(); !ok {
		t.Error("first update should produce a flash")
	}

	e.Update(rng)
	if _, ok := e.Flash(); ok {
		t.Error("flash should only appear on the first update")
	}
	if len(e.Particles) > ExplosionParticles {
		t.Errorf("explosion re-emitted particles: %d", len(e.Particles))
	}
}

func TestExplosionParticleFade(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	e := NewExplosion(core.V(0, 0), rng)
	e.Update(rng)

	for _, p := range e.Particles {
		expected := float64(ExplosionLife-1) / ExplosionLife
		if p.Color.A != expected {
			t.Fatalf("particle alpha = %v, expected %v", p.Color.A, expected)
		}
		if p.Size < 3*particleShrink || p.Size > 8 {
			t.Fatalf("particle size %v out of range", p.Size)
		}
	}
}

func TestExplosionsEventuallyEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var x Explosions
	for i := 0; i < 5; i++ {
		x.Spawn(core.V(float64(i*10), 50), rng)
	}

	for i := 0; i < 200 && x.Len() > 0; i++ {
		x.Update(rng)
	}

	if x.Len() != 0 {
		t.Errorf("Len() = %d after 200 ticks, expected 0", x.Len())
	}
	if x.ParticleCount() != 0 {
		t.Errorf("ParticleCount() = %d, expected 0", x.ParticleCount())
	}
}

func TestExplosionsClear(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var x Explosions
	x.Spawn(core.V(1, 1), rng)
	x.Clear()

	if x.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", x.Len())
	}
}

func TestRGBAWithAlpha(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
	}

	for _, tc := range tests {
		c := White.WithAlpha(tc.in)
		if c.A != tc.expected {
			t.Errorf("WithAlpha(%v).A = %v, expected %v", tc.in, c.A, tc.expected)
		}
		if c.R != 255 || c.G != 255 || c.B != 255 {
			t.Errorf("WithAlpha changed channels: %+v", c)
		}
	}

	if White.Fade(1).Visible() {
		t.Error("fully faded color should not be visible")
	}
}
