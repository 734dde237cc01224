package render

import (
	"math"

	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
	"github.com/vovakirdan/jezrium/internal/particles"
)

// asteroidGlyphs form the rotating surface texture.
var asteroidGlyphs = []rune{'@', '#', '%', '&'}

// DrawBackground draws the star field. The failure screen keeps its stars
// but drops the nebula tint.
func (t *TermSink) DrawBackground(phase game.Phase, stars []particles.Star) {
	t.phase = phase

	// Faint horizon line where the moon base sits. Stars draw over it.
	if phase != game.PhaseMessageScreen && phase != game.PhaseHyperjump {
		r := t.layout.Scene
		t.dst.DrawHLine(r.X, r.Bottom()-1, r.W, '_', core.ColorDarkGray)
	}

	for _, s := range stars {
		if s.Alpha < minVisibleAlpha {
			continue
		}
		x, y := t.toCell(s.Pos)
		c := core.ColorWhite
		if s.Alpha < 0.5 {
			c = core.ColorGray
		}
		t.set(x, y, starGlyph(s.Alpha, s.Radius), c)
	}
}

// DrawAsteroid draws the asteroid body with an orange glow ring.
func (t *TermSink) DrawAsteroid(pos core.Vec, radius, rotation float64) {
	if radius <= 0 {
		return
	}

	t.disc(pos, radius*1.2, func(x, y int, d float64) {
		if d <= radius {
			return
		}
		glow := 1 - (d-radius)/(radius*0.2)
		t.set(x, y, shadeGlyph(glow*0.6), core.ColorOrange)
	})

	t.disc(pos, radius, func(x, y int, d float64) {
		p := t.toScene(x, y).Sub(pos)
		angle := math.Atan2(p.Y, p.X) + rotation
		sector := int(math.Floor(angle*2/math.Pi+d/radius*2)) & 3
		c := core.ColorYellow
		if d > radius*0.7 {
			c = core.ColorOrange
		}
		t.set(x, y, asteroidGlyphs[sector], c)
	})
}

// DrawParticles draws every visible particle as a dot or, when larger than
// a cell, a shaded disc.
func (t *TermSink) DrawParticles(ps []particles.Particle) {
	sx, _ := t.cellSpan()
	for _, p := range ps {
		if p.Color.A < minVisibleAlpha {
			continue
		}
		c := nearestColor(p.Color)
		if p.Size <= sx {
			x, y := t.toCell(p.Pos)
			t.set(x, y, dotGlyph(p.Color.A), c)
			continue
		}
		glyph := shadeGlyph(p.Color.A)
		t.disc(p.Pos, p.Size, func(x, y int, _ float64) {
			t.set(x, y, glyph, c)
		})
	}
}

// DrawLaserBeam draws the beam from origin to its current head and the
// fading muzzle flash at the origin.
func (t *TermSink) DrawLaserBeam(origin, target core.Vec, progress float64) {
	head := core.Lerp(origin, target, progress)
	x0, y0 := t.toCell(origin)
	x1, y1 := t.toCell(head)

	r := t.layout.Scene
	clip := func(x, y int) (int, int) {
		return core.Clamp(x, r.X, r.Right()-1), core.Clamp(y, r.Y, r.Bottom()-1)
	}
	x0, y0 = clip(x0, y0)
	x1, y1 = clip(x1, y1)
	t.dst.DrawLine(x0, y0, x1, y1, '┃', core.ColorBrightMagenta)
	t.set(x1, y1, '◆', core.ColorBrightWhite)

	flashAlpha := (1 - progress) * 0.8
	if flashAlpha >= minVisibleAlpha {
		flashRadius := 10 + (1-progress)*20
		t.disc(origin, flashRadius, func(x, y int, _ float64) {
			t.set(x, y, shadeGlyph(flashAlpha), core.ColorBrightWhite)
		})
	}
}
