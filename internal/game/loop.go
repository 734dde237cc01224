package game

import (
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/particles"
	"github.com/vovakirdan/jezrium/internal/table"
)

// Step advances the scenario by one tick.
// Returns whether the platform should keep ticking; see Active.
func (g *Game) Step(in core.InputFrame) bool {
	if in.Has(core.ActionFire) {
		g.OnFireRequested()
	}

	// Lose is entered from a modal choice and handed to the hyperjump on
	// the next tick, so it is visible to observers for exactly one step.
	if g.machine.Phase() == PhaseLose {
		g.machine.Dispatch(EventAuto)
	}

	g.ticks++
	g.stars.Update(float64(g.ticks) * 1000 / float64(g.rc.TickRate))

	phase := g.machine.Phase()
	if phase != PhaseHyperjump && phase != PhaseTimePortal {
		g.asteroid.Rotation += g.cfg.Scene.RotationSpeed
	}

	g.laser.Tick()
	g.timeline.Tick()
	g.linear.Tick()
	g.log.Tick()
	g.explosions.Update(g.rng)
	g.effect.Tick()

	return g.Active()
}

// Active reports whether the scene still changes from tick to tick.
// The intro and win prompts are static once every animation has settled,
// so the platform may stop ticking until the next input.
func (g *Game) Active() bool {
	if g.Busy() {
		return true
	}
	switch g.machine.Phase() {
	case PhaseIntro, PhaseWin:
		return false
	}
	return true
}

// Render issues the draw calls for the current tick.
func (g *Game) Render(dst Sink) {
	phase := g.machine.Phase()

	switch phase {
	case PhaseHyperjump:
		dst.DrawBackground(phase, g.hyperjump.Stars)
	case PhaseTimePortal:
		dst.DrawBackground(phase, g.stars.Stars)
		dst.DrawParticles(g.portal.Particles)
	default:
		dst.DrawBackground(phase, g.stars.Stars)
		dst.DrawAsteroid(g.asteroid.Pos, g.asteroid.Radius, g.asteroid.Rotation)
		for _, e := range g.explosions.All() {
			if f, ok := e.Flash(); ok {
				dst.DrawParticles([]particles.Particle{{Pos: f.Pos, Size: f.Radius, Color: f.Color}})
			}
			dst.DrawParticles(e.Particles)
		}
		if g.laser.Active() {
			dst.DrawLaserBeam(g.laser.Origin, g.laser.Target, g.laser.Progress())
		}
	}

	dst.DrawChartFrame(g.linear.Frame())
	dst.DrawChartFrame(g.log.Frame())

	s := g.machine.state
	dst.DrawOverlayHUD(HUD{
		Phase:         phase,
		ThreatPercent: s.ThreatPercent,
		Resource:      s.ResourceRemaining,
		MaxResource:   table.MustAt(0).ResourceCount,
		Shot:          s.CurrentShot,
		FireReady:     g.shots.CanFire(),
	})
}

// Asteroid returns the current asteroid.
func (g *Game) Asteroid() Asteroid {
	return g.asteroid
}

// Charts returns the linear and logarithmic chart frames.
func (g *Game) Charts() (linear, log ChartFrame) {
	return g.linear.Frame(), g.log.Frame()
}

// ParticleCounts returns the live particle counts of the explosion,
// hyperjump and portal effects.
func (g *Game) ParticleCounts() (explosions, hyperjump, portal int) {
	return g.explosions.ParticleCount(), len(g.hyperjump.Stars), len(g.portal.Particles)
}
