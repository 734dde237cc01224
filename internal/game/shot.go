package game

import (
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/anim"
	"github.com/vovakirdan/jezrium/internal/config"
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/particles"
	"github.com/vovakirdan/jezrium/internal/table"
)

// ShotController runs the pipeline of a single shot:
//
//	fire -> laser flight -> impact (threat, radius, explosion)
//	     -> linear chart reveal -> settle -> log chart reveal -> milestone check
//
// Every continuation is guarded by the epoch current at fire time.
type ShotController struct {
	m          *Machine
	timing     config.TimingConfig
	origin     core.Vec
	timeline   *anim.Timeline
	laser      *Laser
	linear     *Chart
	log        *Chart
	asteroid   *Asteroid
	explosions *particles.Explosions
	rng        *rand.Rand

	fireEnabled bool
	fired       int
}

// CanFire reports whether a shot may be fired right now.
func (c *ShotController) CanFire() bool {
	s := c.m.state
	return s.Phase == PhaseNormal &&
		s.Interactive &&
		c.fireEnabled &&
		s.ResourceRemaining > 0 &&
		s.CurrentShot < table.LastIndex
}

// FireEnabled reports whether the fire control is armed.
func (c *ShotController) FireEnabled() bool {
	return c.fireEnabled
}

// Fired returns the number of shots fired since the last reset.
func (c *ShotController) Fired() int {
	return c.fired
}

// reset arms the fire control and forgets the shot count.
func (c *ShotController) reset() {
	c.fireEnabled = true
	c.fired = 0
}

// FireShot fires the next shot. It does nothing and returns false when
// CanFire is false.
func (c *ShotController) FireShot() bool {
	if !c.CanFire() {
		return false
	}

	s := &c.m.state
	s.ResourceRemaining--
	s.CurrentShot++
	shot := s.CurrentShot

	c.fireEnabled = false
	c.fired++

	ep := c.m.Epoch()
	c.laser.Fire(c.origin, c.asteroid.Pos, c.timing.LaserFlight)
	c.timeline.After(c.timing.Impact(), ep.Guard(func() { c.impact(shot) }))

	c.linear.Reveal(shot, c.timing.ChartReveal, ep.Guard(func() {
		c.timeline.After(c.timing.Settle, ep.Guard(func() {
			c.log.Reveal(shot, c.timing.ChartReveal, ep.Guard(func() {
				c.complete(shot)
			}))
		}))
	}))
	return true
}

// impact applies the shot's table row and throws an explosion somewhere
// within the asteroid's new radius.
func (c *ShotController) impact(shot int) {
	rec := table.MustAt(shot)
	c.m.state.ThreatPercent = rec.ThreatPercent
	c.asteroid.SetThreat(rec.ThreatPercent)

	half := c.asteroid.Radius / 2
	offset := core.V(
		c.rng.Float64()*2*half-half,
		c.rng.Float64()*2*half-half,
	)
	c.explosions.Spawn(c.asteroid.Pos.Add(offset), c.rng)
}

// complete re-arms the fire control and checks the milestones.
func (c *ShotController) complete(shot int) {
	c.fireEnabled = true

	switch shot {
	case DecisionShot:
		c.m.Dispatch(EventReachedDecision)
	case table.LastIndex:
		c.m.Dispatch(EventReachedWin)
	}
}
