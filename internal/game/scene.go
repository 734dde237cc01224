package game

import (
	"github.com/vovakirdan/jezrium/internal/anim"
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/table"
)

// Asteroid is the rotating target. Its radius tracks the threat.
type Asteroid struct {
	Pos        core.Vec
	BaseRadius float64
	Radius     float64
	Rotation   float64
}

// SetThreat scales the radius to threat percent of the base radius.
func (a *Asteroid) SetThreat(threat float64) {
	a.Radius = a.BaseRadius * threat / table.MaxThreat
}

// Laser is the beam travelling from the ship to the asteroid.
type Laser struct {
	Origin core.Vec
	Target core.Vec
	seq    anim.Sequencer
}

// Fire starts a new flight.
func (l *Laser) Fire(origin, target core.Vec, ticks int) {
	l.Origin = origin
	l.Target = target
	l.seq.Start(ticks, nil, nil)
}

// Tick advances the beam.
func (l *Laser) Tick() {
	l.seq.Tick()
}

// Active reports whether the beam is in flight.
func (l *Laser) Active() bool {
	return l.seq.Active()
}

// Progress returns how far the beam head has travelled, in [0, 1].
func (l *Laser) Progress() float64 {
	return l.seq.Progress()
}

// Stop removes the beam.
func (l *Laser) Stop() {
	l.seq.Stop()
}

// Segment is the chart line currently being drawn.
type Segment struct {
	From, To table.Point
	Progress float64 // Also the alpha of the point at To
}

// ChartFrame is everything a renderer needs to draw one chart.
type ChartFrame struct {
	Mode      table.ScaleMode
	Points    []table.Point // Fully revealed points, index 0 first
	Pending   *Segment
	Highlight bool
}

// Chart reveals table points one segment at a time.
type Chart struct {
	Mode      table.ScaleMode
	Highlight bool

	revealed int // Last fully drawn index
	pending  int // Index being drawn, or -1
	seq      anim.Sequencer
}

// NewChart creates a chart showing only the first point.
func NewChart(mode table.ScaleMode) *Chart {
	c := &Chart{Mode: mode}
	c.Reset(0)
	return c
}

// Reset shows points 0..upTo without animation and cancels any reveal.
func (c *Chart) Reset(upTo int) {
	c.seq.Stop()
	c.revealed = upTo
	c.pending = -1
}

// Reveal animates the segment ending at index over ticks ticks, then calls
// onComplete. Index 0 has no segment and completes immediately.
func (c *Chart) Reveal(index, ticks int, onComplete func()) {
	if index == 0 {
		c.Reset(0)
		if onComplete != nil {
			onComplete()
		}
		return
	}

	c.pending = index
	c.seq.Start(ticks, nil, func() {
		c.revealed = index
		c.pending = -1
		if onComplete != nil {
			onComplete()
		}
	})
}

// Tick advances the reveal in progress.
func (c *Chart) Tick() {
	c.seq.Tick()
}

// Animating reports whether a segment is being drawn.
func (c *Chart) Animating() bool {
	return c.seq.Active()
}

// Revealed returns the index of the last fully drawn point.
func (c *Chart) Revealed() int {
	return c.revealed
}

// Frame returns the current drawable state.
func (c *Chart) Frame() ChartFrame {
	f := ChartFrame{
		Mode:      c.Mode,
		Points:    table.Points(c.revealed, c.Mode),
		Highlight: c.Highlight,
	}
	if c.pending > 0 {
		f.Pending = &Segment{
			From:     table.MustPoint(c.pending-1, c.Mode),
			To:       table.MustPoint(c.pending, c.Mode),
			Progress: c.seq.Progress(),
		}
	}
	return f
}
