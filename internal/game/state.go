package game

import "github.com/vovakirdan/jezrium/internal/table"

// DecisionShot is the shot after which the player must choose a branch.
const DecisionShot = 3

// RuntimeState is the mutable state of one run.
type RuntimeState struct {
	ResourceRemaining int
	CurrentShot       int
	ThreatPercent     float64
	Phase             Phase
	Interactive       bool // Shot firing is allowed; modal choices are not affected
}

// restore loads the counters recorded for the given shot.
// Phase and Interactive are left alone.
func (s *RuntimeState) restore(shot int) {
	rec := table.MustAt(shot)
	s.ResourceRemaining = rec.ResourceCount
	s.CurrentShot = rec.Index
	s.ThreatPercent = rec.ThreatPercent
}
