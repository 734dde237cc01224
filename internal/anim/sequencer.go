// Package anim drives tick-counted animations: progress sequencers, delayed
// callbacks and a generation counter for discarding stale continuations.
package anim

// Sequencer advances a progress counter once per tick and reports the
// normalized progress to a frame callback. When the counter reaches the
// duration the completion callback runs exactly once and the sequencer
// goes idle.
//
// A Sequencer is reusable: Start may be called again, including from inside
// the completion callback.
type Sequencer struct {
	progress   int
	duration   int
	active     bool
	onFrame    func(p float64)
	onComplete func()
}

// Start begins a new run of duration ticks, replacing any run in flight.
// The replaced run's callbacks are never invoked again.
// A duration of zero or less completes on the first Tick.
func (s *Sequencer) Start(duration int, onFrame func(p float64), onComplete func()) {
	s.progress = 0
	s.duration = duration
	s.active = true
	s.onFrame = onFrame
	s.onComplete = onComplete
}

// Stop abandons the current run without calling its completion callback.
func (s *Sequencer) Stop() {
	s.active = false
	s.onFrame = nil
	s.onComplete = nil
}

// Tick advances the run by one tick.
// Returns true while the sequencer still has work to do.
func (s *Sequencer) Tick() bool {
	if !s.active {
		return false
	}

	s.progress++
	p := s.Progress()
	if s.onFrame != nil {
		s.onFrame(p)
	}

	if s.progress >= s.duration {
		done := s.onComplete
		s.active = false
		s.onFrame = nil
		s.onComplete = nil
		if done != nil {
			done()
		}
	}
	return s.active
}

// Active reports whether a run is in progress.
func (s *Sequencer) Active() bool {
	return s.active
}

// Progress returns the normalized progress of the current run in [0, 1].
func (s *Sequencer) Progress() float64 {
	if s.duration <= 0 {
		if s.progress > 0 {
			return 1
		}
		return 0
	}
	p := float64(s.progress) / float64(s.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Elapsed returns the number of ticks since Start.
func (s *Sequencer) Elapsed() int {
	return s.progress
}

// Duration returns the length of the current run in ticks.
func (s *Sequencer) Duration() int {
	return s.duration
}
