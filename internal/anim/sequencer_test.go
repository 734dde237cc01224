package anim

import (
	"math"
	"testing"
)

func TestSequencerCompletesExactlyOnce(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		frames   int // expected onFrame calls
	}{
		{"zero duration", 0, 1},
		{"negative duration", -5, 1},
		{"one tick", 1, 1},
		{"laser flight", 39, 39},
		{"chart reveal", 60, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Sequencer
			frames, completes := 0, 0
			completedAt := -1
			s.Start(tc.duration, func(float64) { frames++ }, func() {
				completes++
				completedAt = s.Elapsed()
			})

			for i := 0; i < tc.duration+20; i++ {
				s.Tick()
			}

			if completes != 1 {
				t.Errorf("onComplete called %d times, expected 1", completes)
			}
			if frames != tc.frames {
				t.Errorf("onFrame called %d times, expected %d", frames, tc.frames)
			}
			if tc.duration > 0 && completedAt < tc.duration {
				t.Errorf("onComplete at tick %d, before duration %d", completedAt, tc.duration)
			}
			if s.Active() {
				t.Error("sequencer should be inactive after completion")
			}
		})
	}
}

func TestSequencerProgressIsClampedAndMonotonic(t *testing.T) {
	var s Sequencer
	var seen []float64
	s.Start(4, func(p float64) { seen = append(seen, p) }, nil)
	for s.Tick() {
	}

	expected := []float64{0.25, 0.5, 0.75, 1}
	if len(seen) != len(expected) {
		t.Fatalf("got %d frames, expected %d", len(seen), len(expected))
	}
	for i := range expected {
		if math.Abs(seen[i]-expected[i]) > 1e-12 {
			t.Errorf("frame %d progress = %v, expected %v", i, seen[i], expected[i])
		}
	}
}

func TestSequencerRestartFromCompletion(t *testing.T) {
	var s Sequencer
	stage := 0
	s.Start(2, nil, func() {
		stage = 1
		s.Start(3, nil, func() { stage = 2 })
	})

	ticks := 0
	for s.Tick() {
		ticks++
	}
	ticks++ // final Tick returned false

	if stage != 2 {
		t.Errorf("stage = %d, expected 2", stage)
	}
	if ticks != 5 {
		t.Errorf("chained run took %d ticks, expected 5", ticks)
	}
}

func TestSequencerStop(t *testing.T) {
	var s Sequencer
	called := false
	s.Start(3, nil, func() { called = true })
	s.Tick()
	s.Stop()
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	if called {
		t.Error("stopped sequencer must not complete")
	}
}

func TestSequencerReplaceDropsOldCallbacks(t *testing.T) {
	var s Sequencer
	first, second := 0, 0
	s.Start(2, nil, func() { first++ })
	s.Tick()
	s.Start(2, nil, func() { second++ })
	for s.Tick() {
	}

	if first != 0 || second != 1 {
		t.Errorf("first = %d, second = %d; expected 0 and 1", first, second)
	}
}

func TestIdleSequencerTick(t *testing.T) {
	var s Sequencer
	if s.Tick() {
		t.Error("Tick() on an idle sequencer should return false")
	}
	if s.Progress() != 0 {
		t.Errorf("Progress() = %v, expected 0", s.Progress())
	}
}
