package anim

// Timeline runs callbacks after a number of ticks have elapsed.
// It replaces wall-clock timers: deadlines are only checked on Tick,
// so ordering relative to other per-tick work is deterministic.
type Timeline struct {
	now     int
	pending []deadline
}

type deadline struct {
	at int
	fn func()
}

// After schedules fn to run on the tick that is ticks ticks from now.
// Values below 1 run fn on the next Tick. Callbacks sharing a deadline
// run in scheduling order.
func (t *Timeline) After(ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	t.pending = append(t.pending, deadline{at: t.now + ticks, fn: fn})
}

// Tick advances the clock and runs every callback that is due.
// Callbacks scheduled while running are considered from the next tick on.
func (t *Timeline) Tick() {
	t.now++

	var due []func()
	kept := t.pending[:0]
	for _, d := range t.pending {
		if d.at <= t.now {
			due = append(due, d.fn)
		} else {
			kept = append(kept, d)
		}
	}
	// Zero the tail so dropped callbacks can be collected.
	for i := len(kept); i < len(t.pending); i++ {
		t.pending[i] = deadline{}
	}
	t.pending = kept

	for _, fn := range due {
		fn()
	}
}

// Pending returns the number of callbacks still waiting.
func (t *Timeline) Pending() int {
	return len(t.pending)
}

// Clear drops every pending callback.
func (t *Timeline) Clear() {
	t.pending = nil
}

// Now returns the number of ticks since the timeline was created.
func (t *Timeline) Now() int {
	return t.now
}
