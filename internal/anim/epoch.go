package anim

// Epoch is a generation counter. Continuations captured with Guard become
// no-ops once the epoch advances, so a callback scheduled for one phase can
// never act on the next.
type Epoch struct {
	gen uint64
}

// Current returns the current generation.
func (e *Epoch) Current() uint64 {
	return e.gen
}

// Advance invalidates every guard taken so far.
func (e *Epoch) Advance() {
	e.gen++
}

// Valid reports whether gen is still the current generation.
func (e *Epoch) Valid(gen uint64) bool {
	return gen == e.gen
}

// Guard wraps fn so it only runs while the epoch has not advanced.
func (e *Epoch) Guard(fn func()) func() {
	gen := e.gen
	return func() {
		if e.gen == gen && fn != nil {
			fn()
		}
	}
}

// GuardFrame is Guard for per-frame progress callbacks.
func (e *Epoch) GuardFrame(fn func(p float64)) func(p float64) {
	gen := e.gen
	return func(p float64) {
		if e.gen == gen && fn != nil {
			fn(p)
		}
	}
}
