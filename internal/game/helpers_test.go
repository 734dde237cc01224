package game

import (
	"testing"

	"github.com/vovakirdan/jezrium/internal/config"
	"github.com/vovakirdan/jezrium/internal/core"
)

// recorder captures narrator calls.
type recorder struct {
	messages  []Message
	current   *Message
	dismissed int
}

func (r *recorder) PresentMessage(msg Message) {
	r.messages = append(r.messages, msg)
	r.current = &r.messages[len(r.messages)-1]
}

func (r *recorder) DismissMessage() {
	r.current = nil
	r.dismissed++
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	g := New(config.DefaultJezriumConfig())
	r := &recorder{}
	g.SetNarrator(r)
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 32, TickRate: 60, Seed: 1})
	return g, r
}

func step(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

// settle steps until no timed sequence is left running.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 2000 && g.Busy(); i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Busy() {
		t.Fatalf("game still busy after 2000 ticks in phase %v", g.Phase())
	}
}

func fire(t *testing.T, g *Game) {
	t.Helper()
	if !g.OnFireRequested() {
		t.Fatalf("OnFireRequested() rejected at shot %d in phase %v", g.State().CurrentShot, g.Phase())
	}
	settle(t, g)
}

func choose(t *testing.T, g *Game, id string) {
	t.Helper()
	if !g.OnModalChoice(id) {
		t.Fatalf("OnModalChoice(%q) rejected in phase %v", id, g.Phase())
	}
}

func phaseLog(g *Game) *[]Phase {
	var seen []Phase
	g.OnTransition(func(tr Transition) { seen = append(seen, tr.To) })
	return &seen
}
