package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jezrium/internal/config"
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
	"github.com/vovakirdan/jezrium/internal/storage"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := NewModel(config.DefaultJezriumConfig(), core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  32,
		TickRate: 60,
		Seed:     1,
	}, opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule a tick")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

// tickUntil sends ticks until cond holds, firing whenever the game allows.
func tickUntil(t *testing.T, m Model, cond func(Model) bool) Model {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if cond(m) {
			return m
		}
		if m.game.CanFire() {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		}
		m, _ = update(t, m, TickMsg{})
	}
	t.Fatalf("condition not reached, phase %v", m.game.Phase())
	return m
}

func modalID(m Model) string {
	msg, ok := m.modal.Message()
	if !ok {
		return ""
	}
	return msg.ID
}

func TestModelIntro(t *testing.T) {
	m := newTestModel(t, Options{})

	if m.game.Phase() != game.PhaseIntro {
		t.Fatalf("Phase() = %v, expected %v", m.game.Phase(), game.PhaseIntro)
	}
	if modalID(m) != game.MessageIntro {
		t.Errorf("modal = %q, expected %q", modalID(m), game.MessageIntro)
	}

	view := m.View()
	if view == "" {
		t.Fatal("View() should not be empty")
	}
	screen := m.screen.String()
	for _, want := range []string{"THREAT", "All hands to stations"} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestModelIdleTickStops(t *testing.T) {
	m := newTestModel(t, Options{})

	// Nothing moves in the intro, so the first tick stops the loop
	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("idle tick should not schedule another tick")
	}
	if m.Ticking() {
		t.Error("Ticking() should be false while idle")
	}

	// Any handled key wakes the loop
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil || !m.Ticking() {
		t.Error("key press should restart ticking")
	}

	// A second key does not schedule a second tick chain
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		t.Error("key press while ticking should not schedule a tick")
	}
}

func TestModelConfirmStartsRun(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.Phase() != game.PhaseNormal {
		t.Fatalf("Phase() = %v, expected %v", m.game.Phase(), game.PhaseNormal)
	}
	if m.modal.Visible() {
		t.Error("modal should be dismissed in Normal")
	}
	if cmd == nil {
		t.Error("confirm should wake the tick loop")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})
	if !m.game.Busy() {
		t.Error("fire key should start a shot on the next tick")
	}
}

func TestModelDecisionPick(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = tickUntil(t, m, func(m Model) bool { return m.game.Phase() == game.PhaseDecision })
	if modalID(m) != game.MessageDecision {
		t.Fatalf("modal = %q, expected %q", modalID(m), game.MessageDecision)
	}

	// "2" picks return early
	m, _ = update(t, m, runeKey('2'))
	if m.game.Phase() != game.PhaseLose {
		t.Fatalf("Phase() = %v, expected %v", m.game.Phase(), game.PhaseLose)
	}

	m = tickUntil(t, m, func(m Model) bool { return m.game.Phase() == game.PhaseMessageScreen })
	if modalID(m) != game.MessageFailure {
		t.Errorf("modal = %q, expected %q", modalID(m), game.MessageFailure)
	}
}

func TestModelFullRunSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Pace: "fast"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = tickUntil(t, m, func(m Model) bool { return m.game.Phase() == game.PhaseDecision })
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Stay
	m = tickUntil(t, m, func(m Model) bool { return m.game.Phase() == game.PhaseWin })

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Session != "local" || r.Pace != "fast" || r.ShotsFired != 5 {
		t.Errorf("saved run = %+v", r)
	}
	if len(r.Path) != 1 || r.Path[0] != game.ChoiceContinue {
		t.Errorf("Path = %v, expected [%s]", r.Path, game.ChoiceContinue)
	}
	if r.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", r.TickRate)
	}
}

func TestModelZeroTickRate(t *testing.T) {
	for _, rate := range []int{0, -5} {
		m := NewModel(config.DefaultJezriumConfig(), core.RuntimeConfig{
			ScreenW:  100,
			ScreenH:  32,
			TickRate: rate,
			Seed:     1,
		}, Options{})

		if cmd := m.Init(); cmd == nil {
			t.Fatalf("Init() with tick rate %d should schedule a tick", rate)
		}
		if m.config.TickRate != core.DefaultConfig().TickRate {
			t.Errorf("tick rate %d normalized to %d, expected %d", rate, m.config.TickRate, core.DefaultConfig().TickRate)
		}

		m, _ = update(t, m, TickMsg{})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if cmd == nil {
			t.Errorf("tick rate %d: confirm should wake the tick loop", rate)
		}
		if m.game.Phase() != game.PhaseNormal {
			t.Errorf("tick rate %d: phase = %v, expected Normal", rate, m.game.Phase())
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.View()
	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, expected 120", m.screen.Width())
	}
	if m.screen.Height() >= 40 {
		t.Errorf("screen height = %d, expected room for the help bar", m.screen.Height())
	}
	if m.game.Phase() != game.PhaseIntro {
		t.Error("resize should not restart or advance the run")
	}
}
