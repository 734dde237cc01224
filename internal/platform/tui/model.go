package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jezrium/internal/config"
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
	"github.com/vovakirdan/jezrium/internal/render"
	"github.com/vovakirdan/jezrium/internal/storage"
)

// Options configures a run beyond the runtime config.
type Options struct {
	Store   *storage.Store // Optional run journal
	Logger  *log.Logger    // Optional; defaults to a discarding logger
	Session string         // "local" or the SSH user
	Pace    string
}

// Model is the Bubble Tea model for one run of the scenario.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	modal      *Modal
	scene      config.SceneConfig
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	ticking    bool // Whether a tick is scheduled
	quitting   bool
}

// NewModel creates a new Bubble Tea model running a fresh game.
func NewModel(cfg config.JezriumConfig, rc core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Session == "" {
		opts.Session = "local"
	}

	keys := DefaultKeyMap()
	m := Model{
		game:       game.New(cfg),
		screen:     core.NewScreen(rc.ScreenW, core.Max(1, rc.ScreenH-1)),
		modal:      NewModal(),
		scene:      cfg.Scene,
		config:     rc,
		opts:       opts,
		keyMapper:  NewKeyMapper(keys),
		keys:       keys,
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		ticking:    true,
	}
	m.help.Width = rc.ScreenW

	m.game.SetNarrator(m.modal)
	m.game.OnTransition(m.logTransition)
	m.game.OnFinish(m.saveOutcome)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("run started", "session", m.opts.Session, "seed", m.config.Seed, "pace", m.opts.Pace)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i, ok := m.keyMapper.PickIndex(msg); ok {
		if m.modal.Select(i) {
			m.choose()
		}
		return m.wake()
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.opts.Logger.Info("run quit", "phase", m.game.Phase(), "ticks", m.game.Ticks())
		return m, tea.Quit
	}

	switch action {
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionFire:
		if m.game.CanFire() {
			m.opts.Logger.Debug("fire", "shot", m.game.State().CurrentShot+1)
		}
		m.inputFrame.Set(core.ActionFire)
	case core.ActionConfirm:
		m.choose()
	case core.ActionNext:
		m.modal.Next()
	case core.ActionPrev:
		m.modal.Prev()
	default:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	}

	return m.wake()
}

// choose reports the highlighted modal choice to the game.
func (m Model) choose() {
	choice, ok := m.modal.Selected()
	if !ok {
		return
	}
	if !m.game.OnModalChoice(choice.ID) {
		m.opts.Logger.Warn("choice rejected", "choice", choice.ID, "phase", m.game.Phase())
	}
}

// wake restarts the tick loop after the game went idle.
func (m Model) wake() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events.
// The scene uses logical coordinates, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	active := m.game.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	if !active {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// logTransition records phase changes.
func (m Model) logTransition(t game.Transition) {
	m.opts.Logger.Info("phase",
		"from", t.From,
		"to", t.To,
		"event", t.Event,
		"shot", m.game.State().CurrentShot,
	)
}

// saveOutcome writes a won run to the journal.
func (m Model) saveOutcome(o game.Outcome) {
	m.opts.Logger.Info("run finished",
		"path", o.Path,
		"loops", o.PortalLoops,
		"shots", o.ShotsFired,
		"ticks", o.Ticks,
		"tick_rate", o.TickRate,
	)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunRecord{
		Session:     m.opts.Session,
		Path:        o.Path,
		PortalLoops: o.PortalLoops,
		ShotsFired:  o.ShotsFired,
		Ticks:       o.Ticks,
		TickRate:    o.TickRate,
		Pace:        m.opts.Pace,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// draw renders the game and the modal into the screen buffer.
func (m Model) draw() {
	sink := render.Draw(m.screen, m.game, m.scene.Width, m.scene.Height)
	m.modal.Draw(m.screen, sink.Layout().Scene)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".jezrium", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys))

	// The help bar grows when expanded; the scene gives up the rows
	m.screen.Resize(m.config.ScreenW, core.Max(1, m.config.ScreenH-lipgloss.Height(helpView)))
	m.draw()

	return RenderScreen(m.screen) + "\n" + helpView
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// Modal returns the session narrator.
func (m Model) Modal() *Modal {
	return m.modal
}

// Ticking reports whether a tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run starts the Bubble Tea program for one run.
func Run(cfg config.JezriumConfig, rc core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
