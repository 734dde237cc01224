// Package game implements the marginal-utility asteroid scenario: a phase
// machine that sequences shots, chart reveals and the failure/time-portal
// loop on a fixed tick.
//
// The game contains no rendering or terminal code. Each tick the platform
// calls Step, then Render with a Sink; narrative prompts go to a Narrator
// and the player's answers come back through OnModalChoice.
package game

import (
	"math/rand"

	"github.com/vovakirdan/jezrium/internal/anim"
	"github.com/vovakirdan/jezrium/internal/config"
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/particles"
	"github.com/vovakirdan/jezrium/internal/table"
)

// Game is one scenario instance. It is not safe for concurrent use; the
// platform serializes all calls on its update loop.
type Game struct {
	cfg      config.JezriumConfig
	rc       core.RuntimeConfig
	rng      *rand.Rand
	machine  *Machine
	shots    *ShotController
	narrator Narrator

	asteroid   Asteroid
	laser      Laser
	linear     *Chart
	log        *Chart
	timeline   anim.Timeline
	explosions particles.Explosions
	stars      *particles.StarField
	hyperjump  *particles.Hyperjump
	portal     *particles.Portal
	effect     anim.Sequencer // Drives the hyperjump and the portal

	ticks     int
	runStart  int
	path      []string
	loops     int
	onFinish  func(Outcome)
	choiceFor map[string]Event
}

// New creates a game with the given configuration.
// Call Reset before the first Step.
func New(cfg config.JezriumConfig) *Game {
	g := &Game{
		cfg:     cfg,
		machine: NewMachine(),
		linear:  NewChart(table.Linear),
		log:     NewChart(table.Log),
		choiceFor: map[string]Event{
			ChoiceConfirm:     EventConfirm,
			ChoiceContinue:    EventContinue,
			ChoiceReturnEarly: EventReturnEarly,
			ChoiceRestart:     EventRestart,
		},
	}
	g.shots = &ShotController{
		m:          g.machine,
		timing:     cfg.Timing,
		origin:     core.V(cfg.Scene.LaserOriginX, cfg.Scene.LaserOriginY),
		timeline:   &g.timeline,
		laser:      &g.laser,
		linear:     g.linear,
		log:        g.log,
		asteroid:   &g.asteroid,
		explosions: &g.explosions,
	}

	g.machine.OnEnter(PhaseIntro, g.enterIntro)
	g.machine.OnEnter(PhaseNormal, g.enterNormal)
	g.machine.OnEnter(PhaseDecision, g.enterDecision)
	g.machine.OnEnter(PhaseWin, g.enterWin)
	g.machine.OnEnter(PhaseLose, g.enterLose)
	g.machine.OnEnter(PhaseHyperjump, g.enterHyperjump)
	g.machine.OnEnter(PhaseMessageScreen, g.enterMessageScreen)
	g.machine.OnEnter(PhaseTimePortal, g.enterTimePortal)
	return g
}

// ID returns the scenario identifier used for screenshots and the run journal.
func (g *Game) ID() string {
	return "jezrium"
}

// Title returns a human-readable name.
func (g *Game) Title() string {
	return "Jezrium"
}

// SetNarrator sets where narrative messages are presented.
func (g *Game) SetNarrator(n Narrator) {
	g.narrator = n
}

// OnTransition registers an observer called after every phase change.
func (g *Game) OnTransition(fn func(Transition)) {
	g.machine.Listen(fn)
}

// OnFinish registers a callback that receives the outcome of every won run.
func (g *Game) OnFinish(fn func(Outcome)) {
	g.onFinish = fn
}

// Reset returns to the intro with a fresh scene.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.shots.rng = g.rng

	bounds := particles.Bounds{W: g.cfg.Scene.Width, H: g.cfg.Scene.Height}
	g.stars = particles.NewStarField(g.cfg.Scene.StarCount, bounds, g.rng)
	g.hyperjump = particles.NewHyperjump(g.cfg.Scene.StarCount, bounds, g.rng)
	g.portal = particles.NewPortal(bounds, g.rng)

	g.ticks = 0
	g.machine.reset()
	g.resetScene()
	g.present(g.introMessage())
}

// resetScene puts every animated element back to its start state and
// drops every pending continuation.
func (g *Game) resetScene() {
	g.machine.state.restore(0)
	g.asteroid = Asteroid{
		Pos:        core.V(g.cfg.Scene.AsteroidX, g.cfg.Scene.AsteroidY),
		BaseRadius: g.cfg.Scene.BaseRadius,
	}
	g.asteroid.SetThreat(g.machine.state.ThreatPercent)
	g.laser.Stop()
	g.timeline.Clear()
	g.linear.Reset(0)
	g.log.Reset(0)
	g.linear.Highlight = false
	g.log.Highlight = false
	g.explosions.Clear()
	g.effect.Stop()
	g.hyperjump.Stop()
	g.portal.Stop()
	g.shots.reset()
	g.path = nil
	g.loops = 0
	g.runStart = g.ticks
}

// State returns a copy of the runtime state.
func (g *Game) State() RuntimeState {
	return g.machine.State()
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.machine.Phase()
}

// CanFire reports whether OnFireRequested would fire a shot.
func (g *Game) CanFire() bool {
	return g.shots.CanFire()
}

// Ticks returns the number of ticks since Reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// OnFireRequested fires a shot if the fire control allows it.
func (g *Game) OnFireRequested() bool {
	return g.shots.FireShot()
}

// OnModalChoice applies the player's answer to the current message.
// Returns false if the choice is unknown or not valid in the current phase.
func (g *Game) OnModalChoice(choiceID string) bool {
	ev, ok := g.choiceFor[choiceID]
	if !ok {
		return false
	}
	return g.machine.Dispatch(ev)
}

// Busy reports whether any timed sequence is still running.
func (g *Game) Busy() bool {
	return g.laser.Active() ||
		g.timeline.Pending() > 0 ||
		g.linear.Animating() ||
		g.log.Animating() ||
		g.explosions.Len() > 0 ||
		g.effect.Active()
}

func (g *Game) present(msg Message) {
	if g.narrator != nil {
		g.narrator.PresentMessage(msg)
	}
}

func (g *Game) dismiss() {
	if g.narrator != nil {
		g.narrator.DismissMessage()
	}
}

func (g *Game) enterIntro(Transition) {
	g.machine.state.Interactive = false
	g.resetScene()
	g.stars.Reset(g.rng)
	g.present(g.introMessage())
}

func (g *Game) enterNormal(t Transition) {
	if t.From == PhaseIntro {
		g.resetScene()
	}
	if t.From == PhaseDecision {
		g.path = append(g.path, ChoiceContinue)
	}
	g.linear.Highlight = false
	g.log.Highlight = false
	g.machine.state.Interactive = true
	g.dismiss()
}

func (g *Game) enterDecision(t Transition) {
	g.machine.state.Interactive = false

	if t.From == PhaseTimePortal {
		g.effect.Stop()
		g.portal.Stop()
		g.machine.state.restore(DecisionShot)
		g.asteroid.SetThreat(g.machine.state.ThreatPercent)
		g.asteroid.Rotation = 0
		g.explosions.Clear()
		g.linear.Reset(DecisionShot)
		g.log.Reset(DecisionShot)
		g.log.Highlight = true
		g.stars.Reset(g.rng)
		g.shots.fireEnabled = true
	} else {
		g.linear.Highlight = true
	}

	g.present(g.decisionMessage())
}

func (g *Game) enterLose(Transition) {
	g.machine.state.Interactive = false
	g.path = append(g.path, ChoiceReturnEarly)
	g.linear.Highlight = false
	g.log.Highlight = false
	g.dismiss()
}

func (g *Game) enterHyperjump(Transition) {
	ep := g.machine.Epoch()
	g.hyperjump.Start()
	g.effect.Start(g.cfg.Timing.Hyperjump,
		ep.GuardFrame(g.hyperjump.Update),
		ep.Guard(func() { g.machine.Dispatch(EventHyperjumpDone) }),
	)
}

func (g *Game) enterMessageScreen(Transition) {
	g.hyperjump.Stop()
	g.stars.Reset(g.rng)
	g.present(Message{
		ID:        MessageFailure,
		Text:      g.cfg.Text.Failure,
		Choices:   []Choice{{ID: ChoiceRestart, Label: g.cfg.Text.FailureButton}},
		Image:     g.cfg.Text.Image,
		Grayscale: true,
	})
}

func (g *Game) enterTimePortal(Transition) {
	g.loops++
	g.dismiss()

	ep := g.machine.Epoch()
	g.portal.Start()
	g.effect.Start(g.cfg.Timing.Portal,
		ep.GuardFrame(g.portal.Update),
		ep.Guard(func() { g.machine.Dispatch(EventPortalDone) }),
	)
}

func (g *Game) enterWin(Transition) {
	g.machine.state.Interactive = false
	g.present(Message{
		ID:      MessageWin,
		Text:    g.cfg.Text.Win,
		Choices: []Choice{{ID: ChoiceConfirm, Label: g.cfg.Text.WinButton}},
	})

	if g.onFinish != nil {
		g.onFinish(Outcome{
			Path:        append([]string(nil), g.path...),
			PortalLoops: g.loops,
			ShotsFired:  g.shots.Fired(),
			Ticks:       g.ticks - g.runStart,
			TickRate:    g.rc.TickRate,
		})
	}
}

func (g *Game) introMessage() Message {
	return Message{
		ID:      MessageIntro,
		Text:    g.cfg.Text.Intro,
		Choices: []Choice{{ID: ChoiceConfirm, Label: g.cfg.Text.IntroButton}},
		Image:   g.cfg.Text.Image,
	}
}

func (g *Game) decisionMessage() Message {
	return Message{
		ID:   MessageDecision,
		Text: g.cfg.Text.Decision,
		Choices: []Choice{
			{ID: ChoiceContinue, Label: g.cfg.Text.ContinueLabel, Hint: g.cfg.Text.ContinueHint},
			{ID: ChoiceReturnEarly, Label: g.cfg.Text.ReturnLabel, Hint: g.cfg.Text.ReturnHint},
		},
	}
}
