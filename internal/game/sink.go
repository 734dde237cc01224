package game

import (
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/particles"
)

// Sink receives the draw calls of one frame. The scenario never draws
// anything itself; a terminal renderer or a test recorder implements this.
type Sink interface {
	DrawBackground(phase Phase, stars []particles.Star)
	DrawAsteroid(pos core.Vec, radius, rotation float64)
	DrawParticles(ps []particles.Particle)
	DrawLaserBeam(origin, target core.Vec, progress float64)
	DrawChartFrame(frame ChartFrame)
	DrawOverlayHUD(hud HUD)
}

// HUD is the overlay shown on top of every frame.
type HUD struct {
	Phase         Phase
	ThreatPercent float64
	Resource      int
	MaxResource   int
	Shot          int
	FireReady     bool
}

// Choice IDs understood by OnModalChoice.
const (
	ChoiceConfirm     = "confirm"
	ChoiceContinue    = "continue"
	ChoiceReturnEarly = "return_early"
	ChoiceRestart     = "restart"
)

// Message IDs.
const (
	MessageIntro    = "intro"
	MessageDecision = "decision"
	MessageFailure  = "failure"
	MessageWin      = "win"
)

// Choice is one button of a message.
type Choice struct {
	ID    string
	Label string
	Hint  string // Optional explanation shown under the label
}

// Message is a narrative prompt. The player answers it by picking one of
// its choices, which the platform reports back through OnModalChoice.
type Message struct {
	ID        string
	Text      string
	Choices   []Choice
	Image     string // Asset name, empty for none
	Grayscale bool
}

// Narrator shows and hides narrative messages.
type Narrator interface {
	PresentMessage(msg Message)
	DismissMessage()
}

// Outcome summarizes a finished run.
type Outcome struct {
	Path        []string // Choices made at each decision point, in order
	PortalLoops int
	ShotsFired  int
	Ticks       int
	TickRate    int // Ticks per second the run was stepped at
}
