package game

import "github.com/vovakirdan/jezrium/internal/anim"

// Phase is the single active mode of the scenario.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseNormal
	PhaseDecision
	PhaseWin
	PhaseLose
	PhaseHyperjump
	PhaseMessageScreen
	PhaseTimePortal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseNormal:
		return "Normal"
	case PhaseDecision:
		return "Decision"
	case PhaseWin:
		return "Win"
	case PhaseLose:
		return "Lose"
	case PhaseHyperjump:
		return "Hyperjump"
	case PhaseMessageScreen:
		return "MessageScreen"
	case PhaseTimePortal:
		return "TimePortal"
	default:
		return "Unknown"
	}
}

// Event drives phase transitions.
type Event int

const (
	EventConfirm         Event = iota // Player accepts the intro or win message
	EventReachedDecision              // Shot 3 finished animating
	EventContinue                     // Player keeps firing at the decision point
	EventReturnEarly                  // Player heads home at the decision point
	EventReachedWin                   // Final shot finished animating
	EventAuto                         // Lose hands over to the hyperjump
	EventHyperjumpDone
	EventRestart // Player takes the time portal
	EventPortalDone
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventConfirm:
		return "confirm"
	case EventReachedDecision:
		return "reached-decision"
	case EventContinue:
		return "continue"
	case EventReturnEarly:
		return "return-early"
	case EventReachedWin:
		return "reached-win"
	case EventAuto:
		return "auto"
	case EventHyperjumpDone:
		return "hyperjump-done"
	case EventRestart:
		return "restart"
	case EventPortalDone:
		return "portal-done"
	default:
		return "unknown"
	}
}

type edge struct {
	from  Phase
	event Event
}

// transitions is the complete set of legal moves. Anything else is rejected.
var transitions = map[edge]Phase{
	{PhaseIntro, EventConfirm}:           PhaseNormal,
	{PhaseNormal, EventReachedDecision}:  PhaseDecision,
	{PhaseDecision, EventContinue}:       PhaseNormal,
	{PhaseDecision, EventReturnEarly}:    PhaseLose,
	{PhaseNormal, EventReachedWin}:       PhaseWin,
	{PhaseLose, EventAuto}:               PhaseHyperjump,
	{PhaseHyperjump, EventHyperjumpDone}: PhaseMessageScreen,
	{PhaseMessageScreen, EventRestart}:   PhaseTimePortal,
	{PhaseTimePortal, EventPortalDone}:   PhaseDecision,
	{PhaseWin, EventConfirm}:             PhaseIntro,
}

// Transition describes one completed phase change.
type Transition struct {
	From  Phase
	To    Phase
	Event Event
}

// Machine owns the runtime state and is the only place the phase changes.
// Every transition advances the epoch, so continuations captured in the old
// phase are dropped.
type Machine struct {
	state     RuntimeState
	epoch     anim.Epoch
	onEnter   map[Phase]func(Transition)
	listeners []func(Transition)
}

// NewMachine creates a machine in the Intro phase.
func NewMachine() *Machine {
	m := &Machine{onEnter: make(map[Phase]func(Transition))}
	m.reset()
	return m
}

// reset returns to Intro and invalidates every pending continuation.
// Hooks and listeners stay registered.
func (m *Machine) reset() {
	m.state = RuntimeState{Phase: PhaseIntro}
	m.state.restore(0)
	m.epoch.Advance()
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase {
	return m.state.Phase
}

// State returns a copy of the runtime state.
func (m *Machine) State() RuntimeState {
	return m.state
}

// Epoch returns the guard for continuations started in the current phase.
func (m *Machine) Epoch() *anim.Epoch {
	return &m.epoch
}

// Can reports whether ev is legal in the current phase.
func (m *Machine) Can(ev Event) bool {
	_, ok := transitions[edge{m.state.Phase, ev}]
	return ok
}

// Dispatch applies ev. Illegal events are ignored and return false.
func (m *Machine) Dispatch(ev Event) bool {
	to, ok := transitions[edge{m.state.Phase, ev}]
	if !ok {
		return false
	}

	t := Transition{From: m.state.Phase, To: to, Event: ev}
	m.state.Phase = to
	m.epoch.Advance()

	if fn := m.onEnter[to]; fn != nil {
		fn(t)
	}
	for _, fn := range m.listeners {
		fn(t)
	}
	return true
}

// OnEnter sets the side effect run when p becomes active.
func (m *Machine) OnEnter(p Phase, fn func(Transition)) {
	m.onEnter[p] = fn
}

// Listen registers an observer called after every transition.
func (m *Machine) Listen(fn func(Transition)) {
	m.listeners = append(m.listeners, fn)
}
