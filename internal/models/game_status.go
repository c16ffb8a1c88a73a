package models

// Phase represents the current screen of the session
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseCategoryBrowser
	PhaseRoleReveal
	PhaseDiscussion
	PhaseResults
)

// Phases lists every phase in flow order
var Phases = []Phase{PhaseSetup, PhaseCategoryBrowser, PhaseRoleReveal, PhaseDiscussion, PhaseResults}

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseCategoryBrowser:
		return "categories"
	case PhaseRoleReveal:
		return "reveal"
	case PhaseDiscussion:
		return "discussion"
	case PhaseResults:
		return "results"
	}
	return "invalid"
}

// Valid reports whether p is one of the five phases
func (p Phase) Valid() bool {
	return p >= PhaseSetup && p <= PhaseResults
}

// HasRound reports whether a round is attached while in this phase
func (p Phase) HasRound() bool {
	return p == PhaseRoleReveal || p == PhaseDiscussion || p == PhaseResults
}

// RevealStep is the per-player step of the reveal sequence
type RevealStep int

const (
	StepReady RevealStep = iota
	StepRevealed
	StepPassing
)

func (s RevealStep) String() string {
	switch s {
	case StepReady:
		return "ready"
	case StepRevealed:
		return "revealed"
	case StepPassing:
		return "passing"
	}
	return "invalid"
}

// TimerState is the state of the discussion timer
type TimerState int

const (
	TimerSetup TimerState = iota
	TimerRunning
	TimerPaused
	TimerDone
)

func (s TimerState) String() string {
	switch s {
	case TimerSetup:
		return "setup"
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerDone:
		return "done"
	}
	return "invalid"
}
