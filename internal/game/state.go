package game

import (
	"github.com/aaronzipp/impostor/internal/models"
)

// transitions lists every phase change the session allows
var transitions = map[models.Phase][]models.Phase{
	models.PhaseSetup:           {models.PhaseCategoryBrowser, models.PhaseRoleReveal},
	models.PhaseCategoryBrowser: {models.PhaseSetup},
	models.PhaseRoleReveal:      {models.PhaseDiscussion},
	models.PhaseDiscussion:      {models.PhaseResults},
	models.PhaseResults:         {models.PhaseRoleReveal, models.PhaseSetup},
}

// CanTransition reports whether the session may move from one phase to another
func CanTransition(from, to models.Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// EventType says what changed
type EventType int

const (
	// EventState means the phase, the configuration or the reveal cursor changed
	EventState EventType = iota
	// EventTimer means the discussion timer ticked
	EventTimer
	// EventStage means the results reveal reached a new stage
	EventStage
)

func (t EventType) String() string {
	switch t {
	case EventState:
		return "state"
	case EventTimer:
		return "timer"
	case EventStage:
		return "stage"
	}
	return "invalid"
}

// Event is delivered to the session notifier after the session lock is released
type Event struct {
	Type  EventType
	Phase models.Phase
	Cue   Cue
	Timer TimerSnapshot
	Stage string
}

// advanceCursor moves the reveal cursor one step. It reports whether the
// last player has finished, in which case the step goes back to Ready.
func advanceCursor(c models.RevealCursor, playerCount int) (models.RevealCursor, bool) {
	if c.Index+1 >= playerCount {
		return models.RevealCursor{Index: c.Index, Step: models.StepReady}, true
	}
	return models.RevealCursor{Index: c.Index + 1, Step: models.StepReady}, false
}
