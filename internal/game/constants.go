package game

import "time"

const (
	// TickInterval is how often a running discussion timer counts down
	TickInterval = time.Second

	// CueWindowSeconds is the number of final seconds that emit a tick cue
	CueWindowSeconds = 10

	// CueMinGap is the minimum clock time between two tick cues
	CueMinGap = 800 * time.Millisecond
)

// Cue is a short sound the page should play. Cues are never emitted while
// sound is disabled.
type Cue string

const (
	CueTap      Cue = "tap"
	CueReveal   Cue = "reveal"
	CuePause    Cue = "pause"
	CueTick     Cue = "tick"
	CueTimeUp   Cue = "timeup"
	CueDramatic Cue = "dramatic"
	CueSuccess  Cue = "success"
)

// Results reveal stages
const (
	StageSuspense  = "suspense"
	StageCategory  = "category"
	StageImpostors = "impostors"
	StageComplete  = "complete"
)

// ResultStages is the schedule of the results reveal, relative to entering Results
var ResultStages = []Stage{
	{Name: StageSuspense, Offset: 500 * time.Millisecond, Cue: CueDramatic},
	{Name: StageCategory, Offset: 1400 * time.Millisecond},
	{Name: StageImpostors, Offset: 2400 * time.Millisecond, Cue: CueDramatic},
	{Name: StageComplete, Offset: 3200 * time.Millisecond, Cue: CueSuccess},
}
