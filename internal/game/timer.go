package game

import (
	"sync"
	"time"

	"github.com/aaronzipp/impostor/internal/clock"
	"github.com/aaronzipp/impostor/internal/models"
)

// TimerSnapshot is a read-only copy of the timer state
type TimerSnapshot struct {
	State     models.TimerState
	Duration  int
	Remaining int
}

// TimerEvent is emitted on every scheduled tick
type TimerEvent struct {
	TimerSnapshot
	Cue Cue
}

// DiscussionTimer counts down the discussion in whole seconds.
//
// Every transition away from Running stops the pending tick and bumps the
// generation, so a callback that already fired cannot change state.
type DiscussionTimer struct {
	mu        sync.Mutex
	clock     clock.Clock
	duration  int
	remaining int
	state     models.TimerState
	gen       uint64
	pending   clock.Timer
	lastCue   time.Time
	notify    func(TimerEvent)
}

// NewDiscussionTimer creates an idle timer. notify is called after each tick
// without the timer lock held.
func NewDiscussionTimer(c clock.Clock, seconds int, notify func(TimerEvent)) *DiscussionTimer {
	return &DiscussionTimer{
		clock:     c,
		duration:  seconds,
		remaining: seconds,
		state:     models.TimerSetup,
		notify:    notify,
	}
}

func (t *DiscussionTimer) Snapshot() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

func (t *DiscussionTimer) snapshot() TimerSnapshot {
	return TimerSnapshot{State: t.state, Duration: t.duration, Remaining: t.remaining}
}

// Reset cancels any countdown and returns to Setup with the given length
func (t *DiscussionTimer) Reset(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancel()
	t.duration = seconds
	t.remaining = seconds
	t.state = models.TimerSetup
	t.lastCue = time.Time{}
}

// SetDuration changes the configured length. Only allowed before starting.
func (t *DiscussionTimer) SetDuration(seconds int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != models.TimerSetup {
		return false
	}
	t.duration = seconds
	t.remaining = seconds
	return true
}

func (t *DiscussionTimer) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != models.TimerSetup {
		return false
	}
	t.remaining = t.duration
	t.state = models.TimerRunning
	t.schedule()
	return true
}

func (t *DiscussionTimer) Pause() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != models.TimerRunning {
		return false
	}
	t.cancel()
	t.state = models.TimerPaused
	return true
}

func (t *DiscussionTimer) Resume() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != models.TimerPaused {
		return false
	}
	t.state = models.TimerRunning
	t.schedule()
	return true
}

// Stop ends the countdown early, keeping the remaining time. From Setup it
// behaves like Skip.
func (t *DiscussionTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == models.TimerDone {
		return false
	}
	t.cancel()
	t.state = models.TimerDone
	return true
}

// Skip goes straight from Setup to Done without counting
func (t *DiscussionTimer) Skip() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != models.TimerSetup {
		return false
	}
	t.state = models.TimerDone
	return true
}

// Cancel drops any pending tick without changing the visible state
func (t *DiscussionTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancel()
}

// must be called with t.mu held
func (t *DiscussionTimer) cancel() {
	t.gen++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// must be called with t.mu held
func (t *DiscussionTimer) schedule() {
	gen := t.gen
	t.pending = t.clock.AfterFunc(TickInterval, func() { t.tick(gen) })
}

func (t *DiscussionTimer) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.state != models.TimerRunning {
		t.mu.Unlock()
		return
	}

	t.remaining--
	var cue Cue
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = models.TimerDone
		t.pending = nil
		cue = CueTimeUp
	} else {
		if t.remaining <= CueWindowSeconds {
			now := t.clock.Now()
			if t.lastCue.IsZero() || now.Sub(t.lastCue) > CueMinGap {
				cue = CueTick
				t.lastCue = now
			}
		}
		t.schedule()
	}
	ev := TimerEvent{TimerSnapshot: t.snapshot(), Cue: cue}
	t.mu.Unlock()

	if t.notify != nil {
		t.notify(ev)
	}
}
