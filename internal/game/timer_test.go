package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/clock"
	"github.com/aaronzipp/impostor/internal/models"
)

func newTestTimer(seconds int) (*DiscussionTimer, *clock.Mock, *[]TimerEvent) {
	c := clock.NewMock(time.Unix(0, 0))
	var events []TimerEvent
	timer := NewDiscussionTimer(c, seconds, func(ev TimerEvent) { events = append(events, ev) })
	return timer, c, &events
}

func TestTimerCountsDown(t *testing.T) {
	timer, c, events := newTestTimer(30)
	require.True(t, timer.Start())
	assert.Equal(t, models.TimerRunning, timer.Snapshot().State)

	c.Add(5 * time.Second)
	assert.Equal(t, 25, timer.Snapshot().Remaining)
	assert.Len(t, *events, 5)

	c.Add(25 * time.Second)
	snap := timer.Snapshot()
	assert.Equal(t, models.TimerDone, snap.State)
	assert.Equal(t, 0, snap.Remaining)
	assert.Equal(t, 0, c.Pending())

	last := (*events)[len(*events)-1]
	assert.Equal(t, CueTimeUp, last.Cue)
}

func TestTimerTickCues(t *testing.T) {
	timer, c, events := newTestTimer(30)
	require.True(t, timer.Start())
	c.Add(30 * time.Second)
	require.Len(t, *events, 30)

	var ticks []int
	for _, ev := range *events {
		if ev.Cue == CueTick {
			ticks = append(ticks, ev.Remaining)
		}
	}
	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, ticks)
}

func TestTimerPauseResume(t *testing.T) {
	timer, c, _ := newTestTimer(60)
	require.True(t, timer.Start())
	c.Add(10 * time.Second)

	require.True(t, timer.Pause())
	assert.False(t, timer.Pause(), "pausing twice is a no-op")
	before := timer.Snapshot()
	assert.Equal(t, 0, c.Pending(), "pause cancels the pending tick")

	c.Add(time.Minute)
	assert.Equal(t, before, timer.Snapshot())

	require.True(t, timer.Resume())
	assert.False(t, timer.Resume())
	assert.Equal(t, before.Remaining, timer.Snapshot().Remaining)

	c.Add(time.Second)
	assert.Equal(t, before.Remaining-1, timer.Snapshot().Remaining)
}

func TestTimerStopKeepsRemaining(t *testing.T) {
	timer, c, events := newTestTimer(60)
	require.True(t, timer.Start())
	c.Add(15 * time.Second)
	require.True(t, timer.Stop())

	snap := timer.Snapshot()
	assert.Equal(t, models.TimerDone, snap.State)
	assert.Equal(t, 45, snap.Remaining)

	n := len(*events)
	c.Add(time.Minute)
	assert.Len(t, *events, n, "no tick after stop")
	assert.False(t, timer.Stop())
}

func TestTimerStopWhilePaused(t *testing.T) {
	timer, _, _ := newTestTimer(60)
	require.True(t, timer.Start())
	require.True(t, timer.Pause())
	assert.True(t, timer.Stop())
	assert.Equal(t, models.TimerDone, timer.Snapshot().State)
}

func TestTimerSkipAndSetDuration(t *testing.T) {
	timer, _, _ := newTestTimer(60)
	require.True(t, timer.SetDuration(90))
	assert.Equal(t, 90, timer.Snapshot().Remaining)

	require.True(t, timer.Skip())
	assert.Equal(t, models.TimerDone, timer.Snapshot().State)
	assert.False(t, timer.Skip())
	assert.False(t, timer.Start())
	assert.False(t, timer.SetDuration(120))

	timer.Reset(120)
	snap := timer.Snapshot()
	assert.Equal(t, models.TimerSetup, snap.State)
	assert.Equal(t, 120, snap.Remaining)
	assert.Equal(t, 120, snap.Duration)
}

func TestTimerStaleCallbackIsIgnored(t *testing.T) {
	timer, c, events := newTestTimer(60)
	require.True(t, timer.Start())
	// simulate a tick that fired just before the pause took effect
	stale := timer.gen
	require.True(t, timer.Pause())
	timer.tick(stale)

	assert.Equal(t, 60, timer.Snapshot().Remaining)
	assert.Empty(t, *events)
	assert.Equal(t, 0, c.Pending())
}

func TestInvalidTimerTransitions(t *testing.T) {
	timer, _, _ := newTestTimer(60)
	assert.False(t, timer.Pause())
	assert.False(t, timer.Resume())
}

func TestTimerStopFromSetup(t *testing.T) {
	timer, c, events := newTestTimer(60)
	require.True(t, timer.Stop())
	snap := timer.Snapshot()
	assert.Equal(t, models.TimerDone, snap.State)
	assert.Equal(t, 60, snap.Remaining)
	assert.False(t, timer.Stop())

	c.Add(5 * time.Second)
	assert.Empty(t, *events)
}
