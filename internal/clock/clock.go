package clock

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the callback from running.
	Stop() bool
}

// Clock schedules callbacks and reports the current time.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type wall struct {
	c clock.Clock
}

// Real returns a Clock backed by the system time
func Real() Clock {
	return wall{c: clock.New()}
}

func (w wall) Now() time.Time {
	return w.c.Now()
}

func (w wall) AfterFunc(d time.Duration, f func()) Timer {
	return w.c.AfterFunc(d, f)
}

// Mock is a Clock that only moves when Add is called. The underlying
// clock.Mock runs callbacks on their own goroutines; Add waits for every
// callback that falls due before moving on, so callbacks scheduled by a
// callback inside the window also run and effects are visible on return.
type Mock struct {
	mock *clock.Mock

	mu     sync.Mutex
	timers []*mockTimer
}

type mockTimer struct {
	m     *Mock
	at    time.Time
	inner *clock.Timer
	done  chan struct{}
	once  sync.Once
}

// NewMock creates a mock clock starting at start
func NewMock(start time.Time) *Mock {
	m := clock.NewMock()
	m.Set(start)
	return &Mock{mock: m}
}

func (m *Mock) Now() time.Time {
	return m.mock.Now()
}

func (m *Mock) AfterFunc(d time.Duration, f func()) Timer {
	t := &mockTimer{m: m, done: make(chan struct{})}
	m.mu.Lock()
	t.at = m.mock.Now().Add(d)
	m.timers = append(m.timers, t)
	m.mu.Unlock()

	t.inner = m.mock.AfterFunc(d, func() {
		defer t.finish()
		f()
	})
	return t
}

// Pending returns the number of callbacks still scheduled
func (m *Mock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Add moves the clock forward by d, one due time at a time.
func (m *Mock) Add(d time.Duration) {
	target := m.mock.Now().Add(d)
	for {
		at, due := m.nextDue(target)
		if len(due) == 0 {
			break
		}
		m.mock.Add(max(at.Sub(m.mock.Now()), 0))
		for _, t := range due {
			<-t.done
		}
	}
	m.mock.Set(target)
}

func (m *Mock) nextDue(target time.Time) (time.Time, []*mockTimer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var at time.Time
	var due []*mockTimer
	for _, t := range m.timers {
		if t.at.After(target) {
			continue
		}
		switch {
		case len(due) == 0 || t.at.Before(at):
			at, due = t.at, []*mockTimer{t}
		case t.at.Equal(at):
			due = append(due, t)
		}
	}
	return at, due
}

func (t *mockTimer) finish() {
	t.once.Do(func() {
		t.m.mu.Lock()
		for i, other := range t.m.timers {
			if other == t {
				t.m.timers = append(t.m.timers[:i], t.m.timers[i+1:]...)
				break
			}
		}
		t.m.mu.Unlock()
		close(t.done)
	})
}

func (t *mockTimer) Stop() bool {
	if !t.inner.Stop() {
		return false
	}
	t.finish()
	return true
}
