package game

import (
	"sync"
	"time"

	"github.com/aaronzipp/impostor/internal/clock"
)

// Stage is one named step of a timed sequence
type Stage struct {
	Name   string
	Offset time.Duration
	Cue    Cue
}

// Sequence runs stages at fixed offsets from Start on a clock. Cancel drops
// every stage that has not fired yet.
type Sequence struct {
	mu      sync.Mutex
	clock   clock.Clock
	stages  []Stage
	reached int
	gen     uint64
	timers  []clock.Timer
	notify  func(Stage)
}

// NewSequence creates a stopped sequence. notify runs after each stage
// without the sequence lock held.
func NewSequence(c clock.Clock, stages []Stage, notify func(Stage)) *Sequence {
	return &Sequence{clock: c, stages: stages, reached: -1, notify: notify}
}

// Start restarts the sequence from the beginning
func (s *Sequence) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.reached = -1
	gen := s.gen
	for i, st := range s.stages {
		i := i
		s.timers = append(s.timers, s.clock.AfterFunc(st.Offset, func() { s.fire(gen, i) }))
	}
}

func (s *Sequence) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.reached = -1
}

// Current returns the name of the latest stage reached, or "" before the first
func (s *Sequence) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reached < 0 {
		return ""
	}
	return s.stages[s.reached].Name
}

// must be called with s.mu held
func (s *Sequence) cancel() {
	s.gen++
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func (s *Sequence) fire(gen uint64, i int) {
	s.mu.Lock()
	if gen != s.gen || i <= s.reached {
		s.mu.Unlock()
		return
	}
	s.reached = i
	st := s.stages[i]
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(st)
	}
}
