package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/impostor/internal/clock"
)

func TestSequenceRunsStagesInOrder(t *testing.T) {
	c := clock.NewMock(time.Unix(0, 0))
	var fired []string
	seq := NewSequence(c, ResultStages, func(st Stage) { fired = append(fired, st.Name) })

	seq.Start()
	assert.Equal(t, "", seq.Current())

	c.Add(500 * time.Millisecond)
	assert.Equal(t, StageSuspense, seq.Current())

	c.Add(time.Second)
	assert.Equal(t, StageCategory, seq.Current())
	assert.Equal(t, []string{StageSuspense, StageCategory}, fired)

	c.Add(2 * time.Second)
	assert.Equal(t, StageComplete, seq.Current())
	assert.Equal(t, []string{StageSuspense, StageCategory, StageImpostors, StageComplete}, fired)
}

func TestSequenceCancel(t *testing.T) {
	c := clock.NewMock(time.Unix(0, 0))
	var fired []string
	seq := NewSequence(c, ResultStages, func(st Stage) { fired = append(fired, st.Name) })

	seq.Start()
	c.Add(time.Second)
	seq.Cancel()
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, "", seq.Current())

	c.Add(5 * time.Second)
	assert.Equal(t, []string{StageSuspense}, fired)

	// restarting begins from a clean schedule
	seq.Start()
	c.Add(500 * time.Millisecond)
	assert.Equal(t, StageSuspense, seq.Current())
	assert.Equal(t, []string{StageSuspense, StageSuspense}, fired)
}

func TestSequenceStaleFire(t *testing.T) {
	c := clock.NewMock(time.Unix(0, 0))
	seq := NewSequence(c, ResultStages, nil)
	seq.Start()
	stale := seq.gen
	seq.Start()
	seq.fire(stale, 3)
	assert.Equal(t, "", seq.Current())
}
