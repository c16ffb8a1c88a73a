package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/random"
)

func TestAssignSizeAndRange(t *testing.T) {
	src := random.NewSecure()
	for players := 3; players <= 20; players++ {
		for impostors := 1; impostors < players; impostors++ {
			seats := Assign(src, players, impostors)
			require.Len(t, seats, impostors)
			seen := map[int]bool{}
			for _, s := range seats {
				assert.GreaterOrEqual(t, s, 0)
				assert.Less(t, s, players)
				assert.False(t, seen[s], "seat %d assigned twice", s)
				seen[s] = true
			}
		}
	}
}

func TestAssignIsUniform(t *testing.T) {
	const (
		players = 5
		draws   = 20000
	)
	counts := make([]int, players)
	src := random.NewSecure()
	for i := 0; i < draws; i++ {
		counts[Assign(src, players, 1)[0]]++
	}
	for seat, n := range counts {
		assert.InDelta(t, draws/players, n, draws/players*0.1, "seat %d", seat)
	}
}

func TestAssignScripted(t *testing.T) {
	// always swapping with index 0 rotates the identity permutation
	src := &random.Scripted{Values: []int{0}}
	assert.Equal(t, []int{1, 2}, Assign(src, 4, 2))
}

func TestAssignPanicsOnBadCounts(t *testing.T) {
	src := random.NewSecure()
	assert.Panics(t, func() { Assign(src, 2, 1) })
	assert.Panics(t, func() { Assign(src, 4, 0) })
	assert.Panics(t, func() { Assign(src, 4, 4) })
}

func TestBuildPlayers(t *testing.T) {
	players := BuildPlayers(4, []int{2}, "Lion", "Tiger")
	require.Len(t, players, 4)
	for i, p := range players {
		assert.Equal(t, i+1, p.ID)
		if i == 2 {
			assert.True(t, p.IsImpostor)
			assert.Equal(t, "Tiger", p.Word)
		} else {
			assert.False(t, p.IsImpostor)
			assert.Equal(t, "Lion", p.Word)
		}
	}
}

func TestRevealProgress(t *testing.T) {
	assert.Equal(t, 0, RevealProgress(models.RevealCursor{Index: 0, Step: models.StepReady}, 4))
	assert.Equal(t, 0, RevealProgress(models.RevealCursor{Index: 0, Step: models.StepRevealed}, 4))
	assert.Equal(t, 25, RevealProgress(models.RevealCursor{Index: 0, Step: models.StepPassing}, 4))
	assert.Equal(t, 100, RevealProgress(models.RevealCursor{Index: 3, Step: models.StepPassing}, 4))
	assert.Equal(t, 0, RevealProgress(models.RevealCursor{}, 0))
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]models.Phase]bool{
		{models.PhaseSetup, models.PhaseCategoryBrowser}: true,
		{models.PhaseCategoryBrowser, models.PhaseSetup}: true,
		{models.PhaseSetup, models.PhaseRoleReveal}:      true,
		{models.PhaseRoleReveal, models.PhaseDiscussion}: true,
		{models.PhaseDiscussion, models.PhaseResults}:    true,
		{models.PhaseResults, models.PhaseRoleReveal}:    true,
		{models.PhaseResults, models.PhaseSetup}:         true,
	}
	for _, from := range models.Phases {
		for _, to := range models.Phases {
			assert.Equal(t, allowed[[2]models.Phase{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAdvanceCursor(t *testing.T) {
	next, done := advanceCursor(models.RevealCursor{Index: 0, Step: models.StepPassing}, 3)
	assert.False(t, done)
	assert.Equal(t, models.RevealCursor{Index: 1, Step: models.StepReady}, next)

	next, done = advanceCursor(models.RevealCursor{Index: 2, Step: models.StepPassing}, 3)
	assert.True(t, done)
	assert.Equal(t, models.RevealCursor{Index: 2, Step: models.StepReady}, next)
}
