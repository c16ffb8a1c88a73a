package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseStringCoversEveryPhase(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Phases {
		assert.True(t, p.Valid())
		assert.NotEqual(t, "invalid", p.String())
		seen[p.String()] = true
	}
	assert.Len(t, seen, 5)
	assert.False(t, Phase(99).Valid())
}

func TestHasRound(t *testing.T) {
	assert.False(t, PhaseSetup.HasRound())
	assert.False(t, PhaseCategoryBrowser.HasRound())
	assert.True(t, PhaseRoleReveal.HasRound())
	assert.True(t, PhaseDiscussion.HasRound())
	assert.True(t, PhaseResults.HasRound())
}

func TestPairJSONIsTuple(t *testing.T) {
	data, err := json.Marshal([]Pair{{"Messi", "Maradona"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[["Messi","Maradona"]]`, string(data))

	var back []Pair
	require.NoError(t, json.Unmarshal([]byte(`[["a","b"],["c","d"]]`), &back))
	assert.Equal(t, []Pair{{"a", "b"}, {"c", "d"}}, back)

	var bad Pair
	assert.Error(t, json.Unmarshal([]byte(`["only"]`), &bad))
}

func TestRoundCloneIsDeep(t *testing.T) {
	r := &Round{Players: []Player{{ID: 1, Word: "x"}, {ID: 2, IsImpostor: true, Word: "y"}}}
	c := r.Clone()
	c.Players[0].Word = "changed"
	assert.Equal(t, "x", r.Players[0].Word)
	assert.Equal(t, 1, r.ImpostorCount())
	assert.Equal(t, []Player{{ID: 2, IsImpostor: true, Word: "y"}}, r.Impostors())

	var nilRound *Round
	assert.Nil(t, nilRound.Clone())
}
