package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomCategory is the category label of rounds played with user-supplied words
const CustomCategory = "Custom"

// Round is the materialized outcome of one game instance (immutable once created)
type Round struct {
	ID           uuid.UUID
	MajorityWord string
	MinorityWord string
	Category     string
	Players      []Player
	CreatedAt    time.Time
}

// ImpostorCount returns how many players hold the minority word
func (r *Round) ImpostorCount() int {
	n := 0
	for _, p := range r.Players {
		if p.IsImpostor {
			n++
		}
	}
	return n
}

// Impostors returns the impostor players in seat order
func (r *Round) Impostors() []Player {
	out := make([]Player, 0, r.ImpostorCount())
	for _, p := range r.Players {
		if p.IsImpostor {
			out = append(out, p)
		}
	}
	return out
}

// IsCustom reports whether the words were supplied by the players
func (r *Round) IsCustom() bool {
	return r.Category == CustomCategory
}

// Clone returns a deep copy so callers cannot mutate session state
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	c := *r
	c.Players = append([]Player(nil), r.Players...)
	return &c
}
