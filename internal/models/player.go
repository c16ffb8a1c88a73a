package models

// Player is one seat in a round. Fixed at round creation.
type Player struct {
	ID         int    `json:"id"` // 1..N display label
	IsImpostor bool   `json:"isImpostor"`
	Word       string `json:"word"`
}

// RevealCursor tracks whose private reveal is active
type RevealCursor struct {
	Index int
	Step  RevealStep
}
