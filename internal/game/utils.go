package game

import (
	"fmt"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/prefs"
	"github.com/aaronzipp/impostor/internal/random"
)

// Assign returns the zero-based seats of the impostors. It shuffles the
// identity permutation with an unbiased Fisher–Yates pass and takes the first
// impostorCount entries, so every subset of that size is equally likely.
// Invalid counts are a programming error and panic.
func Assign(src random.Source, playerCount, impostorCount int) []int {
	if playerCount < prefs.MinPlayers || impostorCount < 1 || impostorCount >= playerCount {
		panic(fmt.Sprintf("game: cannot assign %d impostors among %d players", impostorCount, playerCount))
	}
	seats := make([]int, playerCount)
	for i := range seats {
		seats[i] = i
	}
	for i := playerCount - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		seats[i], seats[j] = seats[j], seats[i]
	}
	return seats[:impostorCount]
}

// BuildPlayers creates players 1..playerCount. Impostor seats get the
// minority word and everyone else the majority word.
func BuildPlayers(playerCount int, impostorSeats []int, majority, minority string) []models.Player {
	impostor := make(map[int]bool, len(impostorSeats))
	for _, seat := range impostorSeats {
		impostor[seat] = true
	}
	players := make([]models.Player, playerCount)
	for i := range players {
		players[i] = models.Player{ID: i + 1, IsImpostor: impostor[i], Word: majority}
		if impostor[i] {
			players[i].Word = minority
		}
	}
	return players
}

// RevealProgress returns the percentage of the reveal pass completed. A
// player counts as done once they have hidden their word.
func RevealProgress(cursor models.RevealCursor, playerCount int) int {
	if playerCount <= 0 {
		return 0
	}
	done := cursor.Index
	if cursor.Step == models.StepPassing {
		done++
	}
	return done * 100 / playerCount
}
