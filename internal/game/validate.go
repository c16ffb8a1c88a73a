package game

import (
	"errors"
	"strings"

	"github.com/aaronzipp/impostor/internal/prefs"
	"github.com/aaronzipp/impostor/internal/words"
)

var (
	ErrTooFewPlayers    = errors.New("at least 3 players are required")
	ErrTooFewImpostors  = errors.New("at least 1 impostor is required")
	ErrTooManyImpostors = errors.New("there must be fewer impostors than players")
	ErrCustomEmpty      = errors.New("both custom words are required")
	ErrCustomSame       = errors.New("the custom words must be different")
)

// Config is the full session configuration: the persisted preferences plus
// the custom word settings, which live only as long as the process
type Config struct {
	prefs.Prefs
	UseCustomWords bool
	CustomMajority string
	CustomMinority string
}

// Validate checks that a round can be generated from cfg. It is the last
// check before generation; the setters already keep the counts in range.
func Validate(cfg Config) error {
	if cfg.PlayerCount < prefs.MinPlayers {
		return ErrTooFewPlayers
	}
	if cfg.ImpostorCount < prefs.MinImpostors {
		return ErrTooFewImpostors
	}
	if cfg.ImpostorCount >= cfg.PlayerCount {
		return ErrTooManyImpostors
	}
	if cfg.UseCustomWords {
		majority := strings.TrimSpace(cfg.CustomMajority)
		minority := strings.TrimSpace(cfg.CustomMinority)
		if majority == "" || minority == "" {
			return ErrCustomEmpty
		}
		if words.SameWord(majority, minority) {
			return ErrCustomSame
		}
	}
	return nil
}
