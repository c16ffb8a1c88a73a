package prefs

import (
	"encoding/json"
	"errors"
	"log"

	"golang.org/x/text/language"

	"github.com/aaronzipp/impostor/internal/store"
)

// Limits of the session configuration
const (
	MinPlayers       = 3
	MaxPlayers       = 20
	MinImpostors     = 1
	MinTimerSeconds  = 30
	MaxTimerSeconds  = 600
	TimerStepSeconds = 30
)

// Default values used on first run and on reset
const (
	DefaultLanguage      = "en"
	DefaultPlayerCount   = 4
	DefaultImpostorCount = 1
	DefaultTimerSeconds  = 180
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Prefs is the persisted part of the session configuration
type Prefs struct {
	Language           string   `json:"language"`
	PlayerCount        int      `json:"playerCount"`
	ImpostorCount      int      `json:"impostorCount"`
	SelectedCategories []string `json:"selectedCategories"`
	TimerDuration      int      `json:"timerDuration"`
	DarkMode           bool     `json:"darkMode"`
	SoundEnabled       bool     `json:"soundEnabled"`
}

// Defaults returns the first-run preferences with every known category selected
func Defaults(known []string) Prefs {
	return Prefs{
		Language:           DefaultLanguage,
		PlayerCount:        DefaultPlayerCount,
		ImpostorCount:      DefaultImpostorCount,
		SelectedCategories: append([]string(nil), known...),
		TimerDuration:      DefaultTimerSeconds,
		DarkMode:           true,
		SoundEnabled:       true,
	}
}

// Sanitize clamps every field into range and filters the selection against
// the known categories. An empty selection after filtering becomes all known.
func (p Prefs) Sanitize(known []string) Prefs {
	p.Language = NormalizeLanguage(p.Language)
	p.PlayerCount = ClampPlayers(p.PlayerCount)
	p.ImpostorCount = ClampImpostors(p.ImpostorCount, p.PlayerCount)
	p.TimerDuration = ClampTimer(p.TimerDuration)
	p.SelectedCategories = FilterKnown(p.SelectedCategories, known)
	if len(p.SelectedCategories) == 0 {
		p.SelectedCategories = append([]string(nil), known...)
	}
	return p
}

// MaxImpostors returns the largest impostor count allowed for players
func MaxImpostors(players int) int {
	return players / 2
}

func ClampPlayers(n int) int {
	return clamp(n, MinPlayers, MaxPlayers)
}

func ClampImpostors(n, players int) int {
	return clamp(n, MinImpostors, max(MinImpostors, MaxImpostors(players)))
}

// ClampTimer rounds seconds down to a whole step and clamps it into range
func ClampTimer(seconds int) int {
	seconds -= seconds % TimerStepSeconds
	return clamp(seconds, MinTimerSeconds, MaxTimerSeconds)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// FilterKnown keeps the names present in known, in their original order, without duplicates
func FilterKnown(names, known []string) []string {
	ok := make(map[string]bool, len(known))
	for _, k := range known {
		ok[k] = true
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if ok[n] {
			out = append(out, n)
			delete(ok, n)
		}
	}
	return out
}

// NormalizeLanguage maps any BCP 47 tag or Accept-Language value onto a
// supported language, defaulting to English
func NormalizeLanguage(s string) string {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// Store persists Prefs under a single key
type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the stored preferences. Missing fields take their default;
// a missing or corrupt record yields full defaults.
func (s *Store) Load(known []string) Prefs {
	p := Defaults(known)
	data, err := s.kv.Get(store.KeyPrefs)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("WARN: reading preferences: %v", err)
		}
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("WARN: preferences are corrupt, using defaults: %v", err)
		return Defaults(known)
	}
	return p.Sanitize(known)
}

// Save writes p. Failures are logged and otherwise ignored.
func (s *Store) Save(p Prefs) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("ERROR: encoding preferences: %v", err)
		return
	}
	if err := s.kv.Put(store.KeyPrefs, data); err != nil {
		log.Printf("ERROR: saving preferences: %v", err)
	}
}

// Reset removes the stored record and returns the defaults
func (s *Store) Reset(known []string) Prefs {
	if err := s.kv.Delete(store.KeyPrefs); err != nil {
		log.Printf("ERROR: clearing preferences: %v", err)
	}
	return Defaults(known)
}
