package words

import (
	"errors"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/random"
)

// ErrNoContent means no known category has a single pair. This is a
// misconfiguration of the packs, not a normal outcome.
var ErrNoContent = errors.New("words: no category has any word pairs")

// Content is the read side of the content library
type Content interface {
	Categories() []string
	Pairs(name string) []models.Pair
}

// PickFromCategories picks a category uniformly among the selected ones that
// currently have pairs, then a pair uniformly within it. If none of the
// selection resolves, it falls back to PickFromAny.
func PickFromCategories(src random.Source, c Content, selected []string) (models.Pick, error) {
	if pick, ok := pickAmong(src, c, selected); ok {
		return pick, nil
	}
	return PickFromAny(src, c)
}

// PickFromAny picks over every known category
func PickFromAny(src random.Source, c Content) (models.Pick, error) {
	if pick, ok := pickAmong(src, c, c.Categories()); ok {
		return pick, nil
	}
	return models.Pick{}, ErrNoContent
}

func pickAmong(src random.Source, c Content, names []string) (models.Pick, bool) {
	type candidate struct {
		name  string
		pairs []models.Pair
	}
	seen := make(map[string]bool, len(names))
	candidates := make([]candidate, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if pairs := c.Pairs(name); len(pairs) > 0 {
			candidates = append(candidates, candidate{name, pairs})
		}
	}
	if len(candidates) == 0 {
		return models.Pick{}, false
	}
	chosen := candidates[src.Intn(len(candidates))]
	pair := chosen.pairs[src.Intn(len(chosen.pairs))]
	return models.Pick{Pair: pair, Category: chosen.name}, true
}
