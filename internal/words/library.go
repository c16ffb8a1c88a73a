package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/random"
	"github.com/aaronzipp/impostor/internal/store"
)

// MinCustomPairs is the number of complete pairs a new custom category needs
const MinCustomPairs = 3

var (
	ErrNameRequired    = errors.New("category name is required")
	ErrNameTaken       = errors.New("a category with that name already exists")
	ErrTooFewPairs     = fmt.Errorf("at least %d complete pairs are required", MinCustomPairs)
	ErrNoPairs         = errors.New("no complete pairs to add")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotCustom       = errors.New("only custom categories can be changed")
)

// Library owns the built-in packs plus the two user stores and serves the
// resolved catalog. The catalog is rebuilt lazily after every write.
type Library struct {
	mu        sync.Mutex
	kv        store.KV
	base      []Pack
	additions map[string][]models.Pair
	custom    map[string][]models.Pair
	catalog   *Catalog
}

// NewLibrary loads the user stores from kv. Unreadable stores start empty.
func NewLibrary(kv store.KV, base []Pack) *Library {
	return &Library{
		kv:        kv,
		base:      base,
		additions: loadPairMap(kv, store.KeyBuiltInAdditions),
		custom:    loadPairMap(kv, store.KeyCustomCategories),
	}
}

func loadPairMap(kv store.KV, key string) map[string][]models.Pair {
	m := make(map[string][]models.Pair)
	data, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("WARN: reading %s: %v", key, err)
		}
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("WARN: %s is corrupt, starting empty: %v", key, err)
		return make(map[string][]models.Pair)
	}
	for name, pairs := range m {
		m[name] = CleanPairs(pairs)
	}
	return m
}

func (l *Library) savePairMap(key string, m map[string][]models.Pair) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("ERROR: encoding %s: %v", key, err)
		return
	}
	if err := l.kv.Put(key, data); err != nil {
		log.Printf("ERROR: writing %s: %v", key, err)
	}
}

func (l *Library) current() *Catalog {
	if l.catalog == nil {
		l.catalog = Resolve(l.base, l.additions, l.custom)
	}
	return l.catalog
}

// Catalog returns the current resolved snapshot
func (l *Library) Catalog() *Catalog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current()
}

func (l *Library) Categories() []string {
	return l.Catalog().Categories()
}

func (l *Library) Pairs(name string) []models.Pair {
	return l.Catalog().Pairs(name)
}

func (l *Library) IsBuiltIn(name string) bool {
	return l.Catalog().IsBuiltIn(name)
}

func (l *Library) Has(name string) bool {
	return l.Catalog().Has(name)
}

// Pick draws a pair from the selection using the current snapshot
func (l *Library) Pick(src random.Source, selected []string) (models.Pick, error) {
	return PickFromCategories(src, l.Catalog(), selected)
}

// CreateCategory adds a custom category and returns its trimmed name
func (l *Library) CreateCategory(name string, pairs []models.Pair) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	clean := CleanPairs(pairs)
	if len(clean) < MinCustomPairs {
		return "", ErrTooFewPairs
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current().Has(name) {
		return "", ErrNameTaken
	}
	l.custom[name] = clean
	l.catalog = nil
	l.savePairMap(store.KeyCustomCategories, l.custom)
	return name, nil
}

// UpdateCategory replaces the pairs of a custom category
func (l *Library) UpdateCategory(name string, pairs []models.Pair) error {
	clean := CleanPairs(pairs)
	if len(clean) < MinCustomPairs {
		return ErrTooFewPairs
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkCustom(name); err != nil {
		return err
	}
	l.custom[name] = clean
	l.catalog = nil
	l.savePairMap(store.KeyCustomCategories, l.custom)
	return nil
}

// DeleteCategory removes a custom category
func (l *Library) DeleteCategory(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkCustom(name); err != nil {
		return err
	}
	delete(l.custom, name)
	l.catalog = nil
	l.savePairMap(store.KeyCustomCategories, l.custom)
	return nil
}

// AddPairs appends complete pairs to any category. Built-in categories get
// them through the additions store so the packs themselves stay untouched.
func (l *Library) AddPairs(name string, pairs []models.Pair) (int, error) {
	clean := CleanPairs(pairs)
	if len(clean) == 0 {
		return 0, ErrNoPairs
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	cat := l.current()
	switch {
	case cat.IsBuiltIn(name):
		l.additions[name] = append(l.additions[name], clean...)
		l.savePairMap(store.KeyBuiltInAdditions, l.additions)
	case cat.Has(name):
		l.custom[name] = append(l.custom[name], clean...)
		l.savePairMap(store.KeyCustomCategories, l.custom)
	default:
		return 0, ErrUnknownCategory
	}
	l.catalog = nil
	return len(clean), nil
}

func (l *Library) checkCustom(name string) error {
	cat := l.current()
	if !cat.Has(name) {
		return ErrUnknownCategory
	}
	if cat.IsBuiltIn(name) {
		return ErrNotCustom
	}
	return nil
}

// CleanPairs trims both words and keeps only complete pairs whose words
// differ ignoring case
func CleanPairs(pairs []models.Pair) []models.Pair {
	out := make([]models.Pair, 0, len(pairs))
	for _, p := range pairs {
		p.Majority = strings.TrimSpace(p.Majority)
		p.Minority = strings.TrimSpace(p.Minority)
		if p.Majority == "" || p.Minority == "" {
			continue
		}
		if SameWord(p.Majority, p.Minority) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SameWord compares two words after trimming, ignoring case
func SameWord(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
