package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aaronzipp/impostor/internal/models"
)

//go:embed packs.json
var builtInJSON []byte

// Pack is a named collection of word pairs
type Pack struct {
	Name  string        `json:"name"`
	Pairs []models.Pair `json:"pairs"`
}

// BuiltIn returns the packs compiled into the binary
func BuiltIn() []Pack {
	packs, err := parsePacks(builtInJSON)
	if err != nil {
		panic(fmt.Sprintf("words: embedded packs are malformed: %v", err))
	}
	return packs
}

// LoadPacks reads packs from r
func LoadPacks(r io.Reader) ([]Pack, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parsePacks(data)
}

// LoadPacksFile reads packs from a JSON file on disk
func LoadPacksFile(path string) ([]Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	packs, err := LoadPacks(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return packs, nil
}

func parsePacks(data []byte) ([]Pack, error) {
	var packs []Pack
	if err := json.Unmarshal(data, &packs); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(packs))
	for i, p := range packs {
		if p.Name == "" {
			return nil, fmt.Errorf("pack with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate pack %q", p.Name)
		}
		seen[p.Name] = true
		// blank words and pairs that only differ in case would deal the
		// impostor the majority word
		packs[i].Pairs = CleanPairs(p.Pairs)
	}
	return packs, nil
}
