package words

import (
	"sort"

	"github.com/aaronzipp/impostor/internal/models"
)

// Catalog is the unified category → pairs view merged from the built-in packs,
// the built-in additions and the custom categories. It is read-only.
type Catalog struct {
	names   []string
	pairs   map[string][]models.Pair
	builtIn map[string]bool
}

// Resolve merges the three sources. Built-in categories come first in pack
// order with their additions appended; custom categories follow sorted by name.
// Additions for unknown categories and custom entries shadowing a built-in name
// are ignored, so base content is never overwritten.
func Resolve(base []Pack, additions, custom map[string][]models.Pair) *Catalog {
	c := &Catalog{
		pairs:   make(map[string][]models.Pair, len(base)+len(custom)),
		builtIn: make(map[string]bool, len(base)),
	}
	for _, p := range base {
		merged := make([]models.Pair, 0, len(p.Pairs)+len(additions[p.Name]))
		merged = append(merged, p.Pairs...)
		merged = append(merged, additions[p.Name]...)
		c.names = append(c.names, p.Name)
		c.pairs[p.Name] = merged
		c.builtIn[p.Name] = true
	}

	customNames := make([]string, 0, len(custom))
	for name := range custom {
		if c.builtIn[name] {
			continue
		}
		customNames = append(customNames, name)
	}
	sort.Strings(customNames)
	for _, name := range customNames {
		c.names = append(c.names, name)
		c.pairs[name] = append([]models.Pair(nil), custom[name]...)
	}
	return c
}

// Categories returns every known category name in display order
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.names...)
}

// Pairs returns the pairs of a category, or nil if unknown
func (c *Catalog) Pairs(name string) []models.Pair {
	p, ok := c.pairs[name]
	if !ok {
		return nil
	}
	return append([]models.Pair(nil), p...)
}

// Has reports whether the category is known
func (c *Catalog) Has(name string) bool {
	_, ok := c.pairs[name]
	return ok
}

// IsBuiltIn reports whether the category ships with the binary
func (c *Catalog) IsBuiltIn(name string) bool {
	return c.builtIn[name]
}
