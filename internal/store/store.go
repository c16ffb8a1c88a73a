package store

import "errors"

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("store: key not found")

// KV is a durable key/value store. Each Put replaces the whole value atomically;
// readers never observe a partially written value.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Storage keys
const (
	KeyPrefs            = "impostor_prefs"
	KeyCustomCategories = "impostor_custom_categories"
	KeyBuiltInAdditions = "impostor_builtin_additions"
)
