package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aaronzipp/impostor/internal/store"
	"github.com/aaronzipp/impostor/internal/words"
)

// Store backends
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

const (
	DefaultAddr    = "127.0.0.1:8080"
	DefaultDataDir = "./data"
)

// Config holds process settings read from the environment
type Config struct {
	Addr      string
	Store     string
	DataDir   string
	PacksFile string
	PublicURL string
	Debug     bool
}

// Load reads .env (if present) into the environment and then builds the config
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function, applying defaults
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:      strings.TrimSpace(getenv("ADDR")),
		Store:     strings.ToLower(strings.TrimSpace(getenv("STORE"))),
		DataDir:   strings.TrimSpace(getenv("DATA_DIR")),
		PacksFile: strings.TrimSpace(getenv("PACKS_FILE")),
		PublicURL: strings.TrimSpace(getenv("PUBLIC_URL")),
		Debug:     getenv("DEBUG") != "",
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Store == "" {
		cfg.Store = StoreFile
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	switch cfg.Store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE %q (want file, sqlite or memory)", cfg.Store)
	}

	if cfg.PublicURL == "" {
		u, err := publicURL(cfg.Addr)
		if err != nil {
			return Config{}, err
		}
		cfg.PublicURL = u
	}
	return cfg, nil
}

func publicURL(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid ADDR %q: %w", addr, err)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port), nil
}

// OpenStore opens the configured key/value backend
func (c Config) OpenStore() (store.KV, error) {
	switch c.Store {
	case StoreMemory:
		return store.NewMemory(), nil
	case StoreSQLite:
		if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		db, err := store.OpenSQLite(filepath.Join(c.DataDir, "impostor.db"))
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		f, err := store.NewFile(c.DataDir)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

// Packs returns the built-in packs, or the ones in PacksFile when it is set
func (c Config) Packs() ([]words.Pack, error) {
	if c.PacksFile == "" {
		return words.BuiltIn(), nil
	}
	packs, err := words.LoadPacksFile(c.PacksFile)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d word packs from %s", len(packs), c.PacksFile)
	return packs, nil
}
