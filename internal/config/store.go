package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Store abstracts config persistence.
type Store interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	Path() string
}

// fileStore implements Store using a single TOML file.
type fileStore struct {
	path string
}

// NewStore creates a Store backed by the TOML file at path.
func NewStore(path string) Store {
	return &fileStore{path: path}
}

func (f *fileStore) Path() string { return f.path }

// Load reads the file over the defaults. A missing file yields the defaults.
// Keys the file sets that Config does not know are an error.
func (f *fileStore) Load() (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", f.path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("parsing config %s: %w %s", f.path, ErrUnknownKey, strings.Join(names, ", "))
	}
	return cfg, nil
}

func (f *fileStore) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

// Resolve loads the stored settings, applies environment overrides and
// validates the result.
func Resolve(store Store) (*Config, error) {
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", store.Path(), err)
	}
	return cfg, nil
}
