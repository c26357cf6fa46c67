// Package config resolves the snapshot settings of a test package from an
// optional snapassert.yaml / snapassert.toml file and the environment.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// Config keys, in dotted form. Each one is overridden by its environment
// variable (see PathToEnvVar).
const (
	KeyVersion = "snapshot.version"
	KeyRefresh = "snapshot.refresh"
	KeyDebug   = "snapshot.debug"
)

// Config is the effective snapshot configuration.
type Config struct {
	Version string `json:"version" yaml:"version"` // Tag inserted into snapshot names
	Refresh bool   `json:"refresh" yaml:"refresh"` // Offer to refresh stale snapshots
	Debug   bool   `json:"debug" yaml:"debug"`     // Log every state transition

	Source string `json:"source,omitempty" yaml:"source,omitempty"` // Config file used, if any
}

// Load resolves the configuration for dir. A missing or malformed file
// leaves the defaults in place; environment variables win over the file.
func Load(dir string, environ []string) Config {
	var c Config
	if path, ok := Find(dir); ok {
		if fc, err := ParseFile(path); err == nil {
			c = fc
			c.Source = path
		}
	}
	return c.withEnv(environ)
}

func (c Config) withEnv(environ []string) Config {
	env := parseEnviron(environ)
	if v, ok := env[PathToEnvVar(KeyVersion)]; ok {
		c.Version = v
	}
	if v, ok := env[PathToEnvVar(KeyRefresh)]; ok {
		c.Refresh = parseBool(v)
	}
	if v, ok := env[PathToEnvVar(KeyDebug)]; ok {
		c.Debug = parseBool(v)
	}
	return c
}

// Store caches configurations per directory.
type Store struct {
	mu      sync.Mutex
	environ func() []string
	cache   map[string]Config
}

// NewStore creates a store reading the environment through environ.
func NewStore(environ func() []string) *Store {
	return &Store{environ: environ, cache: make(map[string]Config)}
}

// Default is the process-wide store on the real environment.
var Default = NewStore(os.Environ)

// Get returns the configuration for dir, loading it on first use.
func (s *Store) Get(dir string) Config {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.cache[dir]; ok {
		return c
	}
	c := Load(dir, s.environ())
	s.cache[dir] = c
	return c
}

// Reset drops every cached configuration.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]Config)
}
