package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileNames are the config files looked up, in order, in each directory.
var FileNames = []string{"snapassert.yaml", "snapassert.yml", "snapassert.toml"}

// configFile represents the config file structure.
type configFile struct {
	Snapshot snapshotEntry `yaml:"snapshot" toml:"snapshot"`
}

// snapshotEntry uses pointers so that unset keys keep their defaults.
type snapshotEntry struct {
	Version *string `yaml:"version" toml:"version"`
	Refresh *bool   `yaml:"refresh" toml:"refresh"`
	Debug   *bool   `yaml:"debug" toml:"debug"`
}

// Find returns the nearest config file in dir or one of its parents.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range FileNames {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
				return p, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ParseFile reads a YAML or TOML config file, chosen by extension.
func ParseFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if filepath.Ext(path) == ".toml" {
		return ParseTOML(content)
	}
	return ParseYAML(content)
}

// ParseYAML parses YAML content into a Config.
func ParseYAML(content []byte) (Config, error) {
	var cf configFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return cf.config(), nil
}

// ParseTOML parses TOML content into a Config.
func ParseTOML(content []byte) (Config, error) {
	var cf configFile
	if err := toml.Unmarshal(content, &cf); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("invalid TOML at line %d, column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("invalid TOML: %w", err)
	}
	return cf.config(), nil
}

func (cf configFile) config() Config {
	var c Config
	if cf.Snapshot.Version != nil {
		c.Version = *cf.Snapshot.Version
	}
	if cf.Snapshot.Refresh != nil {
		c.Refresh = *cf.Snapshot.Refresh
	}
	if cf.Snapshot.Debug != nil {
		c.Debug = *cf.Snapshot.Debug
	}
	return c
}
