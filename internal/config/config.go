// Package config loads shellmark's optional configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"shellmark/internal/storage"
)

const configFile = "config.yaml"

// DefaultRefreshRate is the heartbeat interval of the browse UI when the
// config file does not override it.
const DefaultRefreshRate = time.Second

// Config carries the optional knobs of the interactive browser.
type Config struct {
	// Editor overrides $VISUAL/$EDITOR for the open-in-editor action.
	Editor string `yaml:"editor"`
	// RefreshRateMS tunes the browse heartbeat, in milliseconds.
	RefreshRateMS int `yaml:"refresh_rate_ms"`
}

// DefaultPath returns the config file location inside the data directory.
func DefaultPath() (string, error) {
	dir, err := storage.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config at path. A missing file yields the zero config;
// malformed YAML is an error.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from its default location.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// RefreshRate returns the configured heartbeat interval.
func (c Config) RefreshRate() time.Duration {
	if c.RefreshRateMS <= 0 {
		return DefaultRefreshRate
	}
	return time.Duration(c.RefreshRateMS) * time.Millisecond
}

// ResolveEditor returns the editor command to use, preferring the config
// override, then $VISUAL, then $EDITOR. Empty means no editor is set.
func (c Config) ResolveEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}

// EditorSet reports whether any editor is configured.
func (c Config) EditorSet() bool { return c.ResolveEditor() != "" }
