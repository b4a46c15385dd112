// Package config handles persistent user configuration for gandi.
//
// Configuration is stored as YAML at ~/.config/gandi/config.yaml (or the
// platform-equivalent path returned by os.UserConfigDir). API keys are not
// stored here; see Settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDir   = "gandi"
	fileName = "config.yaml"
)

var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	API     EndpointConfig `yaml:"api,omitempty"`
	APIRest EndpointConfig `yaml:"apirest,omitempty"`

	// Output is the default output format of read commands.
	Output string `yaml:"output,omitempty"`
}

// EndpointConfig holds the settings of one transport.
type EndpointConfig struct {
	// Host overrides the transport endpoint.
	Host string `yaml:"host,omitempty"`

	// Handle is the caller's contact handle, cached after the first
	// domain registration.
	Handle string `yaml:"handle,omitempty"`
}

// Path returns the config file path: the SetPath override, or
// <UserConfigDir>/gandi/config.yaml.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file at Path. A missing file yields an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path. Unknown output formats are
// rejected so that a hand-edited file fails early.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	switch cfg.Output {
	case "", "table", "json":
	default:
		return nil, fmt.Errorf("config: %s: invalid output format %q", path, cfg.Output)
	}
	return &cfg, nil
}

// Save writes the config file at Path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path through a temporary file, so that a
// failed write never leaves a truncated config behind.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
