package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/grigouze/gandi.cli/internal/services/auth"
)

// Secret keys. Their values live in the credential store, never in the
// config file.
const (
	KeyAPIKey     = "api.key"
	KeyAPIRestKey = "apirest.key"
)

// secretEnv maps secret keys to the environment variables overriding them.
var secretEnv = map[string]string{
	KeyAPIKey:     "GANDI_API_KEY",
	KeyAPIRestKey: "GANDI_APIREST_KEY",
}

// IsSecret reports whether key is stored in the credential store.
func IsSecret(key string) bool {
	_, ok := secretEnv[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// SecretEnv returns the environment variable overriding a secret key, or
// "" for keys that are not secrets.
func SecretEnv(key string) string {
	return secretEnv[strings.ToLower(strings.TrimSpace(key))]
}

// SecretKeys returns the secret key names in a stable order.
func SecretKeys() []string {
	return []string{KeyAPIKey, KeyAPIRestKey}
}

// Store reads and writes configuration values by key.
type Store interface {
	Get(key string) string
	Set(key, value string) error
}

// Settings is the Store used by the CLI. It layers three sources:
// environment overrides and the credential store for secrets, then the
// YAML file for every other key.
type Settings struct {
	cfg     *Config
	secrets auth.Store
	getenv  func(string) string
}

// NewSettings builds a Settings over an already loaded config.
func NewSettings(cfg *Config, secrets auth.Store) *Settings {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Settings{cfg: cfg, secrets: secrets, getenv: os.Getenv}
}

// Open loads the config file and layers the given credential store on it.
func Open(secrets auth.Store) (*Settings, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return NewSettings(cfg, secrets), nil
}

// Config returns the underlying file configuration.
func (s *Settings) Config() *Config { return s.cfg }

// Get returns the value of key, or "" when unset, unknown or unreadable.
// Use Lookup where a keychain failure must not read as an unset secret.
func (s *Settings) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// Lookup returns the value of key. A secret missing from the credential
// store is "" with no error; any other credential store failure is
// returned.
func (s *Settings) Lookup(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	if env, ok := secretEnv[key]; ok {
		if v := s.getenv(env); v != "" {
			return v, nil
		}
		if s.secrets == nil {
			return "", nil
		}
		v, err := s.secrets.GetToken(key)
		if errors.Is(err, auth.ErrTokenNotFound) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("config: failed to read %s from the credential store: %w", key, err)
		}
		return v, nil
	}

	spec := Lookup(key)
	if spec == nil {
		return "", nil
	}
	return spec.Get(s.cfg), nil
}

// Set stores value under key. Secrets go to the credential store; an empty
// secret value deletes it. File keys are saved immediately.
func (s *Settings) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))

	if IsSecret(key) {
		if s.secrets == nil {
			return fmt.Errorf("config: no credential store for %q", key)
		}
		if value == "" {
			err := s.secrets.DeleteToken(key)
			if errors.Is(err, auth.ErrTokenNotFound) {
				return nil
			}
			return err
		}
		return s.secrets.SetToken(key, value)
	}

	spec := Lookup(key)
	if spec == nil {
		return fmt.Errorf("config: unknown key %q", key)
	}
	spec.Set(s.cfg, value)
	return s.cfg.Save()
}

// MockStore is an in-memory Store for testing.
type MockStore struct {
	Values map[string]string
}

func NewMockStore(values map[string]string) *MockStore {
	m := &MockStore{Values: make(map[string]string, len(values))}
	for k, v := range values {
		m.Values[k] = v
	}
	return m
}

func (m *MockStore) Get(key string) string { return m.Values[key] }

func (m *MockStore) Set(key, value string) error {
	m.Values[key] = value
	return nil
}
