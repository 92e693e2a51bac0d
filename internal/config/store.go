// Package config stores the provider, API key and model used by gitmind.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/gitmind/internal/constants"
	"gopkg.in/yaml.v3"
)

// Store reads and writes the configuration file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the YAML file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the effective configuration: defaults, then the stored file,
// then GITMIND_* environment variables.
func (s *Store) Load() (*Config, error) {
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	defaults := DefaultConfig()
	v.SetDefault(KeyProvider, string(defaults.Provider))
	v.SetDefault(KeyAPIKey, defaults.APIKey)
	v.SetDefault(KeyModel, defaults.Model)

	v.SetEnvPrefix(constants.EnvPrefix)
	for _, key := range []string{KeyProvider, KeyAPIKey, KeyModel} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Provider = Provider(strings.ToLower(string(cfg.Provider)))

	return &cfg, nil
}

// LoadStored returns only what is persisted on disk, on top of defaults.
// Environment overrides are ignored so that saving never persists them.
func (s *Store) LoadStored() (*Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save writes cfg to disk with owner-only permissions.
func (s *Store) Save(cfg *Config) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Clear removes the stored configuration.
func (s *Store) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear config: %w", err)
	}
	return nil
}

// HasValid reports whether the effective configuration can reach a provider.
func (s *Store) HasValid() bool {
	cfg, err := s.Load()
	if err != nil {
		return false
	}
	return cfg.HasValidCredentials()
}
