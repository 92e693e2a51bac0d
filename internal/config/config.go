package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Provider names a generative backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// Stored configuration keys.
const (
	KeyProvider = "provider"
	KeyAPIKey   = "api_key"
	KeyModel    = "model"
)

var (
	// ErrInvalidProvider is returned for providers outside Providers().
	ErrInvalidProvider = errors.New("invalid provider")
	// ErrUnknownKey is returned by Set for keys outside the stored schema.
	ErrUnknownKey = errors.New("unknown config key")
)

// Providers lists the supported providers in menu order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderGoogle, ProviderAnthropic, ProviderOllama}
}

// ProviderNames returns the supported providers as strings.
func ProviderNames() []string {
	providers := Providers()
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, string(p))
	}
	return names
}

// IsValid reports whether p is a supported provider.
func (p Provider) IsValid() bool {
	return slices.Contains(Providers(), p)
}

// ParseProvider validates a provider name.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q, choose one of: %s",
			ErrInvalidProvider, name, strings.Join(ProviderNames(), ", "))
	}
	return p, nil
}

// Config is the stored gitmind configuration.
type Config struct {
	Provider Provider `yaml:"provider" mapstructure:"provider"`
	APIKey   string   `yaml:"api_key" mapstructure:"api_key"`
	Model    string   `yaml:"model" mapstructure:"model"`
}

// HasValidCredentials reports whether the configuration can reach a provider.
// Ollama runs locally and needs no key.
func (c *Config) HasValidCredentials() bool {
	if c.Provider == ProviderOllama {
		return true
	}
	return c.APIKey != ""
}

// Validate checks the provider and model.
func (c *Config) Validate() error {
	if !c.Provider.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProvider, c.Provider)
	}
	if strings.TrimSpace(c.Model) == "" {
		return errors.New("model is required and cannot be empty")
	}
	return nil
}

// Set assigns a value by stored key name.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyProvider:
		p, err := ParseProvider(value)
		if err != nil {
			return err
		}
		c.Provider = p
	case KeyAPIKey:
		c.APIKey = value
	case KeyModel:
		c.Model = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// MaskKey hides all but the last four characters of an API key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "..." + key
	}
	return "..." + key[len(key)-4:]
}
