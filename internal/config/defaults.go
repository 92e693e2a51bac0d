package config

// DefaultModel is used when no model has been configured.
const DefaultModel = "gpt-4o"

// DefaultConfig returns the default gitmind configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Model:    DefaultModel,
	}
}
