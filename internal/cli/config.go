package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/gitmind/internal/config"
	"github.com/wizzomafizzo/gitmind/internal/prompt"
)

// ConfigOptions carries the flags of the config command. Empty strings mean
// the flag was not given.
type ConfigOptions struct {
	Provider string
	APIKey   string
	Model    string
	Clear    bool
}

type flagValue struct {
	key   string
	value string
}

func (o ConfigOptions) values() []flagValue {
	return []flagValue{
		{key: config.KeyProvider, value: o.Provider},
		{key: config.KeyAPIKey, value: o.APIKey},
		{key: config.KeyModel, value: o.Model},
	}
}

func (o ConfigOptions) empty() bool {
	return o.Provider == "" && o.APIKey == "" && o.Model == ""
}

// Configure applies the config command: clear, show, or update the stored
// configuration, prompting for anything still missing.
func (a *App) Configure(opts ConfigOptions) error {
	if opts.Clear {
		if err := a.config.Clear(); err != nil {
			return err //nolint:wrapcheck // store errors are descriptive
		}
		a.printf("%s\n", color.GreenString("All settings have been cleared."))
		return nil
	}

	current, err := a.config.LoadStored()
	if err != nil {
		return err //nolint:wrapcheck // store errors are descriptive
	}

	if opts.empty() {
		a.printSettings("Current settings:", current)
		a.printf("\nUse \"gitmind config --help\" to see the available options.\n")
		return nil
	}

	updated := *current
	for _, flag := range opts.values() {
		if flag.value == "" {
			continue
		}
		if err := updated.Set(flag.key, strings.TrimSpace(flag.value)); err != nil {
			return err //nolint:wrapcheck // lists valid providers
		}
	}

	if updated.Provider == "" {
		if updated.Provider, err = a.askProvider(); err != nil {
			return err
		}
	}

	if updated.APIKey == "" && updated.Provider != config.ProviderOllama {
		key, err := a.console.Password(fmt.Sprintf("API key for %s", updated.Provider))
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		updated.APIKey = key
	}

	if updated.Model == "" {
		model, err := a.console.TextInput(fmt.Sprintf("Model for %s", updated.Provider), config.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to read model: %w", err)
		}
		updated.Model = model
	}

	if updated == *current {
		a.printf("%s\n", color.BlueString("No changes to the settings."))
	} else {
		if err := a.config.Save(&updated); err != nil {
			return err //nolint:wrapcheck // store errors are descriptive
		}
		a.printf("%s\n", color.GreenString("Settings saved."))
	}

	a.printSettings("Final settings:", &updated)
	return nil
}

func (a *App) askProvider() (config.Provider, error) {
	options := make([]prompt.Option, 0, len(config.Providers()))
	for _, p := range config.Providers() {
		options = append(options, prompt.Option{Key: string(p), Label: string(p)})
	}

	choice, err := a.console.Select("Which AI provider would you like to use?", options, string(config.ProviderOpenAI))
	if err != nil {
		return "", fmt.Errorf("failed to read provider: %w", err)
	}
	return config.ParseProvider(choice) //nolint:wrapcheck // lists valid providers
}

// List prints the effective configuration.
func (a *App) List() error {
	if !a.config.HasValid() {
		a.printf("%s\n", color.YellowString("No configuration found."))
		a.printf("%s\n", color.CyanString("Run \"gitmind config\" to set up the tool."))
		return nil
	}

	cfg, err := a.config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key := color.RedString("not set")
	if cfg.APIKey != "" {
		key = config.MaskKey(cfg.APIKey)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	a.printf("\n%s\n", bold.Sprint("Current gitmind configuration:"))
	a.printf("%s\n", dim.Sprint(strings.Repeat("-", 30)))
	a.printf("%s %s\n", bold.Sprint("Provider:"), color.GreenString(string(cfg.Provider)))
	a.printf("%s    %s\n", bold.Sprint("Model:"), color.CyanString(cfg.Model))
	a.printf("%s  %s\n", bold.Sprint("API Key:"), key)
	a.printf("%s\n\n", dim.Sprint(strings.Repeat("-", 30)))
	return nil
}

func (a *App) printSettings(title string, cfg *config.Config) {
	valueOr := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}

	a.printf("%s\n", color.New(color.Bold).Sprint(title))
	a.printf("  Provider: %s\n", color.CyanString(valueOr(string(cfg.Provider), "not configured")))
	a.printf("  API Key: %s\n", color.CyanString(valueOr(config.MaskKey(cfg.APIKey), "not configured")))
	a.printf("  Model: %s\n", color.CyanString(valueOr(cfg.Model, "not configured")))
	a.printf("  File: %s\n", color.CyanString(a.config.Path()))
}
