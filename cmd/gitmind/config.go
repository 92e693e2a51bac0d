package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gitmind/internal/cli"
)

// createConfigCommand creates the config command.
func createConfigCommand(opts rootOptions) *cobra.Command {
	var configOpts cli.ConfigOptions

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure the AI provider, API key and model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupEnvironment(cmd, opts, needs{console: true})
			if err != nil {
				return err
			}
			defer env.Close()

			return env.app.Configure(configOpts) //nolint:wrapcheck // errors are descriptive
		},
	}

	cmd.Flags().StringVarP(&configOpts.Provider, "provider", "p", "",
		"AI provider (openai, google, anthropic, ollama)")
	cmd.Flags().StringVarP(&configOpts.APIKey, "api-key", "k", "",
		"API key for the provider (server URL for ollama)")
	cmd.Flags().StringVarP(&configOpts.Model, "model", "m", "", "Model to use (e.g. gpt-4o, gemini-pro)")
	cmd.Flags().BoolVar(&configOpts.Clear, "clear", false, "Remove all saved settings")

	return cmd
}
