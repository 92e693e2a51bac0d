package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(rootOptions{fs: afero.NewOsFs()})
}

func newRootCommand(opts rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitmind",
		Short:         "AI generated Conventional Commits messages",
		Long:          "gitmind reads your staged changes and suggests a Conventional Commits message for them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default $XDG_CONFIG_HOME/gitmind/config.yml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		createGenCommand(opts),
		createConfigCommand(opts),
		createListCommand(opts),
		createHistoryCommand(opts),
	)

	return rootCmd
}
