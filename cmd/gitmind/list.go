package main

import (
	"github.com/spf13/cobra"
)

// createListCommand creates the list command.
func createListCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupEnvironment(cmd, opts, needs{})
			if err != nil {
				return err
			}
			defer env.Close()

			return env.app.List() //nolint:wrapcheck // errors are descriptive
		},
	}
}
