package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gitmind/internal/history"
)

// createHistoryCommand creates the history command.
func createHistoryCommand(opts rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent commit message generations for this repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupEnvironment(cmd, opts, needs{history: true})
			if err != nil {
				return err
			}
			defer env.Close()

			return env.app.History(env.ctx, limit) //nolint:wrapcheck // errors are descriptive
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultLimit, "Number of entries to show")

	return cmd
}
