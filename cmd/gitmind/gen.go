package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gitmind/internal/cli"
)

// createGenCommand creates the gen command.
func createGenCommand(opts rootOptions) *cobra.Command {
	var genOpts cli.GenOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a commit message from the staged diff",
		Long: "Send the staged diff to the configured model and review the suggested " +
			"Conventional Commits message before committing.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if genOpts.Push && !genOpts.Yes {
				return errors.New("--push requires --yes")
			}

			env, err := setupEnvironment(cmd, opts, needs{
				console:         !genOpts.Yes && !genOpts.DryRun,
				history:         true,
				historyOptional: true,
			})
			if err != nil {
				return err
			}
			defer env.Close()

			return env.app.Generate(env.ctx, genOpts) //nolint:wrapcheck // errors are descriptive
		},
	}

	cmd.Flags().BoolVarP(&genOpts.Yes, "yes", "y", false, "Commit the first suggestion without asking")
	cmd.Flags().BoolVar(&genOpts.Push, "push", false, "Push after committing (requires --yes)")
	cmd.Flags().BoolVar(&genOpts.DryRun, "dry-run", false, "Print the suggested message without committing")

	return cmd
}
