package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gitmind/internal/cli"
	"github.com/wizzomafizzo/gitmind/internal/config"
	"github.com/wizzomafizzo/gitmind/internal/database"
	"github.com/wizzomafizzo/gitmind/internal/git"
	"github.com/wizzomafizzo/gitmind/internal/history"
	"github.com/wizzomafizzo/gitmind/internal/logging"
	"github.com/wizzomafizzo/gitmind/internal/project"
	"github.com/wizzomafizzo/gitmind/internal/prompt"
	"github.com/wizzomafizzo/gitmind/internal/storage"
)

// rootOptions holds the collaborators commands are built from. Zero values
// select the real implementations.
type rootOptions struct {
	fs           afero.Fs
	logWriter    io.Writer
	prompter     prompt.Prompter
	repository   cli.Repository
	newGenerator cli.GeneratorFactory
	databaseDSN  string
}

// needs selects the optional parts of the environment a command uses.
type needs struct {
	console bool
	history bool
	// historyOptional keeps the command running when the database cannot be opened.
	historyOptional bool
}

// environment is everything a command runs with.
type environment struct {
	ctx     context.Context
	app     *cli.App
	closers []func() error
}

func (e *environment) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
}

// setupEnvironment wires logging, configuration, git, prompts and history
// for cmd.
func setupEnvironment(cmd *cobra.Command, opts rootOptions, n needs) (*environment, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	repoRoot, err := project.FindRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find repository root: %w", err)
	}

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, err := logging.New(baseCtx, opts.fs, logging.Config{
		Writer:   opts.logWriter,
		RepoRoot: repoRoot,
		Level:    logging.LevelFor(verbose),
	})
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}
	logging.SetGlobal(ctx)

	paths := storage.New(opts.fs)
	if configPath == "" {
		if configPath, err = paths.GetConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	env := &environment{ctx: ctx}
	components := cli.Components{
		Config:       config.NewStore(opts.fs, configPath),
		Repository:   opts.repository,
		NewGenerator: opts.newGenerator,
		Out:          cmd.OutOrStdout(),
	}
	if components.Repository == nil {
		components.Repository = git.NewClient(repoRoot)
	}

	if n.console {
		prompter := opts.prompter
		if prompter == nil {
			prompter = prompt.NewLinerPrompter()
		}
		console := prompt.NewConsole(prompter, cmd.OutOrStdout())
		env.closers = append(env.closers, console.Close)
		components.Console = console
	}

	if n.history {
		store, closeDB, err := openHistory(ctx, paths, opts.databaseDSN, repoRoot)
		switch {
		case err == nil:
			env.closers = append(env.closers, closeDB)
			components.History = store
		case n.historyOptional:
			logging.Get(ctx).Warn().Err(err).Msg("History disabled")
		default:
			env.Close()
			return nil, err
		}
	}

	env.app = cli.NewApp(components)
	return env, nil
}

func openHistory(
	ctx context.Context, paths *storage.Manager, dsn, repoRoot string,
) (*history.Store, func() error, error) {
	if dsn == "" {
		dbPath, err := paths.GetDatabasePath()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database path: %w", err)
		}
		dsn = dbPath
	}

	manager, err := database.NewManager(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	return history.NewStore(manager, repoRoot), manager.Close, nil
}
