// Package cli implements the gitmind commands on top of the config, ai, git,
// prompt and history packages.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/wizzomafizzo/gitmind/internal/ai"
	"github.com/wizzomafizzo/gitmind/internal/config"
	"github.com/wizzomafizzo/gitmind/internal/history"
	"github.com/wizzomafizzo/gitmind/internal/prompt"
)

// ErrNotConfigured is returned by gen when no usable configuration exists.
var ErrNotConfigured = errors.New("gitmind is not configured, run \"gitmind config\" first")

// Repository is the set of git operations gen needs.
type Repository interface {
	StagedDiff(ctx context.Context) (string, error)
	BranchName(ctx context.Context) string
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// Console asks the user questions.
type Console interface {
	TextInput(label, def string) (string, error)
	Password(label string) (string, error)
	Select(label string, options []prompt.Option, def string) (string, error)
	Confirm(label string, def bool) (bool, error)
	MultiLineInput(label, def string) (string, error)
}

// HistoryStore records generations.
type HistoryStore interface {
	Add(ctx context.Context, entry *history.Entry) (string, error)
	Resolve(ctx context.Context, id string, outcome history.Outcome, message string) error
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// GeneratorFactory builds a generator for a configuration.
type GeneratorFactory func(cfg *config.Config) (ai.Generator, error)

// Components holds the collaborators an App works with. History may be nil,
// in which case generations are not recorded.
type Components struct {
	Config       *config.Store
	Repository   Repository
	Console      Console
	History      HistoryStore
	NewGenerator GeneratorFactory
	Out          io.Writer
}

// App runs gitmind commands.
type App struct {
	config       *config.Store
	repo         Repository
	console      Console
	history      HistoryStore
	newGenerator GeneratorFactory
	out          io.Writer
}

// NewApp creates an App from its components.
func NewApp(components Components) *App {
	newGenerator := components.NewGenerator
	if newGenerator == nil {
		newGenerator = DefaultGeneratorFactory
	}
	out := components.Out
	if out == nil {
		out = io.Discard
	}

	return &App{
		config:       components.Config,
		repo:         components.Repository,
		console:      components.Console,
		history:      components.History,
		newGenerator: newGenerator,
		out:          out,
	}
}

// DefaultGeneratorFactory creates the model-backed generator.
func DefaultGeneratorFactory(cfg *config.Config) (ai.Generator, error) {
	return ai.NewService(cfg) //nolint:wrapcheck // provider errors are descriptive
}
