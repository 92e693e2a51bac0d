package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/gitmind/internal/ai"
	"github.com/wizzomafizzo/gitmind/internal/commit"
	"github.com/wizzomafizzo/gitmind/internal/constants"
	"github.com/wizzomafizzo/gitmind/internal/git"
	"github.com/wizzomafizzo/gitmind/internal/history"
	"github.com/wizzomafizzo/gitmind/internal/logging"
	"github.com/wizzomafizzo/gitmind/internal/prompt"
)

// ErrEmptyGeneration is returned when the model reply has no usable header.
var ErrEmptyGeneration = errors.New("model returned an empty commit message")

const separatorWidth = 50

var actionOptions = []prompt.Option{
	{Key: constants.ActionCommit, Label: "Commit"},
	{Key: constants.ActionEdit, Label: "Edit message"},
	{Key: constants.ActionRegenerate, Label: "Regenerate"},
	{Key: constants.ActionCancel, Label: "Cancel"},
}

// GenOptions controls the gen command.
type GenOptions struct {
	// Yes commits the first suggestion without asking.
	Yes bool
	// Push pushes after committing without asking. Only used with Yes.
	Push bool
	// DryRun prints the suggestion and stops.
	DryRun bool
}

// Generate suggests a commit message for the staged changes and lets the
// user commit, edit, regenerate or cancel.
func (a *App) Generate(ctx context.Context, opts GenOptions) error {
	cfg, err := a.config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.HasValidCredentials() {
		return ErrNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	generator, err := a.newGenerator(cfg)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	diff, err := a.repo.StagedDiff(ctx)
	if errors.Is(err, git.ErrNoStagedChanges) {
		a.printf("%s\n", color.YellowString("No staged changes found."))
		a.printf("Use \"git add <files>\" before running this command.\n")
		return nil
	}
	if err != nil {
		return err //nolint:wrapcheck // already wrapped by the git client
	}
	branch := a.repo.BranchName(ctx)

	logger := logging.Get(ctx)
	logger.Info().
		Str("provider", string(generator.Provider())).
		Str("model", generator.Model()).
		Str("branch", branch).
		Msg("Generating commit message")

	for {
		a.printf("%s\n", color.CyanString("Thinking..."))
		gen, err := generator.GenerateCommitMessage(ctx, diff, branch)
		if err != nil {
			return err //nolint:wrapcheck // already wrapped by the generator
		}
		if gen.Message.Subject == "" {
			return ErrEmptyGeneration
		}

		entryID := a.recordGeneration(ctx, generator, branch, gen)
		msg := gen.Message
		a.printPreview(msg)

		if opts.DryRun {
			a.printf("%s\n", commit.Format(msg))
			return nil
		}

		action := constants.ActionCommit
		if !opts.Yes {
			action, err = a.console.Select("What would you like to do?", actionOptions, constants.ActionCommit)
			if err != nil {
				return a.handlePromptErr(ctx, entryID, err)
			}
		}

		switch action {
		case constants.ActionRegenerate:
			a.resolveGeneration(ctx, entryID, history.OutcomeRegenerated, "")
			continue
		case constants.ActionCancel:
			a.resolveGeneration(ctx, entryID, history.OutcomeCancelled, "")
			a.printf("%s\n", color.YellowString("Operation cancelled."))
			return nil
		case constants.ActionEdit:
			msg, err = a.editMessage(msg)
			if err != nil {
				return a.handlePromptErr(ctx, entryID, err)
			}
		}

		return a.commitAndPush(ctx, entryID, msg, opts)
	}
}

func (a *App) commitAndPush(ctx context.Context, entryID string, msg commit.Message, opts GenOptions) error {
	text := commit.Format(msg)
	if err := a.repo.Commit(ctx, text); err != nil {
		a.resolveGeneration(ctx, entryID, history.OutcomeFailed, text)
		return err //nolint:wrapcheck // already wrapped by the git client
	}
	a.resolveGeneration(ctx, entryID, history.OutcomeCommitted, text)
	a.printf("%s\n", color.GreenString("Commit created: %s", msg.Header()))

	push := opts.Push
	if !opts.Yes {
		var err error
		push, err = a.console.Confirm("Push your changes now?", true)
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read push answer: %w", err)
		}
	}
	if !push {
		return nil
	}

	a.printf("%s\n", color.CyanString("Pushing..."))
	if err := a.repo.Push(ctx); err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("Push failed")
		a.printf("%s\n", color.RedString("Push failed: %v", err))
		return nil
	}
	a.printf("%s\n", color.GreenString("Push completed."))
	return nil
}

// editMessage asks for every field with the current values as defaults.
// Empty answers clear optional fields. The breaking flag is kept.
func (a *App) editMessage(msg commit.Message) (commit.Message, error) {
	typ, err := a.console.TextInput("Type", msg.Type)
	if err != nil {
		return msg, err //nolint:wrapcheck // prompt errors are descriptive
	}
	scope, err := a.console.TextInput("Scope", msg.Scope)
	if err != nil {
		return msg, err //nolint:wrapcheck // prompt errors are descriptive
	}
	subject, err := a.console.TextInput("Subject", msg.Subject)
	if err != nil {
		return msg, err //nolint:wrapcheck // prompt errors are descriptive
	}
	body, err := a.console.MultiLineInput("Body", msg.Body)
	if err != nil {
		return msg, err //nolint:wrapcheck // prompt errors are descriptive
	}
	footer, err := a.console.MultiLineInput("Footer", msg.Footer)
	if err != nil {
		return msg, err //nolint:wrapcheck // prompt errors are descriptive
	}

	if typ == "" {
		typ = commit.TypeChore
	}
	if subject == "" {
		subject = msg.Subject
	}

	return commit.Message{
		Type:             typ,
		Scope:            scope,
		Subject:          subject,
		Body:             strings.TrimSpace(body),
		Footer:           strings.TrimSpace(footer),
		IsBreakingChange: msg.IsBreakingChange,
	}, nil
}

func (a *App) handlePromptErr(ctx context.Context, entryID string, err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		a.resolveGeneration(ctx, entryID, history.OutcomeCancelled, "")
		a.printf("%s\n", color.YellowString("Operation cancelled."))
		return nil
	}
	return fmt.Errorf("failed to read answer: %w", err)
}

func (a *App) printPreview(msg commit.Message) {
	separator := strings.Repeat("-", separatorWidth)
	dim := color.New(color.Faint)

	a.printf("\n%s\n", color.New(color.Bold).Sprint(separator))
	a.printf("%s\n", color.New(color.Bold, color.FgHiWhite).Sprint(msg.Header()))
	if msg.Body != "" {
		a.printf("\n%s\n", dim.Sprint(msg.Body))
	}
	if msg.Footer != "" {
		a.printf("\n%s\n", dim.Sprint(msg.Footer))
	}
	a.printf("%s\n\n", color.New(color.Bold).Sprint(separator))
}

// recordGeneration stores a pending entry. History is best effort and never
// fails the command.
func (a *App) recordGeneration(ctx context.Context, generator ai.Generator, branch string, gen *ai.Generation) string {
	if a.history == nil {
		return ""
	}

	id, err := a.history.Add(ctx, &history.Entry{
		Branch:   branch,
		Provider: string(generator.Provider()),
		Model:    generator.Model(),
		Raw:      gen.Raw,
		Message:  commit.Format(gen.Message),
	})
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("Failed to record generation")
		return ""
	}
	return id
}

func (a *App) resolveGeneration(ctx context.Context, id string, outcome history.Outcome, message string) {
	if a.history == nil || id == "" {
		return
	}
	if err := a.history.Resolve(ctx, id, outcome, message); err != nil {
		logging.Get(ctx).Warn().Err(err).Str("id", id).Msg("Failed to update generation")
	}
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
