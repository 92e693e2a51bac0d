package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/gitmind/internal/history"
)

const timeLayout = "2006-01-02 15:04"

// History prints the most recent generations for the repository.
func (a *App) History(ctx context.Context, limit int) error {
	if a.history == nil {
		return errors.New("history is not available")
	}

	entries, err := a.history.Recent(ctx, limit)
	if err != nil {
		return err //nolint:wrapcheck // store errors are descriptive
	}

	if len(entries) == 0 {
		a.printf("%s\n", color.YellowString("No generations recorded for this repository yet."))
		return nil
	}

	for _, entry := range entries {
		header, _, _ := strings.Cut(entry.Message, "\n")

		a.printf("%s  %s  %s\n",
			color.New(color.Faint).Sprint(entry.CreatedAt.Local().Format(timeLayout)),
			outcomeColor(entry.Outcome).Sprintf("%-11s", entry.Outcome),
			header)
		if entry.Branch != "" || entry.Model != "" {
			a.printf("    %s\n", color.New(color.Faint).Sprintf("%s %s/%s", entry.Branch, entry.Provider, entry.Model))
		}
	}
	return nil
}

func outcomeColor(outcome history.Outcome) *color.Color {
	switch outcome {
	case history.OutcomeCommitted:
		return color.New(color.FgGreen)
	case history.OutcomeFailed:
		return color.New(color.FgRed)
	case history.OutcomeCancelled, history.OutcomeRegenerated:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
