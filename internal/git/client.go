// Package git wraps the git commands gitmind needs.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wizzomafizzo/gitmind/internal/logging"
)

// ErrNoStagedChanges is returned when nothing has been staged for commit.
var ErrNoStagedChanges = errors.New("no staged changes")

// Client runs repository operations through a Runner.
type Client struct {
	runner Runner
}

// NewClient creates a client for the repository at dir.
func NewClient(dir string) *Client {
	return NewClientWithRunner(NewExecRunner(dir))
}

// NewClientWithRunner creates a client around runner.
func NewClientWithRunner(runner Runner) *Client {
	return &Client{runner: runner}
}

// StagedDiff returns the diff of the staged changes.
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "", "diff", "--staged")
	if err != nil {
		return "", fmt.Errorf("failed to read staged diff: %w", err)
	}

	diff := string(out)
	if strings.TrimSpace(diff) == "" {
		return "", ErrNoStagedChanges
	}
	return diff, nil
}

// BranchName returns the current branch, or "" when it cannot be determined.
func (c *Client) BranchName(ctx context.Context) string {
	out, err := c.runner.Run(ctx, "", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("Could not determine current branch")
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Commit records the staged changes with message, passed on stdin so that
// multi-line messages survive unchanged.
func (c *Client) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("commit message is empty")
	}
	if _, err := c.runner.Run(ctx, message, "commit", "--file", "-"); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push pushes the current branch to its upstream.
func (c *Client) Push(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "", "push"); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}
