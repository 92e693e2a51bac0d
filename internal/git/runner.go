package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/wizzomafizzo/gitmind/internal/constants"
	"github.com/wizzomafizzo/gitmind/internal/logging"
)

// Runner executes git subcommands.
type Runner interface {
	Run(ctx context.Context, stdin string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary inside a repository directory.
type ExecRunner struct {
	Dir string
}

// NewExecRunner creates a runner that executes git in dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes git with args and returns its standard output.
func (r *ExecRunner) Run(ctx context.Context, stdin string, args ...string) ([]byte, error) {
	fullArgs := args
	if r.Dir != "" {
		fullArgs = append([]string{"-C", r.Dir}, args...)
	}

	// #nosec G204 -- arguments are built by this package, never from user input
	cmd := exec.CommandContext(ctx, constants.GitBinary, fullArgs...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := logging.Get(ctx)
	logger.Debug().Strs("args", fullArgs).Msg("Executing git command")

	if err := cmd.Run(); err != nil {
		logger.Error().
			Strs("args", fullArgs).
			Str("stderr", stderr.String()).
			Err(err).
			Msg("Git command failed")
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	logger.Debug().
		Strs("args", fullArgs).
		Int("output_length", stdout.Len()).
		Msg("Git command succeeded")

	return stdout.Bytes(), nil
}

// CommandError describes a failed git invocation.
type CommandError struct {
	Err    error
	Stderr string
	Args   []string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
