package git

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/gitmind/internal/testutil"
)

type runCall struct {
	stdin string
	args  []string
}

type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []runCall
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeRunner) Run(_ context.Context, stdin string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runCall{stdin: stdin, args: args})
	key := strings.Join(args, " ")
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return []byte(f.outputs[key]), nil
}

func TestStagedDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		wantErr error
		name    string
		output  string
		want    string
	}{
		{name: "diff present", output: "diff --git a/x b/x\n+line\n", want: "diff --git a/x b/x\n+line\n"},
		{name: "empty diff", output: "", wantErr: ErrNoStagedChanges},
		{name: "whitespace diff", output: "\n  \n", wantErr: ErrNoStagedChanges},
		{name: "git failure", err: errors.New("not a repository")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := newFakeRunner()
			runner.outputs["diff --staged"] = tt.output
			if tt.err != nil {
				runner.errs["diff --staged"] = tt.err
			}

			got, err := NewClientWithRunner(runner).StagedDiff(context.Background())

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
				assert.Contains(t, err.Error(), "failed to read staged diff")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBranchName(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	runner := newFakeRunner()
	runner.outputs["rev-parse --abbrev-ref HEAD"] = "feature/login\n"

	assert.Equal(t, "feature/login", NewClientWithRunner(runner).BranchName(ctx))
}

func TestBranchName_FailureLogsWarning(t *testing.T) {
	t.Parallel()
	ctx, logs := testutil.NewTestContext(t)

	runner := newFakeRunner()
	runner.errs["rev-parse --abbrev-ref HEAD"] = errors.New("no HEAD")

	assert.Empty(t, NewClientWithRunner(runner).BranchName(ctx))
	assert.Contains(t, logs(), "Could not determine current branch")
}

func TestCommit(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	client := NewClientWithRunner(runner)
	message := "feat(api): add endpoint\n\nMore detail.\n\nCloses #4"

	require.NoError(t, client.Commit(context.Background(), message))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"commit", "--file", "-"}, runner.calls[0].args)
	assert.Equal(t, message, runner.calls[0].stdin)
}

func TestCommit_Errors(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	client := NewClientWithRunner(runner)

	require.Error(t, client.Commit(context.Background(), "  "))
	assert.Empty(t, runner.calls)

	runner.errs["commit --file -"] = errors.New("hook rejected")
	err := client.Commit(context.Background(), "fix: x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit")
}

func TestPush(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	client := NewClientWithRunner(runner)

	require.NoError(t, client.Push(context.Background()))
	assert.Equal(t, []string{"push"}, runner.calls[0].args)

	runner.errs["push"] = errors.New("no upstream")
	require.ErrorContains(t, client.Push(context.Background()), "failed to push")
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	base := errors.New("exit status 128")
	err := &CommandError{Args: []string{"push"}, Stderr: "fatal: no remote", Err: base}

	assert.Equal(t, "git push: exit status 128: fatal: no remote", err.Error())
	require.ErrorIs(t, err, base)

	bare := &CommandError{Args: []string{"status"}, Err: base}
	assert.Equal(t, "git status: exit status 128", bare.Error())
}
