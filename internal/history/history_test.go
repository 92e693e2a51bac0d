package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/gitmind/internal/database"
	"github.com/wizzomafizzo/gitmind/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.VerifyTestMain(m)
}

func newTestManager(t *testing.T) *database.Manager {
	t.Helper()

	manager, err := database.NewManager(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	return manager
}

func TestStoreAddAndRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(newTestManager(t), "/repo")

	id, err := store.Add(ctx, &Entry{
		Branch:   "main",
		Provider: "openai",
		Model:    "gpt-4o",
		Raw:      "feat: add login",
		Message:  "feat: add login",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries, err := store.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "/repo", got.Repo)
	assert.Equal(t, "main", got.Branch)
	assert.Equal(t, OutcomePending, got.Outcome)
	assert.Equal(t, "feat: add login", got.Message)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}

func TestStoreResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(newTestManager(t), "/repo")

	id, err := store.Add(ctx, &Entry{Provider: "openai", Model: "gpt-4o", Raw: "x", Message: "chore: x"})
	require.NoError(t, err)

	require.NoError(t, store.Resolve(ctx, id, OutcomeCommitted, "chore: edited x"))

	entries, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, OutcomeCommitted, entries[0].Outcome)
	assert.Equal(t, "chore: edited x", entries[0].Message)
}

func TestStoreResolve_EmptyMessageKeepsOriginal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(newTestManager(t), "/repo")

	id, err := store.Add(ctx, &Entry{Raw: "fix: y", Message: "fix: y"})
	require.NoError(t, err)

	require.NoError(t, store.Resolve(ctx, id, OutcomeRegenerated, ""))

	entries, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, OutcomeRegenerated, entries[0].Outcome)
	assert.Equal(t, "fix: y", entries[0].Message)
}

func TestStoreResolve_UnknownID(t *testing.T) {
	t.Parallel()
	store := NewStore(newTestManager(t), "/repo")

	err := store.Resolve(context.Background(), "missing", OutcomeCancelled, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRecent_OrderAndLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(newTestManager(t), "/repo")

	base := time.Unix(1_700_000_000, 0)
	for i, subject := range []string{"one", "two", "three"} {
		_, err := store.Add(ctx, &Entry{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Provider:  "openai",
			Model:     "gpt-4o",
			Raw:       subject,
			Message:   "chore: " + subject,
		})
		require.NoError(t, err)
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "chore: three", entries[0].Message)
	assert.Equal(t, "chore: two", entries[1].Message)
}

func TestStoreRecent_ScopedToRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	manager := newTestManager(t)

	first := NewStore(manager, "/first")
	second := NewStore(manager, "/second")

	_, err := first.Add(ctx, &Entry{Provider: "openai", Model: "m", Raw: "a", Message: "chore: a"})
	require.NoError(t, err)

	entries, err := second.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	id, err := first.Add(ctx, &Entry{Provider: "openai", Model: "m", Raw: "b", Message: "chore: b"})
	require.NoError(t, err)
	require.ErrorIs(t, second.Resolve(ctx, id, OutcomeCommitted, "chore: b"), ErrNotFound)
}
