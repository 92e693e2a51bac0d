// Package testutil holds helpers shared by gitmind tests.
package testutil

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wizzomafizzo/gitmind/internal/logging"
)

var loggerInitOnce sync.Once

// SilenceGlobalLogger discards global logger output once per test binary.
// Call it from TestMain before any test runs.
func SilenceGlobalLogger() {
	loggerInitOnce.Do(func() {
		log.Logger = zerolog.New(io.Discard)
	})
}

// NewTestContext creates a context with logger for race-safe testing.
// Returns a context with logger attached and a function to retrieve log output.
func NewTestContext(t *testing.T) (ctx context.Context, getLogOutput func() string) {
	t.Helper()

	var (
		mu        sync.Mutex
		logOutput strings.Builder
	)
	writer := zerolog.SyncWriter(&lockedWriter{mu: &mu, w: &logOutput})

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		RepoRoot: "test-repo",
		Writer:   writer,
		Level:    zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, func() string {
		mu.Lock()
		defer mu.Unlock()
		return logOutput.String()
	}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p) //nolint:wrapcheck // passthrough writer
}
