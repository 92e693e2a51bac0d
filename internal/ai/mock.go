package ai

import (
	"context"
	"sync"

	"github.com/wizzomafizzo/gitmind/internal/commit"
	"github.com/wizzomafizzo/gitmind/internal/config"
)

// MockCall represents a single call to the mock generator
type MockCall struct {
	Diff   string
	Branch string
}

// MockGenerator replays canned replies in order. After the last reply it
// keeps returning that reply.
type MockGenerator struct {
	Err     error
	Replies []string
	Calls   []MockCall
	mu      sync.Mutex
}

// NewMockGenerator creates a mock that answers with the given raw replies
func NewMockGenerator(replies ...string) *MockGenerator {
	return &MockGenerator{Replies: replies}
}

// GetCallCount returns number of calls
func (m *MockGenerator) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// GenerateCommitMessage implements Generator
func (m *MockGenerator) GenerateCommitMessage(_ context.Context, diff, branch string) (*Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Diff: diff, Branch: branch})
	if m.Err != nil {
		return nil, m.Err
	}

	raw := "chore: mock commit"
	if len(m.Replies) > 0 {
		idx := min(len(m.Calls), len(m.Replies)) - 1
		raw = m.Replies[idx]
	}
	return &Generation{Raw: raw, Message: commit.Parse(raw)}, nil
}

// Provider implements Generator
func (*MockGenerator) Provider() config.Provider {
	return config.ProviderOpenAI
}

// Model implements Generator
func (*MockGenerator) Model() string {
	return "mock-model"
}
