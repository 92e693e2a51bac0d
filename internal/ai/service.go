// Package ai turns a staged diff into a commit message using a language model.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/wizzomafizzo/gitmind/internal/commit"
	"github.com/wizzomafizzo/gitmind/internal/config"
	"github.com/wizzomafizzo/gitmind/internal/logging"
)

// OpenAI-compatible endpoints for providers that are not OpenAI itself.
const (
	GoogleBaseURL    = "https://generativelanguage.googleapis.com/v1beta/openai"
	AnthropicBaseURL = "https://api.anthropic.com/v1"
	OllamaBaseURL    = "http://localhost:11434/v1"
)

const requestTimeout = 120 * time.Second

// ErrEmptyResponse is returned when the model answers with no usable text.
var ErrEmptyResponse = errors.New("empty response from model")

// ChatClient is the part of the go-openai client the service uses.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generation is one model reply and the commit message parsed from it.
type Generation struct {
	Raw     string
	Message commit.Message
}

// Generator produces commit messages from a diff.
type Generator interface {
	GenerateCommitMessage(ctx context.Context, diff, branch string) (*Generation, error)
	Provider() config.Provider
	Model() string
}

// Service generates commit messages through a chat completion endpoint.
type Service struct {
	client   ChatClient
	provider config.Provider
	model    string
}

// NewService creates a Service for the configured provider.
func NewService(cfg *config.Config) (*Service, error) {
	clientConfig, err := clientConfigFor(cfg)
	if err != nil {
		return nil, err
	}
	return NewServiceWithClient(openai.NewClientWithConfig(clientConfig), cfg), nil
}

// NewServiceWithClient creates a Service around an existing client.
func NewServiceWithClient(client ChatClient, cfg *config.Config) *Service {
	return &Service{
		client:   client,
		provider: cfg.Provider,
		model:    cfg.Model,
	}
}

// Provider returns the configured provider.
func (s *Service) Provider() config.Provider {
	return s.provider
}

// Model returns the configured model.
func (s *Service) Model() string {
	return s.model
}

// GenerateCommitMessage asks the model for a commit message describing diff
// and normalizes the reply.
func (s *Service) GenerateCommitMessage(ctx context.Context, diff, branch string) (*Generation, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	logger := logging.Get(ctx)
	logger.Debug().
		Str("provider", string(s.provider)).
		Str("model", s.model).
		Str("branch", branch).
		Int("diff_length", len(diff)).
		Msg("Requesting commit message")

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(diff, branch)},
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("provider", string(s.provider)).Msg("Commit message request failed")
		return nil, fmt.Errorf("failed to generate commit message: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("failed to generate commit message: %w", ErrEmptyResponse)
	}

	raw := stripCodeFence(resp.Choices[0].Message.Content)
	if raw == "" {
		return nil, fmt.Errorf("failed to generate commit message: %w", ErrEmptyResponse)
	}

	logger.Debug().
		Int("total_tokens", resp.Usage.TotalTokens).
		Int("raw_length", len(raw)).
		Msg("Commit message received")

	return &Generation{Raw: raw, Message: commit.Parse(raw)}, nil
}

// clientConfigFor maps a provider onto its OpenAI-compatible endpoint.
func clientConfigFor(cfg *config.Config) (openai.ClientConfig, error) {
	var clientConfig openai.ClientConfig

	switch cfg.Provider {
	case config.ProviderOpenAI:
		clientConfig = openai.DefaultConfig(cfg.APIKey)
	case config.ProviderGoogle:
		clientConfig = openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = GoogleBaseURL
	case config.ProviderAnthropic:
		clientConfig = openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = AnthropicBaseURL
	case config.ProviderOllama:
		// The API key doubles as the server URL for Ollama
		clientConfig = openai.DefaultConfig("ollama")
		clientConfig.BaseURL = OllamaBaseURLFor(cfg.APIKey)
	default:
		return openai.ClientConfig{}, fmt.Errorf("%w: %q", config.ErrInvalidProvider, cfg.Provider)
	}

	clientConfig.HTTPClient = newHTTPClient()
	return clientConfig, nil
}

// OllamaBaseURLFor returns the endpoint for an Ollama key: a URL key points
// at that server, anything else uses the local default.
func OllamaBaseURLFor(apiKey string) string {
	if !strings.HasPrefix(apiKey, "http") {
		return OllamaBaseURL
	}
	base := strings.TrimRight(apiKey, "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	return base
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
