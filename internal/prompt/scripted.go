package prompt

import (
	"io"
	"sync"
)

// ScriptedPrompter answers prompts from a fixed list, for tests and
// non-interactive use. It returns io.EOF once the answers run out.
type ScriptedPrompter struct {
	Answers []string
	Prompts []string
	Closed  bool
	mu      sync.Mutex
}

// NewScriptedPrompter creates a prompter that replies with answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Prompt implements Prompter
func (s *ScriptedPrompter) Prompt(prompt string) (string, error) {
	return s.next(prompt)
}

// PromptWithSuggestion implements Prompter. The answer replaces the
// suggestion entirely, as if the user had edited the line.
func (s *ScriptedPrompter) PromptWithSuggestion(prompt, _ string, _ int) (string, error) {
	return s.next(prompt)
}

// PasswordPrompt implements Prompter
func (s *ScriptedPrompter) PasswordPrompt(prompt string) (string, error) {
	return s.next(prompt)
}

// Close implements Prompter
func (s *ScriptedPrompter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	return nil
}

// Remaining returns how many answers have not been consumed.
func (s *ScriptedPrompter) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Answers)
}

func (s *ScriptedPrompter) next(prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return "", io.EOF
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
