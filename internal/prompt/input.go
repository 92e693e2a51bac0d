// Package prompt provides the interactive terminal questions gitmind asks.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter reads single lines from the terminal.
type Prompter interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	PasswordPrompt(prompt string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Option is one entry of a Select menu.
type Option struct {
	Key   string
	Label string
}

// Console asks questions through a Prompter and prints menus to out.
type Console struct {
	prompter Prompter
	out      io.Writer
}

// NewConsole creates a Console.
func NewConsole(prompter Prompter, out io.Writer) *Console {
	return &Console{prompter: prompter, out: out}
}

// Close releases the underlying terminal.
func (c *Console) Close() error {
	return c.prompter.Close() //nolint:wrapcheck // passthrough
}

// TextInput asks for a line of text pre-filled with def.
func (c *Console) TextInput(label, def string) (string, error) {
	result, err := c.prompter.PromptWithSuggestion(color.CyanString(label+": "), def, -1)
	if err != nil {
		return "", wrapPromptErr("text input", err)
	}
	return strings.TrimSpace(result), nil
}

// Password asks for a secret without echoing it.
func (c *Console) Password(label string) (string, error) {
	result, err := c.prompter.PasswordPrompt(color.CyanString(label + ": "))
	if err != nil {
		return "", wrapPromptErr("password input", err)
	}
	return strings.TrimSpace(result), nil
}

// Select shows a numbered menu and returns the key of the chosen option.
// Options can be picked by number or key. An empty answer picks def.
func (c *Console) Select(label string, options []Option, def string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("select requires at least one option")
	}

	_, _ = fmt.Fprintln(c.out, color.CyanString(label))
	for i, opt := range options {
		marker := " "
		if opt.Key == def {
			marker = "*"
		}
		_, _ = fmt.Fprintf(c.out, " %s %d) %s\n", marker, i+1, opt.Label)
	}

	for {
		answer, err := c.prompter.Prompt(color.CyanString("> "))
		if err != nil {
			return "", wrapPromptErr("select", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))

		if answer == "" && def != "" {
			return def, nil
		}
		if key, ok := matchOption(options, answer); ok {
			return key, nil
		}
		_, _ = fmt.Fprintln(c.out, color.YellowString("Invalid choice %q, pick 1-%d", answer, len(options)))
	}
}

// Confirm asks a yes/no question. An empty answer returns def.
func (c *Console) Confirm(label string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		answer, err := c.prompter.Prompt(color.CyanString(fmt.Sprintf("%s %s ", label, hint)))
		if err != nil {
			return false, wrapPromptErr("confirm", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			_, _ = fmt.Fprintln(c.out, color.YellowString("Please answer y or n"))
		}
	}
}

// MultiLineInput accepts multi-line text, ending with double Enter. The lines
// of def are offered one at a time for editing.
func (c *Console) MultiLineInput(label, def string) (string, error) {
	_, _ = fmt.Fprintln(c.out, color.CyanString("%s (Press Enter twice when done)", label))

	var suggestions []string
	if def != "" {
		suggestions = strings.Split(def, "\n")
	}

	lines := make([]string, 0, 10)
	emptyLineCount := 0

	for i := 0; ; i++ {
		var (
			input string
			err   error
		)
		if i < len(suggestions) {
			input, err = c.prompter.PromptWithSuggestion(color.YellowString("  "), suggestions[i], -1)
		} else {
			input, err = c.prompter.Prompt(color.YellowString("  "))
		}
		if err != nil {
			return "", wrapPromptErr("multi-line input", err)
		}

		if strings.TrimSpace(input) == "" {
			emptyLineCount++
			if emptyLineCount >= 2 {
				break
			}
		} else {
			emptyLineCount = 0
		}

		lines = append(lines, strings.TrimRight(input, " \t"))
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func matchOption(options []Option, answer string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1].Key, true
	}
	for _, opt := range options {
		if strings.EqualFold(opt.Key, answer) {
			return opt.Key, true
		}
	}
	return "", false
}

func wrapPromptErr(what string, err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("%s failed: %w", what, err)
}
