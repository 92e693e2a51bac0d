package ai

import "strings"

// SystemPrompt instructs the model to answer with a bare Conventional Commits message.
const SystemPrompt = `You are an expert in Git and in Conventional Commits messages.
Your task is to analyze a 'git diff' and write a concise, clear commit message that strictly
follows the Conventional Commits specification (https://www.conventionalcommits.org/en/v1.0.0/).

Commit messages MUST use the format:

<type>(<scope>): <subject>
<BLANK LINE>
[body]
<BLANK LINE>
[footer]

Where:
- type MUST be one of:
    - feat: A new feature or improvement.
    - fix: A bug fix.
    - docs: Documentation only changes.
    - style: Changes that do not affect the meaning of the code (white-space, formatting, etc).
    - refactor: A code change that neither fixes a bug nor adds a feature.
    - perf: A code change that improves performance.
    - test: Adding or correcting tests.
    - build: Changes that affect the build system or external dependencies.
    - ci: Changes to CI/CD configuration files and scripts.
    - chore: Other changes that don't modify src or test files.
    - revert: Reverts a previous commit.
- scope (optional but highly recommended): the part of the system affected.
  Examples: cli, api, core, auth, ui, docs, build, config, service.
- subject: a concise description of the change in the imperative mood, lowercase,
  without a trailing period. At most 72 characters.
- body (optional): a more detailed description explaining WHY and HOW.
  Each paragraph at most 100 characters per line.
- footer (optional): issue references (e.g. "Closes #123", "Refs #456") or a BREAKING CHANGE.

A breaking change MUST be stated in the footer as "BREAKING CHANGE: " followed by a description.
Alternatively a "!" may follow the type/scope in the header (e.g. "feat(api)!: remove legacy endpoint").

Your output MUST be ONLY the formatted commit message, with no introduction or conclusion.
Do not wrap the message in code fences.
Do not output the literal placeholders <type>, <scope>, <subject>, [body] or [footer].

Example output:
feat(cli): add command to generate commits

Adds the new 'gen' command that uses AI to suggest commit messages.
Speeds up the developer workflow.
`

// maxDiffBytes caps the diff sent to the model.
const maxDiffBytes = 60_000

const truncationNote = "\n... [diff truncated]"

// BuildUserPrompt builds the user message for a staged diff.
func BuildUserPrompt(diff, branch string) string {
	var prompt strings.Builder
	prompt.WriteString("Analyze the following diff and generate a commit message:\n\n")
	if branch != "" {
		prompt.WriteString("Current branch: ")
		prompt.WriteString(branch)
		prompt.WriteString("\n\n")
	}
	prompt.WriteString(truncateDiff(diff))
	return prompt.String()
}

func truncateDiff(diff string) string {
	if len(diff) <= maxDiffBytes {
		return diff
	}
	return strings.ToValidUTF8(diff[:maxDiffBytes], "") + truncationNote
}

// stripCodeFence removes a markdown code fence wrapped around the whole reply.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return trimmed
	}

	inner := strings.TrimSuffix(trimmed, "```")
	// Drop the opening fence line, including any language tag
	if newline := strings.Index(inner, "\n"); newline != -1 {
		inner = inner[newline+1:]
	} else {
		inner = strings.TrimPrefix(inner, "```")
	}
	return strings.TrimSpace(inner)
}
