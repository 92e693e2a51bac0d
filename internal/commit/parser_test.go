package commit

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/gitmind/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.SilenceGlobalLogger()
	os.Exit(m.Run())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Message
	}{
		{
			name:  "type and scope",
			input: "feat(test): test commit",
			want:  Message{Type: "feat", Scope: "test", Subject: "test commit"},
		},
		{
			name:  "breaking marker without scope",
			input: "feat!: breaking change\n\nBREAKING CHANGE: something broke",
			want: Message{
				Type:             "feat",
				Subject:          "breaking change",
				Footer:           "BREAKING CHANGE: something broke",
				IsBreakingChange: true,
			},
		},
		{
			name:  "scope and breaking marker",
			input: "refactor(api)!: drop legacy endpoint",
			want: Message{
				Type:             "refactor",
				Scope:            "api",
				Subject:          "drop legacy endpoint",
				IsBreakingChange: true,
			},
		},
		{
			name:  "subject containing colons",
			input: "fix(cli): handle key: value pairs: again",
			want:  Message{Type: "fix", Scope: "cli", Subject: "handle key: value pairs: again"},
		},
		{
			name:  "scope with digits underscore and hyphen",
			input: "build(go_mod-2): bump deps",
			want:  Message{Type: "build", Scope: "go_mod-2", Subject: "bump deps"},
		},
		{
			name:  "leading blank lines and indentation",
			input: "\n\n   docs: update readme   \n",
			want:  Message{Type: "docs", Subject: "update readme"},
		},
		{
			name:  "body collapses blank lines",
			input: "feat(cli): add gen command\n\n\nAdds the gen command.\n\n\nSpeeds up the workflow.",
			want: Message{
				Type:    "feat",
				Scope:   "cli",
				Subject: "add gen command",
				Body:    "Adds the gen command.\nSpeeds up the workflow.",
			},
		},
		{
			name:  "body before breaking change footer",
			input: "feat(api): rework auth\n\nSwitch to tokens.\n\nBREAKING CHANGE: sessions removed\nCloses #9",
			want: Message{
				Type:             "feat",
				Scope:            "api",
				Subject:          "rework auth",
				Body:             "Switch to tokens.",
				Footer:           "BREAKING CHANGE: sessions removed\nCloses #9",
				IsBreakingChange: true,
			},
		},
		{
			name:  "closes reference becomes footer",
			input: "fix: null check\n\nCloses #123",
			want:  Message{Type: "fix", Subject: "null check", Footer: "Closes #123"},
		},
		{
			name:  "refs reference takes whole remainder",
			input: "fix: null check\n\nRefs #45\nsome trailing note",
			want:  Message{Type: "fix", Subject: "null check", Footer: "Refs #45\nsome trailing note"},
		},
		{
			name:  "reference after body stays in body",
			input: "fix: null check\n\nGuard the parser.\n\nCloses #123",
			want:  Message{Type: "fix", Subject: "null check", Body: "Guard the parser.\nCloses #123"},
		},
		{
			name:  "windows line endings",
			input: "chore(deps): bump zerolog\r\n\r\nKeeps logging current.\r\n",
			want: Message{
				Type:    "chore",
				Scope:   "deps",
				Subject: "bump zerolog",
				Body:    "Keeps logging current.",
			},
		},
		{
			name:  "lone carriage returns",
			input: "feat: add x\rBody line\r\rCloses #3",
			want:  Message{Type: "feat", Subject: "add x", Body: "Body line\nCloses #3"},
		},
		{
			name:  "mixed line endings",
			input: "fix(io): read input\r\nfirst\rsecond\nthird",
			want:  Message{Type: "fix", Scope: "io", Subject: "read input", Body: "first\nsecond\nthird"},
		},
		{
			name:  "leading byte order mark",
			input: "\uFEFFfeat(api): add x\n\uFEFF\nbody\uFEFF",
			want:  Message{Type: "feat", Scope: "api", Subject: "add x", Body: "body"},
		},
		{
			name:  "unknown lowercase type is accepted",
			input: "wip: half done",
			want:  Message{Type: "wip", Subject: "half done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParse_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Message
	}{
		{
			name:  "plain sentence",
			input: "Update the readme",
			want:  Message{Type: "chore", Subject: "Update the readme"},
		},
		{
			name:  "uppercase type",
			input: "Feat: add login\n\nbody line one\nbody line two",
			want:  Message{Type: "chore", Subject: "Feat: add login", Body: "body line one\nbody line two"},
		},
		{
			name:  "missing space after colon",
			input: "feat:add login",
			want:  Message{Type: "chore", Subject: "feat:add login"},
		},
		{
			name:  "empty subject",
			input: "feat: ",
			want:  Message{Type: "chore", Subject: "feat:"},
		},
		{
			name:  "breaking marker in body is ignored by fallback",
			input: "added stuff\nBREAKING CHANGE: oops",
			want:  Message{Type: "chore", Subject: "added stuff", Body: "BREAKING CHANGE: oops"},
		},
		{
			name:  "empty input",
			input: "  \n\n ",
			want:  Message{Type: "chore"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.input)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.IsBreakingChange)
		})
	}
}

func TestParse_BreakingFooterForcesFlag(t *testing.T) {
	t.Parallel()

	got := Parse("feat(core): new config format\n\nBREAKING CHANGE: old keys are gone")

	require.True(t, got.IsBreakingChange)
	assert.Empty(t, got.Body)
	assert.Equal(t, "BREAKING CHANGE: old keys are gone", got.Footer)
}

func TestParse_AbsentFieldsAreEmpty(t *testing.T) {
	t.Parallel()

	got := Parse("feat: only a header\n\nBREAKING CHANGE: x")

	assert.Empty(t, got.Scope)
	assert.Empty(t, got.Body, "whitespace before the marker must not become a body")
}
