package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Message
		want  string
	}{
		{
			name:  "type and subject only",
			input: Message{Type: "fix", Subject: "handle nil config"},
			want:  "fix: handle nil config",
		},
		{
			name: "all fields",
			input: Message{
				Type:    "feat",
				Scope:   "auth",
				Subject: "add login",
				Body:    "implemented login logic",
				Footer:  "Closes #123",
			},
			want: "feat(auth): add login\n\nimplemented login logic\n\nCloses #123",
		},
		{
			name:  "breaking without scope",
			input: Message{Type: "feat", Subject: "major update", IsBreakingChange: true},
			want:  "feat!: major update",
		},
		{
			name:  "breaking with scope",
			input: Message{Type: "feat", Scope: "api", Subject: "remove v1", IsBreakingChange: true},
			want:  "feat(api)!: remove v1",
		},
		{
			name:  "footer without body",
			input: Message{Type: "fix", Subject: "typo", Footer: "Refs #7"},
			want:  "fix: typo\n\nRefs #7",
		},
		{
			name:  "body and footer are trimmed",
			input: Message{Type: "docs", Subject: "usage", Body: "\n  explain flags \n\n", Footer: "  Closes #1\n"},
			want:  "docs: usage\n\nexplain flags\n\nCloses #1",
		},
		{
			name:  "whitespace-only body and footer are omitted",
			input: Message{Type: "ci", Subject: "cache modules", Body: "  \n", Footer: "\t"},
			want:  "ci: cache modules",
		},
		{
			name:  "multi-paragraph body is kept",
			input: Message{Type: "perf", Subject: "pool buffers", Body: "First.\n\nSecond."},
			want:  "perf: pool buffers\n\nFirst.\n\nSecond.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.input))
			assert.Equal(t, tt.want, tt.input.String())
		})
	}
}

func TestFormat_DoesNotMutate(t *testing.T) {
	t.Parallel()

	msg := Message{Type: "feat", Subject: "x", Body: "  padded  ", Footer: " Closes #2 "}
	before := msg

	_ = Format(msg)

	assert.Equal(t, before, msg)
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Message
		want  Message
	}{
		{
			name:  "header only",
			input: Message{Type: "fix", Scope: "db", Subject: "close rows"},
			want:  Message{Type: "fix", Scope: "db", Subject: "close rows"},
		},
		{
			name: "breaking footer splits exactly",
			input: Message{
				Type:             "feat",
				Scope:            "api",
				Subject:          "new auth",
				Body:             "Tokens replace sessions.",
				Footer:           "BREAKING CHANGE: sessions removed",
				IsBreakingChange: true,
			},
			want: Message{
				Type:             "feat",
				Scope:            "api",
				Subject:          "new auth",
				Body:             "Tokens replace sessions.",
				Footer:           "BREAKING CHANGE: sessions removed",
				IsBreakingChange: true,
			},
		},
		{
			name:  "issue footer without body",
			input: Message{Type: "fix", Subject: "typo", Footer: "Closes #5"},
			want:  Message{Type: "fix", Subject: "typo", Footer: "Closes #5"},
		},
		{
			name:  "plain footer folds into body",
			input: Message{Type: "feat", Subject: "x", Body: "why", Footer: "Closes #5"},
			want:  Message{Type: "feat", Subject: "x", Body: "why\nCloses #5"},
		},
		{
			name:  "header marker alone survives",
			input: Message{Type: "feat", Subject: "drop flag", IsBreakingChange: true},
			want:  Message{Type: "feat", Subject: "drop flag", IsBreakingChange: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(Format(tt.input)))
		})
	}
}

func TestMessageHeader(t *testing.T) {
	t.Parallel()

	msg := Message{Type: "test", Scope: "commit", Subject: "cover header", Body: "ignored"}

	assert.Equal(t, "test(commit): cover header", msg.Header())
}
