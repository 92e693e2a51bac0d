package commit

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// headerPattern matches "type(scope)!: subject". Only the first ": " after
// the prefix separates the header from the subject.
var headerPattern = regexp.MustCompile(
	`^(?P<type>[a-z]+)(?:\((?P<scope>[a-zA-Z0-9_-]+)\))?(?P<breaking>!)?: (?P<subject>.+)$`,
)

var (
	typeGroup     = headerPattern.SubexpIndex("type")
	scopeGroup    = headerPattern.SubexpIndex("scope")
	breakingGroup = headerPattern.SubexpIndex("breaking")
	subjectGroup  = headerPattern.SubexpIndex("subject")
)

// Parse normalizes generated text into a Message. It never fails: when the
// first non-blank line is not a Conventional Commits header the message falls
// back to a chore whose subject is that line verbatim.
func Parse(raw string) Message {
	lines := nonBlankLines(raw)

	var header string
	if len(lines) > 0 {
		header, lines = lines[0], lines[1:]
	}

	match := headerPattern.FindStringSubmatch(header)
	if match == nil {
		log.Warn().
			Str("header", header).
			Msg("Could not parse generated commit message header, using raw subject")
		return Message{
			Type:    TypeChore,
			Subject: header,
			Body:    strings.Join(lines, "\n"),
		}
	}

	msg := Message{
		Type:             match[typeGroup],
		Scope:            match[scopeGroup],
		Subject:          match[subjectGroup],
		IsBreakingChange: match[breakingGroup] != "",
	}
	if msg.Type == "" {
		msg.Type = TypeChore
	}

	msg.Body, msg.Footer, msg.IsBreakingChange = splitBodyAndFooter(strings.Join(lines, "\n"), msg.IsBreakingChange)
	return msg
}

// splitBodyAndFooter separates the text after the header. A breaking change
// marker wins over issue references; anything else is body.
func splitBodyAndFooter(text string, breaking bool) (body, footer string, isBreaking bool) {
	if idx := strings.Index(text, BreakingChangeMarker); idx != -1 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx:]), true
	}

	if hasIssueRefPrefix(text) {
		return "", text, breaking
	}

	return text, "", breaking
}

func hasIssueRefPrefix(text string) bool {
	for _, prefix := range issueRefPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// nonBlankLines splits on any line ending, trims every line and drops the
// blank ones.
func nonBlankLines(raw string) []string {
	split := strings.Split(lineEndings.Replace(raw), "\n")
	lines := make([]string, 0, len(split))
	for _, line := range split {
		if trimmed := strings.TrimFunc(line, isTrimmable); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// isTrimmable reports whitespace and the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
