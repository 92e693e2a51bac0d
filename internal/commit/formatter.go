package commit

import "strings"

// Format renders a Message as the literal text passed to git commit. Absent
// fields are omitted and no trailing newline is added.
func Format(m Message) string {
	var text strings.Builder
	text.WriteString(m.Header())

	if body := strings.TrimSpace(m.Body); body != "" {
		text.WriteString("\n\n")
		text.WriteString(body)
	}

	if footer := strings.TrimSpace(m.Footer); footer != "" {
		// Exactly one blank line before the footer.
		if strings.HasSuffix(text.String(), "\n") {
			text.WriteString("\n")
		} else {
			text.WriteString("\n\n")
		}
		text.WriteString(footer)
	}

	return text.String()
}
