// Package commit holds the structured commit message record along with the
// parser that normalizes generated text into it and the formatter that turns
// it back into the text handed to git.
package commit

// TypeChore is the type given to messages without a recognizable header.
const TypeChore = "chore"

// BreakingChangeMarker introduces a breaking change note in the footer.
const BreakingChangeMarker = "BREAKING CHANGE:"

// Footer prefixes that mark a block as issue references.
var issueRefPrefixes = []string{"Refs #", "Closes #"}

// Message is a structured commit message. Empty Scope, Body and Footer mean
// the field is absent.
type Message struct {
	Type             string
	Scope            string
	Subject          string
	Body             string
	Footer           string
	IsBreakingChange bool
}

// Header returns the first line of the formatted message.
func (m Message) Header() string {
	header := m.Type
	if m.Scope != "" {
		header += "(" + m.Scope + ")"
	}
	if m.IsBreakingChange {
		header += "!"
	}
	return header + ": " + m.Subject
}

// String returns the message formatted for git.
func (m Message) String() string {
	return Format(m)
}
