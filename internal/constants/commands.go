package constants

// GitBinary is the executable used for all version control operations.
const GitBinary = "git"

// Actions offered after a commit message is generated.
const (
	ActionCommit     = "commit"
	ActionEdit       = "edit"
	ActionRegenerate = "regenerate"
	ActionCancel     = "cancel"
)
