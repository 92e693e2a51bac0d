// Package constants contains names shared across gitmind packages.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "gitmind"

	// LogFilename is the default log file name for gitmind.
	LogFilename = "gitmind.log"

	// DatabaseFilename is the history database file name.
	DatabaseFilename = "history.db"

	// ConfigFilename is the stored configuration file name.
	ConfigFilename = "config.yml"

	// EnvPrefix prefixes environment variables that override stored config.
	EnvPrefix = "GITMIND"
)
