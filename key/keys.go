// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Library - these keys locate the video catalog loaded at startup.
const (
	LibraryPath = "library.path"
)

// Playback - these keys tune the playback state machine.
const (
	PlayerRandomSeed = "player.random_seed"
)

// Interactive Shell - these keys define the prompt and its input assistance.
const (
	ShellPrompt      = "shell.prompt"
	ShellSuggestions = "shell.suggestions"
)

// History Tracking - these keys configure persistence of entered shell commands.
const (
	HistorySave = "history.save"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
