// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 19

// Embed Target - these keys point the URL deriver at the external playback service.
const (
	EmbedBase = "embed.base"
)

// Documentation - these keys govern the static API documentation.
const (
	DocsBase       = "docs.base"
	DocsDefaultTab = "docs.default_tab"
)

// Player Selection - these keys seed the initial player selection.
const (
	PlayerDefaultMode = "player.default_mode"
	PlayerMovieID     = "player.movie_id"
	PlayerTVID        = "player.tv_id"
	PlayerSeason      = "player.season"
	PlayerEpisode     = "player.episode"
)

// Clipboard - these keys configure copy acknowledgments.
const (
	ClipboardAckSeconds = "clipboard.ack_seconds"
)

// Recent Identifiers - these keys configure identifier suggestions.
const (
	RecentSuggest = "recent.suggest"
)

// Web Server - these keys configure the landing page server.
const (
	ServerAddr            = "server.addr"
	ServerH2C             = "server.h2c"
	ServerShutdownTimeout = "server.shutdown_timeout"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
