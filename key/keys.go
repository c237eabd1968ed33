// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// YouTube Data API - these keys configure the search capability and its credential.
const (
	YouTubeAPIKey        = "youtube.api_key"
	YouTubeChannelHandle = "youtube.channel_handle"
	YouTubeTag           = "youtube.tag"
)

// Search - these keys bound each search attempt.
const (
	SearchTimeout    = "search.timeout"
	SearchMaxResults = "search.max_results"
)

// Media Playback - these keys select the external player and what it is handed.
const (
	Player                = "player.default"
	PlayerFallback        = "player.fallback"
	PlaybackExtractStream = "playback.extract_stream"
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
