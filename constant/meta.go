// Package constant defines immutable application-level identifiers and domain constants.
package constant

const (
	// Shua is the canonical application identifier used for filesystem paths and CLI branding.
	Shua = "shua"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Show identity - the single production this tool resolves episodes for.
const (
	// ShowName is the show title as it appears in upload titles.
	ShowName = "შუა ქალაქში"

	// ChannelHandle is the YouTube handle of the official uploader.
	ChannelHandle = "@TVIMEDI"

	// ChannelTag disambiguates anonymous searches that cannot be scoped to the channel.
	ChannelTag = "TVIMEDI"

	// DefaultPlayer is launched when no player is configured, and retried once when the configured one fails.
	DefaultPlayer = "mpv"
)

// UserAgent identifies the tool on outbound requests.
const UserAgent = Shua + "/" + Version
