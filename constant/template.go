package constant

// TitleTemplate is the fmt layout of an episode upload title, taking season and episode.
const TitleTemplate = ShowName + " - სეზონი %d, სერია %d"

// YouTube endpoints.
const (
	YouTubeAPIBase     = "https://www.googleapis.com/youtube/v3"
	YouTubeWatchURL    = "https://www.youtube.com/watch?v="
	YouTubeResultsURL  = "https://www.youtube.com/results?search_query="
	YouTubeResultsHint = "channel " + ChannelTag
)
