package youtube

import (
	"context"
	"errors"
	"fmt"

	yt "github.com/kkdai/youtube/v2"
	"github.com/shua-cli/shua/network"
)

var errNoProgressive = errors.New("no progressive audio+video format")

// StreamURL resolves a direct media URL for videoID, picking the tallest format that carries both audio and video.
// Players that handle watch URLs themselves do not need this.
func StreamURL(ctx context.Context, videoID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, network.Timeout)
	defer cancel()

	client := &yt.Client{HTTPClient: network.Client}

	video, err := client.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("get video %s: %w", videoID, err)
	}

	format := bestProgressive(video.Formats)
	if format == nil {
		return "", fmt.Errorf("video %s: %w", videoID, errNoProgressive)
	}

	streamURL, err := client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("stream url %s: %w", videoID, err)
	}
	return streamURL, nil
}

func bestProgressive(formats yt.FormatList) *yt.Format {
	var best *yt.Format
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 || f.Height == 0 {
			continue
		}
		if best == nil || f.Height > best.Height || (f.Height == best.Height && f.Bitrate > best.Bitrate) {
			best = f
		}
	}
	return best
}
