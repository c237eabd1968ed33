// Package player hands a resolved video to an external media player.
// The configured player gets one launch; if it cannot be started, the default player gets exactly one more.
package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/log"
	"github.com/shua-cli/shua/resolver"
)

// ErrPlaybackFailed is returned when neither the configured nor the fallback player could be launched.
var ErrPlaybackFailed = errors.New("playback failed")

// Launcher starts command with url as its only argument.
// The returned error is a launch-level fault: the process never ran.
type Launcher interface {
	Launch(ctx context.Context, command, url string) error
}

// Target is what gets launched for one video.
type Target struct {
	WatchURL string
	Command  string
}

// WatchURL builds the canonical watch page of ref.
func WatchURL(ref resolver.VideoReference) string {
	return constant.YouTubeWatchURL + ref.VideoID
}

// Extractor turns a video id into a direct media URL.
type Extractor func(ctx context.Context, videoID string) (string, error)

// Dispatcher launches players for resolved videos.
type Dispatcher struct {
	// Command is the configured player; empty means the default.
	Command string
	// Fallback is retried once when Command fails to launch; empty means the default.
	Fallback string
	Launcher Launcher
	// Extract, when set, is tried before falling back to the watch URL.
	Extract Extractor
}

// Target derives the launch target of ref.
func (d *Dispatcher) Target(ref resolver.VideoReference) Target {
	command := d.Command
	if command == "" {
		command = constant.DefaultPlayer
	}
	return Target{WatchURL: WatchURL(ref), Command: command}
}

// Dispatch plays ref, retrying once with the fallback player on a launch fault.
func (d *Dispatcher) Dispatch(ctx context.Context, ref resolver.VideoReference) error {
	target := d.Target(ref)

	playURL, err := sanitizeMediaTarget(d.playURL(ctx, ref, target))
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	firstErr := d.Launcher.Launch(ctx, target.Command, playURL)
	if firstErr == nil {
		return nil
	}

	fallback := d.Fallback
	if fallback == "" {
		fallback = constant.DefaultPlayer
	}
	log.WithFields(map[string]any{"player": target.Command, "fallback": fallback, "error": firstErr}).Warn("player failed to launch, retrying with fallback")

	secondErr := d.Launcher.Launch(ctx, fallback, playURL)
	if secondErr == nil {
		return nil
	}

	return &PlaybackError{Command: target.Command, Fallback: fallback, Errs: []error{firstErr, secondErr}}
}

func (d *Dispatcher) playURL(ctx context.Context, ref resolver.VideoReference, target Target) string {
	if d.Extract == nil {
		return target.WatchURL
	}

	stream, err := d.Extract(ctx, ref.VideoID)
	if err == nil {
		stream, err = sanitizeMediaTarget(stream)
	}
	if err != nil {
		log.WithFields(map[string]any{"video": ref.VideoID, "error": err}).Warn("stream extraction failed, using watch url")
		return target.WatchURL
	}
	return stream
}

// PlaybackError reports both failed launches.
type PlaybackError struct {
	Command  string
	Fallback string
	Errs     []error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("ფლეერის გაშვება ვერ მოხერხდა (%s, %s): %v", e.Command, e.Fallback, errors.Join(e.Errs...))
}

func (e *PlaybackError) Unwrap() []error {
	return append([]error{ErrPlaybackFailed}, e.Errs...)
}
