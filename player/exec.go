package player

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shua-cli/shua/log"
)

// ExecLauncher runs the player in the foreground, attached to the terminal, and waits for it to exit.
type ExecLauncher struct{}

// Launch reports an error only when the process could not be started.
// A player that starts and then exits non-zero is logged and treated as played.
func (ExecLauncher) Launch(ctx context.Context, command, target string) error {
	cmd := exec.CommandContext(ctx, command, target)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Cancel = func() error { return terminate(cmd) }

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", command, err)
	}

	log.WithFields(map[string]any{"player": command, "pid": cmd.Process.Pid}).Info("player started")

	if err := cmd.Wait(); err != nil {
		log.WithFields(map[string]any{"player": command, "error": err}).Warn("player exited with error")
	}
	return nil
}

// sanitizeMediaTarget validates that a URL is safe to pass to a player as a positional argument.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// A leading dash would be parsed as a player flag.
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}
