//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// terminate asks the player to quit so it can restore the terminal.
func terminate(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Signal(syscall.SIGTERM)
}
