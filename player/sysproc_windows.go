//go:build windows

package player

import "os/exec"

// terminate kills the player; Windows has no SIGTERM equivalent for console processes.
func terminate(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
