package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/icon"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/log"
	"github.com/shua-cli/shua/style"
	"github.com/spf13/viper"
)

// CheckDependencies warns when neither the configured nor the fallback player is on PATH.
// Playback still runs; the launch failure is reported there.
func CheckDependencies() {
	players := []string{viper.GetString(key.Player), viper.GetString(key.PlayerFallback), constant.DefaultPlayer}
	for _, p := range players {
		if p == "" {
			continue
		}
		if _, err := exec.LookPath(p); err == nil {
			return
		}
	}

	log.Warnf("no player found on PATH (tried %v)", players)
	printMissingDependencyWarning(constant.DefaultPlayer)
}

func printMissingDependencyWarning(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "sudo apt install " + dep
	case constant.Windows:
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Warning: Missing Player", icon.Get(icon.Warn)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("No media player was found in your PATH; '%s' is expected.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
