package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/shua-cli/shua/color"
	"github.com/shua-cli/shua/config"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/style"
	"github.com/shua-cli/shua/where"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// supportedEnv lists every environment variable the application reads, sorted.
func supportedEnv() []string {
	envs := []string{where.EnvConfigPath}
	for _, k := range config.EnvExposed {
		field := config.Default[k]
		envs = append(envs, field.Envs()...)
	}
	envs = lo.Uniq(envs)
	slices.Sort(envs)
	return envs
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range supportedEnv() {
			value, present := os.LookupEnv(env)
			present = present && value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case isSecretEnv(env):
				cmd.Println(style.Fg(color.Green)(mask(value)))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}

func isSecretEnv(env string) bool {
	field := config.Default[key.YouTubeAPIKey]
	return lo.Contains(field.Envs(), env)
}
