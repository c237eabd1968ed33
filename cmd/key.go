package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/shua-cli/shua/auth"
	"github.com/shua-cli/shua/color"
	"github.com/shua-cli/shua/icon"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keySetCmd, keyDeleteCmd, keyStatusCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the YouTube Data API key stored in the system keyring",
}

var keySetCmd = &cobra.Command{
	Use:   "set [api-key]",
	Short: "Store the API key, prompting for it when not given",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string
		if len(args) == 1 {
			apiKey = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{
				Message: "YouTube Data API key:",
			}, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetAPIKey(strings.TrimSpace(apiKey)))
		fmt.Printf("%s stored api key\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the stored API key",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteAPIKey()
		if errors.Is(err, auth.ErrNoKey) {
			err = errors.New("no api key stored")
		}
		handleErr(err)
		fmt.Printf("%s deleted api key\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the API key is read from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(keyStatus(viper.GetString(key.YouTubeAPIKey)))
	},
}

func keyStatus(configured string) string {
	if configured != "" {
		return style.Fg(color.Green)("configured") + " " + style.Faint("(config file or environment, "+mask(configured)+")")
	}

	if stored, err := auth.GetAPIKey(); err == nil && stored != "" {
		return style.Fg(color.Green)("keyring") + " " + style.Faint("("+mask(stored)+")")
	}

	return style.Fg(color.Yellow)("none") + " " + style.Faint("(anonymous search only)")
}

// mask keeps the last four characters of a secret.
func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
