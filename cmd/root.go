// Package cmd implements the command-line interface of shua.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/shua-cli/shua/color"
	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/icon"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/log"
	"github.com/shua-cli/shua/open"
	"github.com/shua-cli/shua/resolver"
	"github.com/shua-cli/shua/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("season", "s", "", "Season to watch (1-10), random when omitted")
	rootCmd.Flags().StringP("episode", "e", "", "Episode to watch, random within the season when omitted")

	rootCmd.Flags().BoolP("browse", "b", false, "Open the YouTube results page in the browser when the episode cannot be found")

	rootCmd.Flags().Bool("extract", false, "Pass a direct stream URL to the player instead of the watch URL")
	lo.Must0(viper.BindPFlag(key.PlaybackExtractStream, rootCmd.Flags().Lookup("extract")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("player", "p", "", "Media player executable to launch")
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Shua + " [-s season] [-e episode]",
	Short: "Watch an episode of " + constant.ShowName + " from YouTube",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - "+constant.ShowName+", any season, any episode, straight into your player"),
	Example: "  shua            # random season, random episode\n" +
		"  shua -s 3       # random episode of season 3\n" +
		"  shua -s 3 -e 12",
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		req := request{
			Season:  optionalInt(lo.Must(cmd.Flags().GetString("season"))),
			Episode: optionalInt(lo.Must(cmd.Flags().GetString("episode"))),
		}

		err := newPipeline().run(cmd.Context(), req)

		var notFound *resolver.NotFoundError
		if errors.As(err, &notFound) && lo.Must(cmd.Flags().GetBool("browse")) {
			if openErr := open.Start(notFound.SearchURL); openErr != nil {
				log.Warnf("open search results: %s", openErr)
			}
		}

		handleErr(err)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
