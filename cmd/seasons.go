package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shua-cli/shua/show"
	"github.com/shua-cli/shua/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seasonsCmd)
}

var seasonsCmd = &cobra.Command{
	Use:     "seasons",
	Short:   "List the seasons that can be played and their episode counts",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(renderSeasons())
	},
}

func renderSeasons() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Season", "Name", "Episodes"})

	total := 0
	for _, season := range show.Seasons() {
		count, err := show.MaxEpisode(season)
		handleErr(err)
		name, err := show.DisplayName(season)
		handleErr(err)

		total += count
		tw.AppendRow(table.Row{strconv.Itoa(season), name, strconv.Itoa(count)})
	}
	tw.AppendFooter(table.Row{"", util.Quantify(len(show.Seasons()), "season", "seasons"), util.Quantify(total, "episode", "episodes")})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
