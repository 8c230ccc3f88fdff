package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the scoreboard",
		Long: `Show the scoreboard.

Rows are rounds, columns are players. Bottom scores are shown in
parentheses. The latest round is marked with *, confirmed rounds with ok
and rounds whose top scores don't add up to 157 with !.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printScoreboard(cmd)
			return nil
		},
	}
}

func printScoreboard(cmd *cobra.Command) {
	newOutput(cmd).Print(buildScoreboardView(app.Scoreboard))
}
