package cli

import (
	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start over: remove all rounds and scores, keeping the players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Scoreboard.ResetGame(cmd.Context())
			printScoreboard(cmd)
			return nil
		},
	}
}
