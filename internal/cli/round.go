package cli

import (
	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Start a new round, freezing the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Scoreboard.AddRound()
			printScoreboard(cmd)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove",
		Short: "Remove the latest round and its scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Scoreboard.Rounds() == 0 {
				newOutput(cmd).PrintWarning("there are no rounds to remove")
			}
			app.Scoreboard.RemoveLastRound()
			printScoreboard(cmd)
			return nil
		},
	})

	return cmd
}
