package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/services/validation"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayersCountCmd())
	cmd.AddCommand(newPlayersNamesCmd())
	cmd.AddCommand(newPlayersRenameCmd())
	cmd.AddCommand(newPlayersDefaultsCmd())

	return cmd
}

func newPlayersCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <n>",
		Short: fmt.Sprintf("Set the number of players (%d-%d)", model.MinPlayers, model.MaxPlayers),
		Long: `Set the number of players.

Players keep their scores when the count changes. Removed players are
dropped from the scoreboard; added players start with empty scores and
take their name from the saved names. Counts outside the range are
clamped; pass a negative count after --, for example:

  vierbure players count -- -2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", model.ErrInvalidPlayerCount, args[0])
			}

			out := newOutput(cmd)
			if clamped := validation.ValidatePlayerCount(n); clamped != n {
				out.PrintWarning(fmt.Sprintf("player count %d is out of range, using %d", n, clamped))
			}

			app.Scoreboard.SetPlayerCount(n)
			printScoreboard(cmd)
			return nil
		},
	}
}

func newPlayersNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the saved player names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newOutput(cmd).Print(buildNamesView(app.Scoreboard))
			return nil
		},
	}
}

func newPlayersRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <player> <name>",
		Short: "Rename a player",
		Long: fmt.Sprintf(`Rename a player.

Names longer than %d characters are cut. The name is remembered for the
slot even while fewer players are active.`, model.MaxNameLength),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil || slot < 1 || slot > model.MaxPlayers {
				return fmt.Errorf("%w: %s", model.ErrInvalidPlayer, args[0])
			}

			app.Scoreboard.UpdatePlayerName(strings.Join(args[1:], " "), slot-1)
			newOutput(cmd).Print(buildNamesView(app.Scoreboard))
			return nil
		},
	}
}

func newPlayersDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Give every player with a blank name their default name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Scoreboard.ApplyDefaultNames()
			newOutput(cmd).Print(buildNamesView(app.Scoreboard))
			return nil
		},
	}
}
