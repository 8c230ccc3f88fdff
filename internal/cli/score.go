package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/vierbure/internal/model"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score commands",
		Long: `Score commands.

Rounds and players are numbered from 1. Only the latest round can be
edited. Pass negative numbers after --, for example:

  vierbure score bottom 2 1 -- -50`,
	}

	cmd.AddCommand(newScoreTopCmd())
	cmd.AddCommand(newScoreBottomCmd())
	cmd.AddCommand(newScoreClearBottomCmd())
	cmd.AddCommand(newScoreRestCmd())
	cmd.AddCommand(newScoreMatchCmd())

	return cmd
}

func newScoreTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top <round> <player> <value>",
		Short: "Set a top score",
		Long: fmt.Sprintf(`Set a top score.

Values are clamped to %d..%d and an empty value counts as 0. A value
that isn't a number is rejected with a warning and the score is left
unchanged.`, model.MinScoreValue, model.MaxScoreValue),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseEditableCell(args[0], args[1])
			if err != nil {
				return err
			}

			if err := app.Scoreboard.UpdateTopScore(args[2], cell.Round, cell.PlayerIndex); err != nil {
				if !errors.Is(err, model.ErrInvalidScoreValue) {
					return err
				}
				newOutput(cmd).PrintWarning(fmt.Sprintf("%q is not a score, nothing changed", args[2]))
			}
			printScoreboard(cmd)
			return nil
		},
	}
}

func newScoreBottomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bottom <round> <player> <delta>",
		Short: "Add to a bottom score",
		Long: fmt.Sprintf(`Add to a bottom score.

The usual steps are %v, positive or negative.`, model.ScoreIncrements),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseEditableCell(args[0], args[1])
			if err != nil {
				return err
			}
			delta, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: %s", model.ErrInvalidScoreValue, args[2])
			}

			withSelection(cell, func() {
				app.Scoreboard.AdjustBottomScore(delta)
			})
			printScoreboard(cmd)
			return nil
		},
	}
}

func newScoreClearBottomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-bottom <round> <player>",
		Short: "Clear a bottom score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseEditableCell(args[0], args[1])
			if err != nil {
				return err
			}

			withSelection(cell, app.Scoreboard.ClearBottomScore)
			printScoreboard(cmd)
			return nil
		},
	}
}

func newScoreRestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rest <round> <player>",
		Short: fmt.Sprintf("Set a top score to what the other players leave of %d", model.TotalPointsPerRound),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseEditableCell(args[0], args[1])
			if err != nil {
				return err
			}

			withSelection(cell, app.Scoreboard.FillTopScoreToTotal)
			printScoreboard(cmd)
			return nil
		},
	}
}

func newScoreMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <round> <player>",
		Short: "Record a Match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseEditableCell(args[0], args[1])
			if err != nil {
				return err
			}

			withSelection(cell, app.Scoreboard.SetTopScoreToMatch)
			printScoreboard(cmd)
			return nil
		},
	}
}

// withSelection runs a selection-based operation against cell
func withSelection(cell model.Cell, op func()) {
	app.Scoreboard.SelectCell(cell.Round, cell.PlayerIndex)
	defer app.Scoreboard.ClearSelection()
	op()
}
