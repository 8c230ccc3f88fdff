package cli

import (
	"fmt"
	"strconv"

	"github.com/mcoot/vierbure/internal/model"
)

// parseCell reads 1-based round and player arguments into 0-based indices
// and checks that the cell exists
func parseCell(roundArg, playerArg string) (model.Cell, error) {
	round, err := strconv.Atoi(roundArg)
	if err != nil || round < 1 || round > app.Scoreboard.Rounds() {
		return model.Cell{}, fmt.Errorf("%w: %s (rounds: %d)", model.ErrInvalidRoundNumber, roundArg, app.Scoreboard.Rounds())
	}

	player, err := strconv.Atoi(playerArg)
	if err != nil || player < 1 || player > app.Scoreboard.PlayerCount() {
		return model.Cell{}, fmt.Errorf("%w: %s (players: %d)", model.ErrInvalidPlayer, playerArg, app.Scoreboard.PlayerCount())
	}

	return model.Cell{Round: round - 1, PlayerIndex: player - 1}, nil
}

// parseEditableCell is parseCell restricted to the latest round
func parseEditableCell(roundArg, playerArg string) (model.Cell, error) {
	cell, err := parseCell(roundArg, playerArg)
	if err != nil {
		return model.Cell{}, err
	}
	if !app.Scoreboard.IsRoundEditable(cell.Round) {
		return model.Cell{}, fmt.Errorf("%w: round %d is frozen", model.ErrRoundFrozen, cell.Round+1)
	}
	return cell, nil
}
