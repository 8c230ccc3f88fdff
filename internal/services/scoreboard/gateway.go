package scoreboard

import (
	"context"

	"github.com/mcoot/vierbure/internal/model"
)

// Gateway loads and saves scoreboard data. Implementations handle their own
// failures: loads fall back to defaults or nil, saves are best-effort.
type Gateway interface {
	LoadPlayerNames(ctx context.Context) []string
	SavePlayerNames(ctx context.Context, names []string)
	LoadGameState(ctx context.Context) *model.GameState
	SaveGameState(ctx context.Context, state *model.GameState)
	ClearGameData(ctx context.Context)
}

// Snapshot is a deep copy of everything the scoreboard persists
type Snapshot struct {
	State model.GameState
	Names []string
}
