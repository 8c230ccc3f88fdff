// Package persistence loads and saves scoreboard data. Failures are logged and
// swallowed so that persistence problems never interrupt scorekeeping.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/storage"
)

// Gateway adapts a storage.Storage to the scoreboard's persistence needs
type Gateway struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new Gateway
func New(storage storage.Storage, logger *slog.Logger) *Gateway {
	return &Gateway{
		storage: storage,
		logger:  logger,
	}
}

// LoadPlayerNames returns exactly MaxPlayers names, padding with defaults
func (g *Gateway) LoadPlayerNames(ctx context.Context) []string {
	names, err := g.storage.GetPlayerNames(ctx)
	if err != nil {
		g.logger.Warn("failed to load player names, using defaults",
			slog.String("error", err.Error()),
		)
		names = nil
	}
	return model.NameRoster(names).Normalize()
}

// SavePlayerNames stores at most MaxPlayers names
func (g *Gateway) SavePlayerNames(ctx context.Context, names []string) {
	if len(names) > model.MaxPlayers {
		names = names[:model.MaxPlayers]
	}
	if err := g.storage.SavePlayerNames(ctx, names); err != nil {
		g.logger.Error("failed to save player names",
			slog.String("error", err.Error()),
		)
	}
}

// LoadGameState returns the saved game, or nil if there is none or it can't be decoded
func (g *Gateway) LoadGameState(ctx context.Context) *model.GameState {
	data, err := g.storage.GetGameState(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrGameStateNotFound) {
			g.logger.Error("failed to load game state",
				slog.String("error", err.Error()),
			)
		}
		return nil
	}

	state, err := DecodeGameState(data)
	if err != nil {
		g.logger.Error("failed to decode game state",
			slog.String("error", err.Error()),
		)
		return nil
	}

	g.logger.Debug("game state loaded",
		slog.Int("rounds", state.Rounds),
		slog.Int("player_count", state.ActivePlayerCount),
	)
	return state
}

// SaveGameState serializes and stores the full game state
func (g *Gateway) SaveGameState(ctx context.Context, state *model.GameState) {
	data, err := EncodeGameState(state)
	if err != nil {
		g.logger.Error("failed to encode game state",
			slog.String("error", err.Error()),
		)
		return
	}

	if err := g.storage.SaveGameState(ctx, data); err != nil {
		g.logger.Error("failed to save game state",
			slog.String("error", err.Error()),
		)
		return
	}

	g.logger.Debug("game state saved",
		slog.Int("rounds", state.Rounds),
		slog.Int("player_count", state.ActivePlayerCount),
	)
}

// ClearGameData removes the saved game; player names are kept
func (g *Gateway) ClearGameData(ctx context.Context) {
	if err := g.storage.DeleteGameState(ctx); err != nil {
		g.logger.Error("failed to clear game state",
			slog.String("error", err.Error()),
		)
	}
}
