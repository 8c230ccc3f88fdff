package storage

import (
	"context"
)

// Storage is the key-value store behind the persistence gateway. It holds
// two independent entries: the player name list and the game state blob.
type Storage interface {
	// Player name operations. GetPlayerNames returns an empty slice if none are stored.
	GetPlayerNames(ctx context.Context) ([]string, error)
	SavePlayerNames(ctx context.Context, names []string) error

	// Game state operations. GetGameState returns model.ErrGameStateNotFound if absent.
	GetGameState(ctx context.Context) ([]byte, error)
	SaveGameState(ctx context.Context, data []byte) error
	DeleteGameState(ctx context.Context) error

	// Close releases any underlying connection
	Close() error
}
