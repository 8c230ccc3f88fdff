package memory

import (
	"context"
	"sync"

	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	playerNames []string
	gameState   []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player name operations

func (s *Storage) GetPlayerNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.playerNames))
	copy(names, s.playerNames)
	return names, nil
}

func (s *Storage) SavePlayerNames(ctx context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerNames = make([]string, len(names))
	copy(s.playerNames, names)
	return nil
}

// Game state operations

func (s *Storage) GetGameState(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gameState == nil {
		return nil, model.ErrGameStateNotFound
	}
	data := make([]byte, len(s.gameState))
	copy(data, s.gameState)
	return data, nil
}

func (s *Storage) SaveGameState(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameState = make([]byte, len(data))
	copy(s.gameState, data)
	return nil
}

func (s *Storage) DeleteGameState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameState = nil
	return nil
}

// Close is a no-op for in-memory storage
func (s *Storage) Close() error {
	return nil
}
