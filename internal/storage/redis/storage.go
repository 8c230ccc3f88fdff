package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Profile == "" {
		cfg.Profile = DefaultConfig().Profile
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player name operations

func (s *Storage) GetPlayerNames(ctx context.Context) ([]string, error) {
	names, err := s.client.LRange(ctx, playerNamesKey(s.cfg.Profile), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("get player names: %w", err)
	}
	return names, nil
}

func (s *Storage) SavePlayerNames(ctx context.Context, names []string) error {
	key := playerNamesKey(s.cfg.Profile)

	// Replace the list atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(names) > 0 {
		values := make([]any, len(names))
		for i, n := range names {
			values[i] = n
		}
		pipe.RPush(ctx, key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save player names: %w", err)
	}
	return nil
}

// Game state operations

func (s *Storage) GetGameState(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, gameStateKey(s.cfg.Profile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameStateNotFound
		}
		return nil, fmt.Errorf("get game state: %w", err)
	}
	return data, nil
}

func (s *Storage) SaveGameState(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, gameStateKey(s.cfg.Profile), data, s.cfg.GameStateTTL).Err(); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

func (s *Storage) DeleteGameState(ctx context.Context) error {
	if err := s.client.Del(ctx, gameStateKey(s.cfg.Profile)).Err(); err != nil {
		return fmt.Errorf("delete game state: %w", err)
	}
	return nil
}
