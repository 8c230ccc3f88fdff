// Package sqlite provides a SQLite-backed implementation of the storage.Storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mcoot/vierbure/internal/model"
	"github.com/mcoot/vierbure/internal/storage"
)

// Entry keys within a profile
const (
	keyPlayerNames = "player_names"
	keyGameState   = "game_state"
)

// Ensure Storage implements storage.Storage
var _ storage.Storage = (*Storage)(nil)

// Storage implements storage.Storage using SQLite.
type Storage struct {
	db      *sql.DB
	profile string
}

// New opens (or creates) the database at dbPath and runs migrations.
// profile namespaces the entries; empty means "default".
func New(dbPath, profile string) (*Storage, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if profile == "" {
		profile = "default"
	}
	return &Storage{db: db, profile: profile}, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// GetPlayerNames returns the stored name list, or an empty slice.
func (s *Storage) GetPlayerNames(ctx context.Context) ([]string, error) {
	data, err := s.get(ctx, keyPlayerNames)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to decode player names: %w", err)
	}
	return names, nil
}

// SavePlayerNames replaces the stored name list.
func (s *Storage) SavePlayerNames(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode player names: %w", err)
	}
	if err := s.put(ctx, keyPlayerNames, data); err != nil {
		return fmt.Errorf("failed to save player names: %w", err)
	}
	return nil
}

// GetGameState returns the stored game state blob.
func (s *Storage) GetGameState(ctx context.Context) ([]byte, error) {
	data, err := s.get(ctx, keyGameState)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGameStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}
	return data, nil
}

// SaveGameState replaces the stored game state blob.
func (s *Storage) SaveGameState(ctx context.Context, data []byte) error {
	if err := s.put(ctx, keyGameState, data); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

// DeleteGameState removes the game state entry, leaving player names untouched.
func (s *Storage) DeleteGameState(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM entries WHERE profile = ? AND key = ?",
		s.profile, keyGameState,
	)
	if err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	return nil
}

func (s *Storage) get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM entries WHERE profile = ? AND key = ?",
		s.profile, key,
	).Scan(&data)
	return data, err
}

func (s *Storage) put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (profile, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.profile, key, value, time.Now().Unix(),
	)
	return err
}
