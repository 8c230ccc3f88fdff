package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/vierbure/internal/config"
	"github.com/mcoot/vierbure/internal/dependencies/clock"
	"github.com/mcoot/vierbure/internal/dependencies/ids"
	"github.com/mcoot/vierbure/internal/services/autosave"
	"github.com/mcoot/vierbure/internal/services/persistence"
	"github.com/mcoot/vierbure/internal/services/scoreboard"
	"github.com/mcoot/vierbure/internal/storage"
	"github.com/mcoot/vierbure/internal/storage/memory"
	redisstorage "github.com/mcoot/vierbure/internal/storage/redis"
	"github.com/mcoot/vierbure/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	Gateway    *persistence.Gateway
	Scoreboard *scoreboard.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// Profile namespaces saved data in redis and sqlite
	Profile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// AutoSave controls the debounced save; zero values use autosave.DefaultConfig()
	AutoSave autosave.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// ConfigFrom builds a factory Config from loaded application settings
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = cfg.RedisURL
	redisCfg.Profile = cfg.Profile
	redisCfg.GameStateTTL = cfg.RedisTTL

	return Config{
		StorageType: cfg.Storage,
		Profile:     cfg.Profile,
		RedisConfig: &redisCfg,
		SQLitePath:  cfg.SQLitePath,
		AutoSave: autosave.Config{
			Delay:   cfg.SaveDelay,
			Timeout: cfg.SaveTimeout,
		},
		Logger: logger,
	}
}

// New creates a new application with all dependencies wired and the
// scoreboard restored from storage
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("storage opened", slog.String("type", storageTypeOrDefault(cfg.StorageType)))

	return newWithDependencies(ctx, store, clock.New(), ids.New(), cfg.AutoSave, logger), nil
}

func storageTypeOrDefault(t string) string {
	if t == "" {
		return config.StorageMemory
	}
	return t
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch storageTypeOrDefault(cfg.StorageType) {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisCfg := *cfg.RedisConfig
		if redisCfg.Profile == "" {
			redisCfg.Profile = cfg.Profile
		}
		store, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		return store, nil
	case config.StorageSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		store, err := sqlite.New(cfg.SQLitePath, cfg.Profile)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return store, nil
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	ctx context.Context,
	store storage.Storage,
	clk clock.Clock,
	idGen ids.Generator,
	saveCfg autosave.Config,
	logger *slog.Logger,
) *App {
	gateway := persistence.New(store, logger)
	controller := scoreboard.NewController(ctx, gateway, clk, idGen, saveCfg, logger)

	return &App{
		Storage:    store,
		Clock:      clk,
		IDs:        idGen,
		Gateway:    gateway,
		Scoreboard: controller,
	}
}

// Close saves pending changes and releases the storage
func (a *App) Close(ctx context.Context) error {
	a.Scoreboard.Close(ctx)
	return a.Storage.Close()
}
