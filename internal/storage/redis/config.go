package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Profile namespaces the keys so several scoreboards can share one server
	Profile string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// GameStateTTL expires an untouched game; 0 keeps it forever.
	// Player names never expire.
	GameStateTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Profile:      "default",
		PoolSize:     4,
		MinIdleConns: 1,
		GameStateTTL: 0,
	}
}
