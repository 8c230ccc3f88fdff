package config

import (
	"os"
	"path/filepath"
)

// DefaultSQLitePath returns ~/.vierbure/scoreboard.db, or a relative path if
// the home directory is unknown
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vierbure", "scoreboard.db")
	}
	return filepath.Join(home, ".vierbure", "scoreboard.db")
}
