package cli

import (
	"fmt"
	"os"

	"github.com/mcoot/vierbure/internal/config"
	"github.com/mcoot/vierbure/internal/services/autosave"
)

// loadConfig reads settings from the environment, falling back to defaults
// when the environment cannot be parsed
func loadConfig() *config.Config {
	loaded, err := config.Load()
	if err == nil {
		return loaded
	}

	fmt.Fprintf(os.Stderr, "Warning: %s, using defaults\n", err)
	save := autosave.DefaultConfig()
	return &config.Config{
		Storage:     config.StorageSQLite,
		Profile:     "default",
		RedisURL:    "redis://localhost:6379",
		SQLitePath:  config.DefaultSQLitePath(),
		SaveDelay:   save.Delay,
		SaveTimeout: save.Timeout,
		LogLevel:    "warn",
		LogFormat:   "text",
		Output:      "text",
	}
}
