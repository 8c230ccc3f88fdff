package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/vierbure/internal/config"
	"github.com/mcoot/vierbure/internal/factory"
	"github.com/mcoot/vierbure/internal/logging"
)

var (
	cfg *config.Config
	app *factory.App

	// openApp builds the application for a command; replaced in tests
	openApp = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*factory.App, error) {
		return factory.New(ctx, factory.ConfigFrom(cfg, logger))
	}
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = loadConfig()

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "vierbure",
		Short: "Scoreboard for the card game Vier Bure",
		Long: `vierbure keeps score for a game of Vier Bure with 3 to 6 players.

Each round has a top score per player, which must add up to 157 across
all players once the round is over (unless someone scored a Match), and a
free bottom score for adjustments. Only the latest round can be edited.

The scoreboard and player names are saved automatically.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := logging.ParseLevel(cfg.LogLevel)
			if verbose {
				level = slog.LevelDebug
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogFormat, level)

			opened, err := openApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			app = opened
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, redis, sqlite (env: VIERBURE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Profile, "profile", cfg.Profile, "Name of the saved scoreboard (env: VIERBURE_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: VIERBURE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file (env: VIERBURE_SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: VIERBURE_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env: VIERBURE_LOG_FORMAT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newRoundCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Post-run hooks are skipped when a command fails
		_ = closeApp(ctx)
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}

// closeApp saves pending changes and releases the storage of the open app
func closeApp(ctx context.Context) error {
	if app == nil {
		return nil
	}
	err := app.Close(ctx)
	app = nil
	return err
}
