// Command wosoctl loads FBref CSV exports into the stats store and inspects the result.
//
// Usage:
//
//	wosoctl import clubs data/wsl_teams.csv
//	wosoctl import player-stats data/wsl_players.csv --season-id 2 --league-id 1
//	wosoctl batch data/wsl.yaml
//	wosoctl combine data/players_raw.csv data/players.csv
//	wosoctl leaderboard players --category top_scorers --league-id 1
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/woso-api/internal/app"
	"github.com/riskibarqy/woso-api/internal/config"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/spf13/cobra"
)

var logger = logging.NewConsole(logging.LevelInfo).Named("wosoctl")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "wosoctl",
		Short:         "Women's soccer stats loader",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(importCmd(), batchCmd(), combineCmd(), leaderboardCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// withServices opens the configured repositories for the duration of fn.
func withServices(ctx context.Context, fn func(services app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger = logger.With("driver", cfg.RepositoryDriver)

	repos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Warn("close repositories failed", "error", err)
		}
	}()

	return fn(app.NewServices(cfg, repos, logger))
}
