package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/woso-api/internal/config"
	"github.com/riskibarqy/woso-api/internal/domain/leaderboard"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/usecase"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:         ":0",
		ReadTimeout:      time.Second,
		WriteTimeout:     time.Second,
		RepositoryDriver: config.RepositoryMemory,
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		DBCircuitEnabled: true,
		AdminToken:       "token",
		LeaderboardLimit: 5,
	}
}

func TestOpenRepositories_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.RepositoryDriver = "sqlite"

	_, err := OpenRepositories(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_ServesSeededCatalog(t *testing.T) {
	cfg := memoryConfig()
	repos, err := OpenRepositories(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	server, err := NewHTTPServer(cfg, NewServices(cfg, repos, logging.NewNop()), logging.NewNop())
	require.NoError(t, err)
	require.Equal(t, cfg.ReadTimeout, server.ReadTimeout)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "WSL")

	stats, ok := repos.CacheStats()
	require.True(t, ok)
	require.Positive(t, stats.Entries)
}

func TestRepositories_CacheStatsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.CacheEnabled = false
	repos, err := OpenRepositories(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	_, ok := repos.CacheStats()
	require.False(t, ok)
}

func TestIsConflict(t *testing.T) {
	require.True(t, isConflict(fmt.Errorf("upsert: %w", playerstats.ErrConflict)))
	require.False(t, isConflict(errors.New("connection refused")))
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	repos, err := OpenRepositories(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	_, err = NewHTTPServer(cfg, NewServices(cfg, repos, logging.NewNop()), logging.NewNop())
	require.Error(t, err)
}

func TestBatchService_ImportsManifestFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clubs.csv"), []byte("team_id,team_name\nche,Chelsea\nars,Arsenal\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "table.csv"), []byte("team_id,points,rank\nche,55,1\nars,50,2\n"), 0o600))

	cfg := memoryConfig()
	repos, err := OpenRepositories(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	services := NewServices(cfg, repos, logging.NewNop())

	manifest := usecase.BatchManifest{
		Workers: 2,
		Stages: []usecase.BatchStage{
			{Name: "clubs", Imports: []usecase.BatchImport{{Kind: "clubs", File: "clubs.csv"}}},
			{Name: "tables", Imports: []usecase.BatchImport{{Kind: "club-season-stats", File: "table.csv", SeasonID: 2, LeagueID: 1}}},
		},
	}
	result, err := services.Batch.Run(context.Background(), manifest, dir)
	require.NoError(t, err)
	require.Len(t, result.Stages, 2)

	board, err := services.Leaderboard.Rank(context.Background(), usecase.LeaderboardQuery{
		Kind:     leaderboard.KindClub,
		Field:    "points_won",
		LeagueID: 1,
	})
	require.NoError(t, err)
	require.Len(t, board.Seasons, 1)
	require.Len(t, board.Seasons[0].Entries, 2)
}
