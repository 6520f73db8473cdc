package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/woso-api/internal/config"
	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	cacherepo "github.com/riskibarqy/woso-api/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/woso-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/woso-api/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/woso-api/internal/platform/cache"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/platform/resilience"
)

// Repositories is the storage surface shared by every service.
type Repositories struct {
	Countries       country.Repository
	Leagues         league.Repository
	Seasons         season.Repository
	Clubs           club.Repository
	Players         player.Repository
	ClubStats       clubstats.Repository
	PlayerStats     playerstats.Repository
	GoalkeeperStats goalkeeperstats.Repository

	cache *basecache.Store
	close func() error
}

// CacheStats reports read-through cache usage; ok is false when caching is disabled.
func (r Repositories) CacheStats() (stats basecache.Stats, ok bool) {
	if r.cache == nil {
		return basecache.Stats{}, false
	}
	return r.cache.Stats(), true
}

// Close releases the underlying connection pool, if any.
func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// OpenRepositories builds the repository set selected by cfg.RepositoryDriver and seeds the
// reference catalog (countries, leagues, seasons).
func OpenRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos Repositories
		err   error
	)
	switch cfg.RepositoryDriver {
	case config.RepositoryMemory:
		repos = openMemoryRepositories()
	case config.RepositoryPostgres:
		repos, err = openPostgresRepositories(ctx, cfg, logger)
	default:
		err = fmt.Errorf("unsupported repository driver %q", cfg.RepositoryDriver)
	}
	if err != nil {
		return Repositories{}, err
	}

	if cfg.CacheEnabled {
		repos = withCache(repos, cfg, logger)
	}

	logger.InfoContext(ctx, "repositories ready",
		"driver", cfg.RepositoryDriver,
		"cache", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL,
	)
	return repos, nil
}

func openMemoryRepositories() Repositories {
	store := memory.NewStore()
	store.Seed(memory.DefaultSeed())

	return Repositories{
		Countries:       memory.NewCountryRepository(store),
		Leagues:         memory.NewLeagueRepository(store),
		Seasons:         memory.NewSeasonRepository(store),
		Clubs:           memory.NewClubRepository(store),
		Players:         memory.NewPlayerRepository(store),
		ClubStats:       memory.NewClubStatRepository(store),
		PlayerStats:     memory.NewPlayerStatRepository(store),
		GoalkeeperStats: memory.NewGoalkeeperStatRepository(store),
	}
}

func openPostgresRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return Repositories{}, err
	}

	if err := postgres.BootstrapSeed(ctx, db, memory.DefaultSeed()); err != nil {
		_ = db.Close()
		return Repositories{}, fmt.Errorf("seed reference catalog: %w", err)
	}
	logger.InfoContext(ctx, "database connected", "db_name", dbNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)

	return Repositories{
		Countries:       postgres.NewCountryRepository(db),
		Leagues:         postgres.NewLeagueRepository(db),
		Seasons:         postgres.NewSeasonRepository(db),
		Clubs:           postgres.NewClubRepository(db),
		Players:         postgres.NewPlayerRepository(db),
		ClubStats:       postgres.NewClubStatRepository(db),
		PlayerStats:     postgres.NewPlayerStatRepository(db),
		GoalkeeperStats: postgres.NewGoalkeeperStatRepository(db),
		close:           db.Close,
	}, nil
}

func withCache(repos Repositories, cfg config.Config, logger *logging.Logger) Repositories {
	store := basecache.NewStore(cfg.CacheTTL)
	breaker := resilience.NewCircuitBreaker("db", resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		IsCallerError:    isConflict,
	})
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	})

	return Repositories{
		Countries:       cacherepo.NewCountryRepository(repos.Countries, store, breaker),
		Leagues:         cacherepo.NewLeagueRepository(repos.Leagues, store, breaker),
		Seasons:         cacherepo.NewSeasonRepository(repos.Seasons, store, breaker),
		Clubs:           cacherepo.NewClubRepository(repos.Clubs, store, breaker),
		Players:         cacherepo.NewPlayerRepository(repos.Players, store, breaker),
		ClubStats:       cacherepo.NewClubStatRepository(repos.ClubStats, store, breaker),
		PlayerStats:     cacherepo.NewPlayerStatRepository(repos.PlayerStats, store, breaker),
		GoalkeeperStats: cacherepo.NewGoalkeeperStatRepository(repos.GoalkeeperStats, store, breaker),
		cache:           store,
		close:           repos.close,
	}
}

// isConflict reports uniqueness violations; they say nothing about database health.
func isConflict(err error) bool {
	for _, target := range []error{
		country.ErrConflict,
		league.ErrConflict,
		season.ErrConflict,
		club.ErrConflict,
		player.ErrConflict,
		clubstats.ErrConflict,
		playerstats.ErrConflict,
		goalkeeperstats.ErrConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
