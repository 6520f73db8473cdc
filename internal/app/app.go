package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/woso-api/internal/config"
	"github.com/riskibarqy/woso-api/internal/infrastructure/csvsource"
	"github.com/riskibarqy/woso-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/woso-api/internal/platform/id"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/platform/tabular"
	"github.com/riskibarqy/woso-api/internal/usecase"
)

// Services groups the use cases exposed by the HTTP API and the CLI.
type Services struct {
	Countries   *usecase.CountryService
	Leagues     *usecase.LeagueService
	Seasons     *usecase.SeasonService
	Clubs       *usecase.ClubService
	Players     *usecase.PlayerService
	Stats       *usecase.StatsService
	Resolver    *usecase.ResolverService
	Pages       *usecase.PageService
	Leaderboard *usecase.LeaderboardService
	Importer    *usecase.ImporterService
	Batch       *usecase.BatchService
}

func NewServices(cfg config.Config, repos Repositories, logger *logging.Logger) Services {
	if logger == nil {
		logger = logging.Default()
	}

	resolver := usecase.NewResolverService(repos.Clubs, repos.Players, repos.PlayerStats, repos.GoalkeeperStats)
	importer := usecase.NewImporterService(
		repos.Leagues,
		repos.Seasons,
		repos.Clubs,
		repos.Players,
		repos.ClubStats,
		repos.PlayerStats,
		repos.GoalkeeperStats,
		id.NewUUIDGenerator(),
		logger,
	)

	return Services{
		Countries: usecase.NewCountryService(repos.Countries),
		Leagues:   usecase.NewLeagueService(repos.Leagues, repos.Countries, repos.Seasons),
		Seasons:   usecase.NewSeasonService(repos.Seasons, repos.Leagues),
		Clubs:     usecase.NewClubService(repos.Clubs, repos.PlayerStats, repos.GoalkeeperStats),
		Players:   usecase.NewPlayerService(repos.Players),
		Stats:     usecase.NewStatsService(repos.Leagues, repos.ClubStats, repos.PlayerStats, repos.GoalkeeperStats),
		Resolver:  resolver,
		Pages: usecase.NewPageService(
			repos.Leagues,
			repos.Seasons,
			repos.ClubStats,
			repos.PlayerStats,
			repos.GoalkeeperStats,
			resolver,
			cfg.LeaderboardLimit,
		),
		Leaderboard: usecase.NewLeaderboardService(repos.ClubStats, repos.PlayerStats, repos.GoalkeeperStats),
		Importer:    importer,
		Batch:       usecase.NewBatchService(importer, OpenCSV, logger),
	}
}

// OpenCSV opens a CSV file as a tabular source.
func OpenCSV(path string) (tabular.Source, error) {
	src, err := csvsource.Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func NewHTTPServer(cfg config.Config, services Services, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	handler := httpapi.NewHandler(
		services.Countries,
		services.Leagues,
		services.Seasons,
		services.Clubs,
		services.Players,
		services.Stats,
		services.Pages,
		services.Leaderboard,
		services.Importer,
		cfg.ImportMaxUploadBytes,
		logger,
	)
	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		RateLimit: httpapi.RateLimitConfig{
			Enabled: cfg.RateLimitEnabled,
			RPS:     cfg.RateLimitRPS,
			Burst:   cfg.RateLimitBurst,
		},
	}, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
