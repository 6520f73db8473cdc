package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

// StatsService lists the season stat collections, either directly or scoped to a league.
type StatsService struct {
	leagueRepo         league.Repository
	clubStatRepo       clubstats.Repository
	playerStatRepo     playerstats.Repository
	goalkeeperStatRepo goalkeeperstats.Repository
}

func NewStatsService(
	leagueRepo league.Repository,
	clubStatRepo clubstats.Repository,
	playerStatRepo playerstats.Repository,
	goalkeeperStatRepo goalkeeperstats.Repository,
) *StatsService {
	return &StatsService{
		leagueRepo:         leagueRepo,
		clubStatRepo:       clubStatRepo,
		playerStatRepo:     playerStatRepo,
		goalkeeperStatRepo: goalkeeperStatRepo,
	}
}

func (s *StatsService) ListClubStats(ctx context.Context, filter clubstats.Filter) ([]clubstats.SeasonStat, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset

	items, err := s.clubStatRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list club season stats: %w", err)
	}
	return items, nil
}

func (s *StatsService) ListPlayerStats(ctx context.Context, filter playerstats.Filter) ([]playerstats.SeasonStat, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset
	filter.Position = strings.TrimSpace(filter.Position)

	items, err := s.playerStatRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list player season stats: %w", err)
	}
	return items, nil
}

func (s *StatsService) ListGoalkeeperStats(ctx context.Context, filter goalkeeperstats.Filter) ([]goalkeeperstats.SeasonStat, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset

	items, err := s.goalkeeperStatRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list goalkeeper season stats: %w", err)
	}
	return items, nil
}

// ListClubsByLeague returns the clubs with a table row in the league, by name.
func (s *StatsService) ListClubsByLeague(ctx context.Context, leagueID, seasonID int64) ([]club.Club, error) {
	if err := s.ensureLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	rows, err := s.clubStatRepo.List(ctx, clubstats.Filter{LeagueID: leagueID, SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list club season stats: %w", err)
	}

	seen := make(map[int64]struct{}, len(rows))
	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ClubID]; ok {
			continue
		}
		seen[row.ClubID] = struct{}{}
		out = append(out, club.Club{ID: row.ClubID, Name: row.ClubName, FbrefID: row.ClubFbrefID})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *StatsService) ListPlayersByLeague(ctx context.Context, leagueID, seasonID int64) ([]playerstats.SeasonStat, error) {
	if err := s.ensureLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	items, err := s.playerStatRepo.List(ctx, playerstats.Filter{LeagueID: leagueID, SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list league players: %w", err)
	}
	return items, nil
}

func (s *StatsService) ListGoalkeepersByLeague(ctx context.Context, leagueID, seasonID int64) ([]goalkeeperstats.SeasonStat, error) {
	if err := s.ensureLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	items, err := s.goalkeeperStatRepo.List(ctx, goalkeeperstats.Filter{LeagueID: leagueID, SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list league goalkeepers: %w", err)
	}
	return items, nil
}

func (s *StatsService) ensureLeague(ctx context.Context, leagueID int64) error {
	if err := requireID("league", leagueID); err != nil {
		return err
	}
	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	return nil
}
