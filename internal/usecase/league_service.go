package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/season"
)

type LeagueService struct {
	leagueRepo  league.Repository
	countryRepo country.Repository
	seasonRepo  season.Repository
}

func NewLeagueService(leagueRepo league.Repository, countryRepo country.Repository, seasonRepo season.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo:  leagueRepo,
		countryRepo: countryRepo,
		seasonRepo:  seasonRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context, filter league.Filter) ([]league.League, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	if filter.CountryID < 0 {
		return nil, fmt.Errorf("%w: country id must be >= 0", ErrInvalidInput)
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Code = strings.TrimSpace(filter.Code)

	leagues, err := s.leagueRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID int64) (league.League, error) {
	if err := requireID("league", leagueID); err != nil {
		return league.League{}, err
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	return item, nil
}

func (s *LeagueService) CreateLeague(ctx context.Context, item league.League) (league.League, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Code != nil {
		code := strings.TrimSpace(*item.Code)
		if code == "" {
			item.Code = nil
		} else {
			item.Code = &code
		}
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.countryRepo.GetByID(ctx, item.CountryID)
	if err != nil {
		return league.League{}, fmt.Errorf("get country: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: country=%d", ErrNotFound, item.CountryID)
	}

	created, err := s.leagueRepo.Create(ctx, item)
	if err != nil {
		return league.League{}, createError("create league", err, league.ErrConflict)
	}
	return created, nil
}

func (s *LeagueService) ListSeasonsByLeague(ctx context.Context, leagueID int64) ([]season.Season, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	seasons, err := s.seasonRepo.List(ctx, season.Filter{LeagueID: leagueID, Limit: MaxPageSize})
	if err != nil {
		return nil, fmt.Errorf("list seasons by league: %w", err)
	}

	return seasons, nil
}
