package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/season"
)

type SeasonService struct {
	seasonRepo season.Repository
	leagueRepo league.Repository
}

func NewSeasonService(seasonRepo season.Repository, leagueRepo league.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo, leagueRepo: leagueRepo}
}

func (s *SeasonService) List(ctx context.Context, filter season.Filter) ([]season.Season, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset
	filter.Label = strings.TrimSpace(filter.Label)

	items, err := s.seasonRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, id int64) (season.Season, error) {
	if err := requireID("season", id); err != nil {
		return season.Season{}, err
	}
	item, exists, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *SeasonService) Create(ctx context.Context, item season.Season) (season.Season, error) {
	item.Label = strings.TrimSpace(item.Label)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, item.LeagueID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: league=%d", ErrNotFound, item.LeagueID)
	}

	created, err := s.seasonRepo.Create(ctx, item)
	if err != nil {
		return season.Season{}, createError("create season", err, season.ErrConflict)
	}
	return created, nil
}
