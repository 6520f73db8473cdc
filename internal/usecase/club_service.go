package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

const maxStadiumLength = 200

type ClubService struct {
	clubRepo           club.Repository
	playerStatRepo     playerstats.Repository
	goalkeeperStatRepo goalkeeperstats.Repository
}

func NewClubService(
	clubRepo club.Repository,
	playerStatRepo playerstats.Repository,
	goalkeeperStatRepo goalkeeperstats.Repository,
) *ClubService {
	return &ClubService{
		clubRepo:           clubRepo,
		playerStatRepo:     playerStatRepo,
		goalkeeperStatRepo: goalkeeperStatRepo,
	}
}

func (s *ClubService) List(ctx context.Context, filter club.Filter) ([]club.Club, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset
	filter.Name = strings.TrimSpace(filter.Name)
	filter.FbrefID = strings.TrimSpace(filter.FbrefID)
	filter.Stadium = strings.TrimSpace(filter.Stadium)

	items, err := s.clubRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return items, nil
}

func (s *ClubService) Get(ctx context.Context, clubID int64) (club.Club, error) {
	if err := requireID("club", clubID); err != nil {
		return club.Club{}, err
	}
	item, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%d", ErrNotFound, clubID)
	}
	return item, nil
}

// UpdateStadium sets the stadium; a blank value clears it.
func (s *ClubService) UpdateStadium(ctx context.Context, clubID int64, stadium string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.UpdateStadium")
	defer span.End()

	if err := requireID("club", clubID); err != nil {
		return club.Club{}, err
	}
	var value *string
	if trimmed := strings.TrimSpace(stadium); trimmed != "" {
		if len(trimmed) > maxStadiumLength {
			return club.Club{}, fmt.Errorf("%w: stadium must be at most %d characters", ErrInvalidInput, maxStadiumLength)
		}
		value = &trimmed
	}

	updated, exists, err := s.clubRepo.UpdateStadium(ctx, clubID, value)
	if err != nil {
		return club.Club{}, fmt.Errorf("update club stadium: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%d", ErrNotFound, clubID)
	}
	return updated, nil
}

// ListPlayers returns the outfield season rows recorded for the club, optionally
// narrowed to one season.
func (s *ClubService) ListPlayers(ctx context.Context, clubID, seasonID int64) ([]playerstats.SeasonStat, error) {
	if _, err := s.Get(ctx, clubID); err != nil {
		return nil, err
	}
	items, err := s.playerStatRepo.List(ctx, playerstats.Filter{ClubID: clubID, SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list club players: %w", err)
	}
	return items, nil
}

func (s *ClubService) ListGoalkeepers(ctx context.Context, clubID, seasonID int64) ([]goalkeeperstats.SeasonStat, error) {
	if _, err := s.Get(ctx, clubID); err != nil {
		return nil, err
	}
	items, err := s.goalkeeperStatRepo.List(ctx, goalkeeperstats.Filter{ClubID: clubID, SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list club goalkeepers: %w", err)
	}
	return items, nil
}
