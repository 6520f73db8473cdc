package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/leaderboard"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"go.opentelemetry.io/otel/attribute"
)

// LeaderboardQuery ranks one stat collection. Category, when set, supplies the field,
// direction and filters; explicit values still override it.
type LeaderboardQuery struct {
	Kind               string
	Category           string
	Field              string
	Direction          string
	Limit              int
	LeagueID           int64
	SeasonID           int64
	ClubID             int64
	U23                bool
	ExcludeNonPositive *bool
}

type LeaderboardEntry struct {
	Rank           int
	Value          *float64
	ClubStat       *clubstats.SeasonStat
	PlayerStat     *playerstats.SeasonStat
	GoalkeeperStat *goalkeeperstats.SeasonStat
}

type LeaderboardSeason struct {
	Season  string
	Entries []LeaderboardEntry
}

type LeaderboardResult struct {
	Kind      string
	Field     string
	Direction leaderboard.Direction
	Seasons   []LeaderboardSeason
}

type LeaderboardService struct {
	clubStatRepo       clubstats.Repository
	playerStatRepo     playerstats.Repository
	goalkeeperStatRepo goalkeeperstats.Repository
}

func NewLeaderboardService(
	clubStatRepo clubstats.Repository,
	playerStatRepo playerstats.Repository,
	goalkeeperStatRepo goalkeeperstats.Repository,
) *LeaderboardService {
	return &LeaderboardService{
		clubStatRepo:       clubStatRepo,
		playerStatRepo:     playerStatRepo,
		goalkeeperStatRepo: goalkeeperStatRepo,
	}
}

// Fields lists the rankable fields of kind.
func (s *LeaderboardService) Fields(kind string) ([]string, error) {
	switch kind {
	case leaderboard.KindClub:
		return leaderboard.ClubSchema().Fields(), nil
	case leaderboard.KindPlayer:
		return leaderboard.PlayerSchema().Fields(), nil
	case leaderboard.KindGoalkeeper:
		return leaderboard.GoalkeeperSchema().Fields(), nil
	default:
		return nil, fmt.Errorf("%w: unknown leaderboard kind %q", ErrInvalidInput, kind)
	}
}

func (s *LeaderboardService) Rank(ctx context.Context, in LeaderboardQuery) (LeaderboardResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Rank",
		attribute.String("leaderboard.kind", in.Kind),
		attribute.String("leaderboard.category", in.Category),
		attribute.String("leaderboard.field", in.Field),
	)
	defer span.End()

	query, err := buildLeaderboardQuery(in)
	if err != nil {
		return LeaderboardResult{}, err
	}
	result := LeaderboardResult{Kind: in.Kind, Field: query.Field, Direction: query.Direction}

	switch in.Kind {
	case leaderboard.KindClub:
		rows, err := s.clubStatRepo.List(ctx, clubstats.Filter{LeagueID: in.LeagueID, SeasonID: in.SeasonID, ClubID: in.ClubID})
		if err != nil {
			return LeaderboardResult{}, fmt.Errorf("list club season stats: %w", err)
		}
		ranked, err := leaderboard.RankBy(rows, leaderboard.ClubSchema(), query)
		if err != nil {
			return LeaderboardResult{}, mapRankError(err)
		}
		result.Seasons = flattenRanking(ranked, func(e *LeaderboardEntry, r clubstats.SeasonStat) { e.ClubStat = &r })
	case leaderboard.KindPlayer:
		rows, err := s.playerStatRepo.List(ctx, playerstats.Filter{LeagueID: in.LeagueID, SeasonID: in.SeasonID, ClubID: in.ClubID})
		if err != nil {
			return LeaderboardResult{}, fmt.Errorf("list player season stats: %w", err)
		}
		ranked, err := leaderboard.RankBy(rows, leaderboard.PlayerSchema(), query)
		if err != nil {
			return LeaderboardResult{}, mapRankError(err)
		}
		result.Seasons = flattenRanking(ranked, func(e *LeaderboardEntry, r playerstats.SeasonStat) { e.PlayerStat = &r })
	case leaderboard.KindGoalkeeper:
		rows, err := s.goalkeeperStatRepo.List(ctx, goalkeeperstats.Filter{LeagueID: in.LeagueID, SeasonID: in.SeasonID, ClubID: in.ClubID})
		if err != nil {
			return LeaderboardResult{}, fmt.Errorf("list goalkeeper season stats: %w", err)
		}
		ranked, err := leaderboard.RankBy(rows, leaderboard.GoalkeeperSchema(), query)
		if err != nil {
			return LeaderboardResult{}, mapRankError(err)
		}
		result.Seasons = flattenRanking(ranked, func(e *LeaderboardEntry, r goalkeeperstats.SeasonStat) { e.GoalkeeperStat = &r })
	default:
		return LeaderboardResult{}, fmt.Errorf("%w: unknown leaderboard kind %q", ErrInvalidInput, in.Kind)
	}

	return result, nil
}

func buildLeaderboardQuery(in LeaderboardQuery) (leaderboard.Query, error) {
	var query leaderboard.Query
	if key := strings.TrimSpace(in.Category); key != "" {
		category, ok := leaderboard.FindCategory(in.Kind, key)
		if !ok {
			return leaderboard.Query{}, fmt.Errorf("%w: unknown %s category %q", ErrInvalidInput, in.Kind, key)
		}
		query = category.Query
	}
	if field := strings.TrimSpace(in.Field); field != "" {
		query.Field = field
	}
	if query.Field == "" {
		return leaderboard.Query{}, fmt.Errorf("%w: field or category is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Direction) != "" || query.Direction == "" {
		direction, err := leaderboard.ParseDirection(in.Direction)
		if err != nil {
			return leaderboard.Query{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		query.Direction = direction
	}
	if in.Limit != 0 {
		query.Limit = in.Limit
	}
	if in.ExcludeNonPositive != nil {
		query.ExcludeNonPositive = *in.ExcludeNonPositive
	}
	if in.U23 {
		maxAge := leaderboard.U23MaxAge
		query.MaxAge = &maxAge
	}
	return query, nil
}

func mapRankError(err error) error {
	if errors.Is(err, leaderboard.ErrUnknownField) || errors.Is(err, leaderboard.ErrCohortUnsupported) || errors.Is(err, leaderboard.ErrInvalidDirection) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("rank leaderboard: %w", err)
}

func flattenRanking[T any](ranked leaderboard.Result[T], attach func(*LeaderboardEntry, T)) []LeaderboardSeason {
	out := make([]LeaderboardSeason, 0, len(ranked))
	for _, label := range ranked.Seasons() {
		entries := make([]LeaderboardEntry, 0, len(ranked[label]))
		for _, entry := range ranked[label] {
			row := LeaderboardEntry{Rank: entry.Rank}
			if entry.HasValue {
				value := entry.Value
				row.Value = &value
			}
			attach(&row, entry.Record)
			entries = append(entries, row)
		}
		out = append(out, LeaderboardSeason{Season: label, Entries: entries})
	}
	return out
}
