package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/leaderboard"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// SeasonBoard is one season's ranked list.
type SeasonBoard[T any] struct {
	Season  string
	Entries []leaderboard.Entry[T]
}

// Board is a category ranked per season, latest season first.
type Board[T any] struct {
	Key     string
	Title   string
	Field   string
	Seasons []SeasonBoard[T]
}

// SeasonGroup is every row of one season.
type SeasonGroup[T any] struct {
	Season string
	Rows   []T
}

type LeaguePage struct {
	League           league.League
	Seasons          []season.Season
	Clubs            []club.Club
	ClubBoards       []Board[clubstats.SeasonStat]
	PlayerBoards     []Board[playerstats.SeasonStat]
	U23Boards        []Board[playerstats.SeasonStat]
	GoalkeeperBoards []Board[goalkeeperstats.SeasonStat]
}

type ClubPage struct {
	Club             club.Club
	Seasons          []clubstats.SeasonStat
	Roster           []SeasonGroup[playerstats.SeasonStat]
	Goalkeepers      []SeasonGroup[goalkeeperstats.SeasonStat]
	PlayerBoards     []Board[playerstats.SeasonStat]
	GoalkeeperBoards []Board[goalkeeperstats.SeasonStat]
}

type PlayerPage struct {
	Player                 player.Player
	Role                   PlayerRole
	Nationality            string
	Seasons                []playerstats.SeasonStat
	GoalkeeperSeasons      []goalkeeperstats.SeasonStat
	LatestGoalContribution *int
	CareerGoalContribution *int
}

type PageService struct {
	leagueRepo         league.Repository
	seasonRepo         season.Repository
	clubStatRepo       clubstats.Repository
	playerStatRepo     playerstats.Repository
	goalkeeperStatRepo goalkeeperstats.Repository
	resolver           *ResolverService
	limit              int
}

func NewPageService(
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	clubStatRepo clubstats.Repository,
	playerStatRepo playerstats.Repository,
	goalkeeperStatRepo goalkeeperstats.Repository,
	resolver *ResolverService,
	limit int,
) *PageService {
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}
	return &PageService{
		leagueRepo:         leagueRepo,
		seasonRepo:         seasonRepo,
		clubStatRepo:       clubStatRepo,
		playerStatRepo:     playerStatRepo,
		goalkeeperStatRepo: goalkeeperStatRepo,
		resolver:           resolver,
		limit:              limit,
	}
}

type statSet struct {
	clubs       []clubstats.SeasonStat
	players     []playerstats.SeasonStat
	goalkeepers []goalkeeperstats.SeasonStat
}

// loadStats reads the three stat collections concurrently; withClubs=false skips club rows.
func (s *PageService) loadStats(ctx context.Context, withClubs bool, clubFilter clubstats.Filter, playerFilter playerstats.Filter, goalkeeperFilter goalkeeperstats.Filter) (statSet, error) {
	var out statSet
	p := pool.New().WithContext(ctx).WithCancelOnError()
	if withClubs {
		p.Go(func(ctx context.Context) error {
			rows, err := s.clubStatRepo.List(ctx, clubFilter)
			if err != nil {
				return fmt.Errorf("list club season stats: %w", err)
			}
			out.clubs = rows
			return nil
		})
	}
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerStatRepo.List(ctx, playerFilter)
		if err != nil {
			return fmt.Errorf("list player season stats: %w", err)
		}
		out.players = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.goalkeeperStatRepo.List(ctx, goalkeeperFilter)
		if err != nil {
			return fmt.Errorf("list goalkeeper season stats: %w", err)
		}
		out.goalkeepers = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return statSet{}, err
	}
	return out, nil
}

// LeaguePage builds every leaderboard of a league, looked up by its code ignoring case.
func (s *PageService) LeaguePage(ctx context.Context, code string) (LeaguePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.LeaguePage", attribute.String("league.code", code))
	defer span.End()

	code = strings.TrimSpace(code)
	if code == "" {
		return LeaguePage{}, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}
	item, exists, err := s.leagueRepo.GetByCode(ctx, code)
	if err != nil {
		return LeaguePage{}, fmt.Errorf("get league by code: %w", err)
	}
	if !exists {
		return LeaguePage{}, fmt.Errorf("%w: league code=%s", ErrNotFound, code)
	}

	seasons, err := s.seasonRepo.List(ctx, season.Filter{LeagueID: item.ID})
	if err != nil {
		return LeaguePage{}, fmt.Errorf("list seasons: %w", err)
	}
	stats, err := s.loadStats(ctx, true,
		clubstats.Filter{LeagueID: item.ID},
		playerstats.Filter{LeagueID: item.ID},
		goalkeeperstats.Filter{LeagueID: item.ID},
	)
	if err != nil {
		return LeaguePage{}, err
	}

	page := LeaguePage{League: item, Seasons: seasons, Clubs: clubsOf(stats.clubs)}
	if page.ClubBoards, err = buildBoards(stats.clubs, leaderboard.ClubSchema(), leaderboard.ClubCategories(), s.limit); err != nil {
		return LeaguePage{}, err
	}
	if page.PlayerBoards, err = buildBoards(stats.players, leaderboard.PlayerSchema(), leaderboard.PlayerCategories(), s.limit); err != nil {
		return LeaguePage{}, err
	}
	if page.U23Boards, err = buildBoards(stats.players, leaderboard.PlayerSchema(), leaderboard.U23PlayerCategories(), s.limit); err != nil {
		return LeaguePage{}, err
	}
	if page.GoalkeeperBoards, err = buildBoards(stats.goalkeepers, leaderboard.GoalkeeperSchema(), leaderboard.GoalkeeperCategories(), s.limit); err != nil {
		return LeaguePage{}, err
	}
	return page, nil
}

// ClubPage resolves token with ResolveClub and gathers the club's seasons, rosters and boards.
func (s *PageService) ClubPage(ctx context.Context, token string) (ClubPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.ClubPage", attribute.String("page.token", token))
	defer span.End()

	found, err := s.resolver.ResolveClub(ctx, token)
	if err != nil {
		return ClubPage{}, err
	}
	stats, err := s.loadStats(ctx, true,
		clubstats.Filter{ClubID: found.ID},
		playerstats.Filter{ClubID: found.ID},
		goalkeeperstats.Filter{ClubID: found.ID},
	)
	if err != nil {
		return ClubPage{}, err
	}

	seasons := append([]clubstats.SeasonStat(nil), stats.clubs...)
	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].SeasonLabel > seasons[j].SeasonLabel
	})

	roster := groupBySeason(stats.players, func(r playerstats.SeasonStat) string { return r.SeasonLabel })
	for _, group := range roster {
		sort.SliceStable(group.Rows, func(i, j int) bool {
			a, b := deref(group.Rows[i].Position), deref(group.Rows[j].Position)
			if a != b {
				return a > b
			}
			return group.Rows[i].PlayerName < group.Rows[j].PlayerName
		})
	}
	keepers := groupBySeason(stats.goalkeepers, func(r goalkeeperstats.SeasonStat) string { return r.SeasonLabel })
	for _, group := range keepers {
		sort.SliceStable(group.Rows, func(i, j int) bool {
			return group.Rows[i].PlayerName < group.Rows[j].PlayerName
		})
	}

	page := ClubPage{Club: found, Seasons: seasons, Roster: roster, Goalkeepers: keepers}
	if page.PlayerBoards, err = buildBoards(stats.players, leaderboard.PlayerSchema(), leaderboard.PlayerCategories(), s.limit); err != nil {
		return ClubPage{}, err
	}
	if page.GoalkeeperBoards, err = buildBoards(stats.goalkeepers, leaderboard.GoalkeeperSchema(), leaderboard.GoalkeeperCategories(), s.limit); err != nil {
		return ClubPage{}, err
	}
	return page, nil
}

// PlayerPage resolves token with ResolvePlayer and returns the player's seasons, oldest first.
func (s *PageService) PlayerPage(ctx context.Context, token string) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.PlayerPage", attribute.String("page.token", token))
	defer span.End()

	resolved, err := s.resolver.ResolvePlayer(ctx, token)
	if err != nil {
		return PlayerPage{}, err
	}
	page := PlayerPage{
		Player:      resolved.Player,
		Role:        resolved.Role,
		Nationality: player.CleanNationality(resolved.Player.Nationality),
	}

	if resolved.Role == RoleGoalkeeper {
		rows, err := s.goalkeeperStatRepo.List(ctx, goalkeeperstats.Filter{PlayerID: resolved.Player.ID})
		if err != nil {
			return PlayerPage{}, fmt.Errorf("list goalkeeper season stats: %w", err)
		}
		page.GoalkeeperSeasons = rows
		return page, nil
	}

	rows, err := s.playerStatRepo.List(ctx, playerstats.Filter{PlayerID: resolved.Player.ID})
	if err != nil {
		return PlayerPage{}, fmt.Errorf("list player season stats: %w", err)
	}
	page.Seasons = rows
	if len(rows) > 0 {
		if v, ok := rows[len(rows)-1].GoalContribution(); ok {
			page.LatestGoalContribution = &v
		}
		total, present := 0, false
		for _, row := range rows {
			if v, ok := row.GoalContribution(); ok {
				total += v
				present = true
			}
		}
		if present {
			page.CareerGoalContribution = &total
		}
	}
	return page, nil
}

func buildBoards[T any](records []T, schema leaderboard.Schema[T], categories []leaderboard.Category, limit int) ([]Board[T], error) {
	boards := make([]Board[T], 0, len(categories))
	for _, category := range categories {
		query := category.Query
		if query.Limit == 0 {
			query.Limit = limit
		}
		ranked, err := leaderboard.RankBy(records, schema, query)
		if err != nil {
			return nil, fmt.Errorf("rank %s by %s: %w", schema.Kind, category.Key, err)
		}
		boards = append(boards, Board[T]{
			Key:     category.Key,
			Title:   category.Title,
			Field:   query.Field,
			Seasons: seasonBoards(ranked),
		})
	}
	return boards, nil
}

func seasonBoards[T any](ranked leaderboard.Result[T]) []SeasonBoard[T] {
	out := make([]SeasonBoard[T], 0, len(ranked))
	for _, label := range ranked.Seasons() {
		out = append(out, SeasonBoard[T]{Season: label, Entries: ranked[label]})
	}
	return out
}

// groupBySeason buckets rows by label, latest label first; rows keep input order.
func groupBySeason[T any](rows []T, label func(T) string) []SeasonGroup[T] {
	index := make(map[string]int)
	var out []SeasonGroup[T]
	for _, row := range rows {
		key := label(row)
		pos, ok := index[key]
		if !ok {
			pos = len(out)
			index[key] = pos
			out = append(out, SeasonGroup[T]{Season: key})
		}
		out[pos].Rows = append(out[pos].Rows, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Season > out[j].Season })
	return out
}

func clubsOf(rows []clubstats.SeasonStat) []club.Club {
	seen := make(map[int64]struct{}, len(rows))
	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.ClubID]; dup {
			continue
		}
		seen[row.ClubID] = struct{}{}
		out = append(out, club.Club{ID: row.ClubID, Name: row.ClubName, FbrefID: row.ClubFbrefID})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
