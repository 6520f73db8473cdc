package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

const playerStatsTable = "player_season_stats"

// playerStatLabelColumns are joined in on reads and shared with the goalkeeper table.
var playerStatLabelColumns = []string{
	"player_name",
	"player_fbref_id",
	"player_age",
	"player_nationality",
	"club_name",
	"season_label",
	"league_name",
}

type PlayerStatRepository struct {
	db *sqlx.DB
}

func NewPlayerStatRepository(db *sqlx.DB) *PlayerStatRepository {
	return &PlayerStatRepository{db: db}
}

func (r *PlayerStatRepository) List(ctx context.Context, filter playerstats.Filter) ([]playerstats.SeasonStat, error) {
	conds := scopeConditions(filter.LeagueID, filter.SeasonID, filter.ClubID, filter.PlayerID, filter.PlayerIDs)
	if position := strings.TrimSpace(filter.Position); position != "" {
		conds = append(conds, qb.Expr("lower(ps.position) = lower(?)", position))
	}

	query, args, err := selectPlayerSeasonRows(playerStatsTable).
		Where(conds...).
		OrderBy("s.label", "lower(p.full_name)", "ps.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player season stats query: %w", err)
	}

	var rows []playerStatModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player season stats: %w", err)
	}

	out := make([]playerstats.SeasonStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.SeasonStat(row))
	}
	return out, nil
}

// Upsert returns item with its id set; label fields are left as given.
func (r *PlayerStatRepository) Upsert(ctx context.Context, item playerstats.SeasonStat) (playerstats.SeasonStat, bool, error) {
	skip := append([]string{"id"}, playerStatLabelColumns...)
	res, err := upsertRow(ctx, r.db, playerStatsTable, playerStatModel(item), []string{"player_id", "season_id", "club_id"}, skip...)
	if err != nil {
		return playerstats.SeasonStat{}, false, writeError(err, playerstats.ErrConflict, "upsert player season stat")
	}
	item.ID = res.ID
	return item, res.Inserted, nil
}

func (r *PlayerStatRepository) PlayerIDsWithStats(ctx context.Context, playerIDs []int64) (map[int64]struct{}, error) {
	return playerIDSet(ctx, r.db, playerStatsTable, playerIDs)
}

func selectPlayerSeasonRows(table string) *qb.SelectBuilder {
	return qb.Select(
		"ps.*",
		"p.full_name AS player_name",
		"p.fbref_id AS player_fbref_id",
		"p.age AS player_age",
		"p.nationality AS player_nationality",
		"c.name AS club_name",
		"s.label AS season_label",
		"l.name AS league_name",
	).From(table + " ps").
		Join("JOIN players p ON p.id = ps.player_id").
		Join("JOIN clubs c ON c.id = ps.club_id").
		Join("JOIN seasons s ON s.id = ps.season_id").
		Join("JOIN leagues l ON l.id = ps.league_id")
}

func scopeConditions(leagueID, seasonID, clubID, playerID int64, playerIDs []int64) []qb.Condition {
	conds := make([]qb.Condition, 0, 6)
	if leagueID > 0 {
		conds = append(conds, qb.Eq("ps.league_id", leagueID))
	}
	if seasonID > 0 {
		conds = append(conds, qb.Eq("ps.season_id", seasonID))
	}
	if clubID > 0 {
		conds = append(conds, qb.Eq("ps.club_id", clubID))
	}
	if playerID > 0 {
		conds = append(conds, qb.Eq("ps.player_id", playerID))
	}
	if len(playerIDs) > 0 {
		conds = append(conds, qb.InInt64("ps.player_id", playerIDs))
	}
	return conds
}
