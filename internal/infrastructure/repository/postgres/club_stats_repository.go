package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

const clubStatsTable = "club_season_stats"

var clubStatLabelColumns = []string{"club_name", "club_fbref_id", "season_label", "league_name"}

type ClubStatRepository struct {
	db *sqlx.DB
}

func NewClubStatRepository(db *sqlx.DB) *ClubStatRepository {
	return &ClubStatRepository{db: db}
}

func (r *ClubStatRepository) List(ctx context.Context, filter clubstats.Filter) ([]clubstats.SeasonStat, error) {
	conds := make([]qb.Condition, 0, 3)
	if filter.LeagueID > 0 {
		conds = append(conds, qb.Eq("cs.league_id", filter.LeagueID))
	}
	if filter.SeasonID > 0 {
		conds = append(conds, qb.Eq("cs.season_id", filter.SeasonID))
	}
	if filter.ClubID > 0 {
		conds = append(conds, qb.Eq("cs.club_id", filter.ClubID))
	}

	query, args, err := qb.Select(
		"cs.*",
		"c.name AS club_name",
		"c.fbref_id AS club_fbref_id",
		"s.label AS season_label",
		"l.name AS league_name",
	).From(clubStatsTable+" cs").
		Join("JOIN clubs c ON c.id = cs.club_id").
		Join("JOIN seasons s ON s.id = cs.season_id").
		Join("JOIN leagues l ON l.id = cs.league_id").
		Where(conds...).
		OrderBy("s.label", "cs.league_position", "cs.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club season stats query: %w", err)
	}

	var rows []clubStatModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club season stats: %w", err)
	}

	out := make([]clubstats.SeasonStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubstats.SeasonStat(row))
	}
	return out, nil
}

// Upsert returns item with its id set; label fields are left as given.
func (r *ClubStatRepository) Upsert(ctx context.Context, item clubstats.SeasonStat) (clubstats.SeasonStat, bool, error) {
	skip := append([]string{"id"}, clubStatLabelColumns...)
	res, err := upsertRow(ctx, r.db, clubStatsTable, clubStatModel(item), []string{"club_id", "season_id"}, skip...)
	if err != nil {
		return clubstats.SeasonStat{}, false, writeError(err, clubstats.ErrConflict, "upsert club season stat")
	}
	item.ID = res.ID
	return item, res.Inserted, nil
}
