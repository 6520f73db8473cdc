package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
)

const goalkeeperStatsTable = "goalkeeper_season_stats"

type GoalkeeperStatRepository struct {
	db *sqlx.DB
}

func NewGoalkeeperStatRepository(db *sqlx.DB) *GoalkeeperStatRepository {
	return &GoalkeeperStatRepository{db: db}
}

func (r *GoalkeeperStatRepository) List(ctx context.Context, filter goalkeeperstats.Filter) ([]goalkeeperstats.SeasonStat, error) {
	query, args, err := selectPlayerSeasonRows(goalkeeperStatsTable).
		Where(scopeConditions(filter.LeagueID, filter.SeasonID, filter.ClubID, filter.PlayerID, filter.PlayerIDs)...).
		OrderBy("s.label", "lower(p.full_name)", "ps.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goalkeeper season stats query: %w", err)
	}

	var rows []goalkeeperStatModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goalkeeper season stats: %w", err)
	}

	out := make([]goalkeeperstats.SeasonStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalkeeperstats.SeasonStat(row))
	}
	return out, nil
}

// Upsert always stores the goalkeeper position marker.
func (r *GoalkeeperStatRepository) Upsert(ctx context.Context, item goalkeeperstats.SeasonStat) (goalkeeperstats.SeasonStat, bool, error) {
	item.Position = goalkeeperstats.Position
	skip := append([]string{"id"}, playerStatLabelColumns...)
	res, err := upsertRow(ctx, r.db, goalkeeperStatsTable, goalkeeperStatModel(item), []string{"player_id", "season_id", "club_id"}, skip...)
	if err != nil {
		return goalkeeperstats.SeasonStat{}, false, writeError(err, goalkeeperstats.ErrConflict, "upsert goalkeeper season stat")
	}
	item.ID = res.ID
	return item, res.Inserted, nil
}

func (r *GoalkeeperStatRepository) PlayerIDsWithStats(ctx context.Context, playerIDs []int64) (map[int64]struct{}, error) {
	return playerIDSet(ctx, r.db, goalkeeperStatsTable, playerIDs)
}
