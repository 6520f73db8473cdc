package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func selectSeasons() *qb.SelectBuilder {
	return qb.Select("s.id", "s.league_id", "l.name AS league_name", "s.label").
		From("seasons s").
		Join("JOIN leagues l ON l.id = s.league_id")
}

// List orders latest label first.
func (r *SeasonRepository) List(ctx context.Context, filter season.Filter) ([]season.Season, error) {
	conds := make([]qb.Condition, 0, 2)
	if filter.LeagueID > 0 {
		conds = append(conds, qb.Eq("s.league_id", filter.LeagueID))
	}
	if label := strings.TrimSpace(filter.Label); label != "" {
		conds = append(conds, qb.Eq("s.label", label))
	}

	query, args, err := selectSeasons().
		Where(conds...).
		OrderBy("s.label DESC", "s.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Season(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, args, err := selectSeasons().Where(qb.Eq("s.id", seasonID)).ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}
	return season.Season(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	query, args, err := qb.InsertInto("seasons").
		Columns("league_id", "label").
		Values(item.LeagueID, item.Label).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return season.Season{}, writeError(err, season.ErrConflict, "insert season")
	}

	created, ok, err := r.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, err
	}
	if !ok {
		item.ID = id
		return item, nil
	}
	return created, nil
}
