package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

var leagueColumns = []string{
	"l.id",
	"l.country_id",
	"c.name AS country_name",
	"c.code AS country_code",
	"l.name",
	"l.total_clubs",
	"l.code",
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func selectLeagues() *qb.SelectBuilder {
	return qb.Select(leagueColumns...).From("leagues l").
		Join("JOIN countries c ON c.id = l.country_id")
}

func (r *LeagueRepository) List(ctx context.Context, filter league.Filter) ([]league.League, error) {
	conds := make([]qb.Condition, 0, 3)
	if filter.CountryID > 0 {
		conds = append(conds, qb.Eq("l.country_id", filter.CountryID))
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		conds = append(conds, qb.ILike("l.name", containsPattern(name)))
	}
	if code := strings.TrimSpace(filter.Code); code != "" {
		conds = append(conds, qb.Expr("lower(l.code) = lower(?)", code))
	}

	query, args, err := selectLeagues().
		Where(conds...).
		OrderBy("l.id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.League(row))
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	return r.getOne(ctx, "get league by id", qb.Eq("l.id", leagueID))
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return league.League{}, false, nil
	}
	return r.getOne(ctx, "get league by code", qb.Expr("lower(l.code) = lower(?)", code))
}

func (r *LeagueRepository) getOne(ctx context.Context, action string, cond qb.Condition) (league.League, bool, error) {
	query, args, err := selectLeagues().Where(cond).Limit(1).ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build %s query: %w", action, err)
	}

	var row leagueModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("%s: %w", action, err)
	}
	return league.League(row), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.InsertInto("leagues").
		Columns("country_id", "name", "total_clubs", "code").
		Values(item.CountryID, item.Name, item.TotalClubs, item.Code).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return league.League{}, writeError(err, league.ErrConflict, "insert league")
	}

	created, ok, err := r.GetByID(ctx, id)
	if err != nil {
		return league.League{}, err
	}
	if !ok {
		item.ID = id
		return item, nil
	}
	return created, nil
}
