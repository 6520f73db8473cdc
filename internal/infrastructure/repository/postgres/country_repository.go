package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepository(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(ctx context.Context, filter country.Filter) ([]country.Country, error) {
	conds := make([]qb.Condition, 0, 2)
	if name := strings.TrimSpace(filter.Name); name != "" {
		conds = append(conds, qb.ILike("name", containsPattern(name)))
	}
	if code := strings.TrimSpace(filter.Code); code != "" {
		conds = append(conds, qb.Expr("lower(code) = lower(?)", code))
	}

	query, args, err := qb.Select("id", "name", "code").From("countries").
		Where(conds...).
		OrderBy("name", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select countries query: %w", err)
	}

	var rows []countryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}

	out := make([]country.Country, 0, len(rows))
	for _, row := range rows {
		out = append(out, country.Country(row))
	}
	return out, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (country.Country, bool, error) {
	query, args, err := qb.Select("id", "name", "code").From("countries").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return country.Country{}, false, fmt.Errorf("build get country query: %w", err)
	}

	var row countryModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return country.Country{}, false, nil
		}
		return country.Country{}, false, fmt.Errorf("get country by id: %w", err)
	}
	return country.Country(row), true, nil
}

func (r *CountryRepository) Create(ctx context.Context, item country.Country) (country.Country, error) {
	query, args, err := qb.InsertInto("countries").
		Columns("name", "code").
		Values(item.Name, item.Code).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return country.Country{}, fmt.Errorf("build insert country query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return country.Country{}, writeError(err, country.ErrConflict, "insert country")
	}
	return item, nil
}
