package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/naming"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

var clubColumns = []string{"id", "name", "fbref_id", "stadium"}

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context, filter club.Filter) ([]club.Club, error) {
	conds := make([]qb.Condition, 0, 3)
	if name := strings.TrimSpace(filter.Name); name != "" {
		conds = append(conds, qb.ILike("name", containsPattern(name)))
	}
	if fbrefID := strings.TrimSpace(filter.FbrefID); fbrefID != "" {
		conds = append(conds, qb.Expr("lower(fbref_id) = lower(?)", fbrefID))
	}
	if stadium := strings.TrimSpace(filter.Stadium); stadium != "" {
		conds = append(conds, qb.ILike("stadium", containsPattern(stadium)))
	}

	query, args, err := qb.Select(clubColumns...).From("clubs").
		Where(conds...).
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}
	return r.selectClubs(ctx, "select clubs", query, args)
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID int64) (club.Club, bool, error) {
	return r.getOne(ctx, "get club by id", qb.Eq("id", clubID))
}

func (r *ClubRepository) GetByFbrefID(ctx context.Context, fbrefID string) (club.Club, bool, error) {
	return r.getOne(ctx, "get club by fbref id", qb.Expr("lower(fbref_id) = lower(?)", strings.TrimSpace(fbrefID)))
}

func (r *ClubRepository) FindByName(ctx context.Context, name string) ([]club.Club, error) {
	query, args, err := qb.Select(clubColumns...).From("clubs").
		Where(qb.Expr("lower(name) = lower(?)", strings.TrimSpace(name))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find clubs by name query: %w", err)
	}
	return r.selectClubs(ctx, "find clubs by name", query, args)
}

func (r *ClubRepository) SearchByNormalizedName(ctx context.Context, token string) ([]club.Club, error) {
	normalized := naming.Normalize(token)
	if normalized == "" {
		return []club.Club{}, nil
	}

	query, args, err := qb.Select(clubColumns...).From("clubs").
		Where(qb.Or(
			qb.Expr(normalizedNameExpr("name")+" LIKE ?", containsPattern(normalized)),
			qb.Expr("lower(fbref_id) = lower(?)", strings.TrimSpace(token)),
		)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search clubs query: %w", err)
	}
	return r.selectClubs(ctx, "search clubs", query, args)
}

// Upsert keeps the stored stadium when item carries none.
func (r *ClubRepository) Upsert(ctx context.Context, item club.Club) (club.Club, bool, error) {
	query, args, err := qb.InsertInto("clubs").
		Columns("name", "fbref_id", "stadium").
		Values(item.Name, item.FbrefID, item.Stadium).
		Suffix("ON CONFLICT ((lower(fbref_id))) DO UPDATE SET name = EXCLUDED.name, " +
			"stadium = COALESCE(EXCLUDED.stadium, clubs.stadium) " +
			"RETURNING id, (xmax = 0) AS inserted").
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build upsert club query: %w", err)
	}

	var res upsertResult
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		return club.Club{}, false, writeError(err, club.ErrConflict, "upsert club")
	}

	stored, ok, err := r.GetByID(ctx, res.ID)
	if err != nil {
		return club.Club{}, false, err
	}
	if !ok {
		item.ID = res.ID
		return item, res.Inserted, nil
	}
	return stored, res.Inserted, nil
}

func (r *ClubRepository) UpdateStadium(ctx context.Context, clubID int64, stadium *string) (club.Club, bool, error) {
	query, args, err := qb.Update("clubs").
		Set("stadium", stadium).
		Where(qb.Eq("id", clubID)).
		Suffix("RETURNING " + strings.Join(clubColumns, ", ")).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build update club stadium query: %w", err)
	}

	var row clubModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("update club stadium: %w", err)
	}
	return club.Club(row), true, nil
}

func (r *ClubRepository) getOne(ctx context.Context, action string, cond qb.Condition) (club.Club, bool, error) {
	query, args, err := qb.Select(clubColumns...).From("clubs").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build %s query: %w", action, err)
	}

	var row clubModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("%s: %w", action, err)
	}
	return club.Club(row), true, nil
}

func (r *ClubRepository) selectClubs(ctx context.Context, action, query string, args []any) ([]club.Club, error) {
	var rows []clubModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.Club(row))
	}
	return out, nil
}
