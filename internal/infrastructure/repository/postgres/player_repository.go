package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/domain/naming"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

var playerColumns = []string{"id", "full_name", "fbref_id", "nationality", "age"}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	conds := make([]qb.Condition, 0, 3)
	if name := strings.TrimSpace(filter.Name); name != "" {
		conds = append(conds, qb.ILike("full_name", containsPattern(name)))
	}
	if fbrefID := strings.TrimSpace(filter.FbrefID); fbrefID != "" {
		conds = append(conds, qb.Eq("fbref_id", fbrefID))
	}
	if nationality := strings.TrimSpace(filter.Nationality); nationality != "" {
		conds = append(conds, qb.ILike("nationality", containsPattern(nationality)))
	}

	query, args, err := qb.Select(playerColumns...).From("players").
		Where(conds...).
		OrderBy("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}
	return r.selectPlayers(ctx, "select players", query, args)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by id", qb.Eq("id", playerID))
}

func (r *PlayerRepository) GetByFbrefID(ctx context.Context, fbrefID string) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by fbref id", qb.Eq("fbref_id", strings.TrimSpace(fbrefID)))
}

func (r *PlayerRepository) FindByNameOrFbrefID(ctx context.Context, token string) ([]player.Player, error) {
	token = strings.TrimSpace(token)
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Or(
			qb.Expr("lower(full_name) = lower(?)", token),
			qb.Eq("fbref_id", token),
		)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build find players query: %w", err)
	}
	return r.selectPlayers(ctx, "find players by name or fbref id", query, args)
}

func (r *PlayerRepository) SearchByNormalizedName(ctx context.Context, token string) ([]player.Player, error) {
	normalized := naming.Normalize(token)
	if normalized == "" {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Expr(normalizedNameExpr("full_name")+" LIKE ?", containsPattern(normalized))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}
	return r.selectPlayers(ctx, "search players", query, args)
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) (player.Player, bool, error) {
	res, err := upsertRow(ctx, r.db, "players", playerModel(item), []string{"fbref_id"}, "id")
	if err != nil {
		return player.Player{}, false, writeError(err, player.ErrConflict, "upsert player")
	}
	item.ID = res.ID
	return item, res.Inserted, nil
}

func (r *PlayerRepository) getOne(ctx context.Context, action string, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", action, err)
	}

	var row playerModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", action, err)
	}
	return player.Player(row), true, nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, action, query string, args []any) ([]player.Player, error) {
	var rows []playerModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player(row))
	}
	return out, nil
}
