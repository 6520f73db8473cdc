package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/woso-api/internal/platform/querybuilder"
)

const uniqueViolationCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// uniqueViolation returns the violated constraint name when err is a 23505.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return pqErr.Constraint, true
	}
	return "", false
}

// writeError maps unique violations onto the domain conflict sentinel.
func writeError(err, conflict error, action string) error {
	if constraint, ok := uniqueViolation(err); ok {
		return fmt.Errorf("%w: %s", conflict, constraint)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// containsPattern builds an ILIKE pattern matching value anywhere, with wildcards escaped.
func containsPattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(value) + "%"
}

// normalizedNameExpr is the SQL form of naming.Normalize.
func normalizedNameExpr(column string) string {
	return "replace(replace(lower(" + column + "), ' ', ''), '-', '')"
}

type upsertResult struct {
	ID       int64 `db:"id"`
	Inserted bool  `db:"inserted"`
}

func upsertRow(ctx context.Context, db *sqlx.DB, table string, model any, conflict []string, skip ...string) (upsertResult, error) {
	query, args, err := qb.UpsertModel(table, model, conflict, skip...)
	if err != nil {
		return upsertResult{}, fmt.Errorf("build upsert %s query: %w", table, err)
	}

	var out upsertResult
	if err := db.GetContext(ctx, &out, query, args...); err != nil {
		return upsertResult{}, err
	}
	return out, nil
}

func playerIDSet(ctx context.Context, db *sqlx.DB, table string, playerIDs []int64) (map[int64]struct{}, error) {
	out := make(map[int64]struct{}, len(playerIDs))
	if len(playerIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("DISTINCT player_id").From(table).
		Where(qb.InInt64("player_id", playerIDs)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s player ids query: %w", table, err)
	}

	var ids []int64
	if err := db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select %s player ids: %w", table, err)
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}
