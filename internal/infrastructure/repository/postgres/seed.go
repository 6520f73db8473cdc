package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/woso-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the reference leagues into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, entries []memory.SeedLeague) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, entry := range entries {
		var countryID int64
		err := tx.GetContext(ctx, &countryID, tx.Rebind(`
INSERT INTO countries (name, code)
VALUES (?, ?)
ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
RETURNING id`), entry.Country.Name, entry.Country.Code)
		if err != nil {
			return fmt.Errorf("seed country %s: %w", entry.Country.Code, err)
		}

		var leagueID int64
		err = tx.GetContext(ctx, &leagueID, tx.Rebind(`
INSERT INTO leagues (country_id, name, total_clubs, code)
VALUES (?, ?, ?, ?)
RETURNING id`), countryID, entry.Name, entry.TotalClubs, entry.Code)
		if err != nil {
			return fmt.Errorf("seed league %s: %w", entry.Code, err)
		}

		for _, label := range entry.Seasons {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`
INSERT INTO seasons (league_id, label)
VALUES (?, ?)
ON CONFLICT (league_id, label) DO NOTHING`), leagueID, label); err != nil {
				return fmt.Errorf("seed season %s %s: %w", entry.Code, label, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
