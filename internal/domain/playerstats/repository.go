package playerstats

import "context"

// Repository describes outfield season stat persistence needs from use cases.
type Repository interface {
	// List returns rows ordered by season label, then player name.
	List(ctx context.Context, filter Filter) ([]SeasonStat, error)
	// Upsert writes by (player, season, club) and reports whether a row was created.
	Upsert(ctx context.Context, item SeasonStat) (SeasonStat, bool, error)
	// PlayerIDsWithStats returns the subset of playerIDs that own at least one row.
	PlayerIDsWithStats(ctx context.Context, playerIDs []int64) (map[int64]struct{}, error)
}
