package clubstats

import "context"

// Repository describes club season stat persistence needs from use cases.
type Repository interface {
	// List returns rows ordered by season label then league position.
	List(ctx context.Context, filter Filter) ([]SeasonStat, error)
	// Upsert writes by (club, season) and reports whether a row was created.
	Upsert(ctx context.Context, item SeasonStat) (SeasonStat, bool, error)
}
