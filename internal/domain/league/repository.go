package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	// GetByCode matches the code case-insensitively.
	GetByCode(ctx context.Context, code string) (League, bool, error)
	Create(ctx context.Context, item League) (League, error)
}
