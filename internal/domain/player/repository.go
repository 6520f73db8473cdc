package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	GetByFbrefID(ctx context.Context, fbrefID string) (Player, bool, error)
	// FindByNameOrFbrefID matches the full name ignoring case, or the fbref id exactly.
	FindByNameOrFbrefID(ctx context.Context, token string) ([]Player, error)
	// SearchByNormalizedName matches naming.Normalize(full name) as a substring.
	SearchByNormalizedName(ctx context.Context, token string) ([]Player, error)
	// Upsert creates or updates by fbref id and reports whether a row was created.
	Upsert(ctx context.Context, item Player) (Player, bool, error)
}
