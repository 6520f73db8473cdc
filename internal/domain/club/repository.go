package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Club, error)
	GetByID(ctx context.Context, clubID int64) (Club, bool, error)
	GetByFbrefID(ctx context.Context, fbrefID string) (Club, bool, error)
	// FindByName returns clubs whose name equals name ignoring case.
	FindByName(ctx context.Context, name string) ([]Club, error)
	// SearchByNormalizedName matches naming.Normalize(name) as a substring, or the
	// fbref id exactly ignoring case.
	SearchByNormalizedName(ctx context.Context, token string) ([]Club, error)
	// Upsert creates or updates by fbref id and reports whether a row was created.
	Upsert(ctx context.Context, item Club) (Club, bool, error)
	UpdateStadium(ctx context.Context, clubID int64, stadium *string) (Club, bool, error)
}
