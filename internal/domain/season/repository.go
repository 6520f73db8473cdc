package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Season, error)
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
	Create(ctx context.Context, item Season) (Season, error)
}
