package country

import "context"

// Repository describes country persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Country, error)
	GetByID(ctx context.Context, id int64) (Country, bool, error)
	Create(ctx context.Context, item Country) (Country, error)
}
