package usecase

import "fmt"

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Page is the limit/offset window shared by list operations.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() (Page, error) {
	if p.Limit < 0 {
		return Page{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	if p.Offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p, nil
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be > 0", ErrInvalidInput, name)
	}
	return nil
}
