package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/country"
)

type CountryService struct {
	countryRepo country.Repository
}

func NewCountryService(countryRepo country.Repository) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

func (s *CountryService) List(ctx context.Context, filter country.Filter) ([]country.Country, error) {
	page, err := Page{Limit: filter.Limit, Offset: filter.Offset}.normalize()
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = page.Limit, page.Offset
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Code = strings.TrimSpace(filter.Code)

	items, err := s.countryRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return items, nil
}

func (s *CountryService) Get(ctx context.Context, id int64) (country.Country, error) {
	if err := requireID("country", id); err != nil {
		return country.Country{}, err
	}
	item, exists, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return country.Country{}, fmt.Errorf("get country: %w", err)
	}
	if !exists {
		return country.Country{}, fmt.Errorf("%w: country=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CountryService) Create(ctx context.Context, item country.Country) (country.Country, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Code = strings.ToUpper(strings.TrimSpace(item.Code))
	if err := item.Validate(); err != nil {
		return country.Country{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.countryRepo.Create(ctx, item)
	if err != nil {
		return country.Country{}, createError("create country", err, country.ErrConflict)
	}
	return created, nil
}
