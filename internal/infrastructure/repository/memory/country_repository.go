package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/country"
)

type CountryRepository struct {
	store *Store
}

func NewCountryRepository(store *Store) *CountryRepository {
	return &CountryRepository{store: store}
}

func (r *CountryRepository) List(_ context.Context, filter country.Filter) ([]country.Country, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]country.Country, 0, len(r.store.countries))
	for _, id := range sortedIDs(r.store.countries) {
		item := r.store.countries[id]
		if !containsFold(item.Name, filter.Name) {
			continue
		}
		if filter.Code != "" && !strings.EqualFold(item.Code, filter.Code) {
			continue
		}
		out = append(out, item)
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *CountryRepository) GetByID(_ context.Context, id int64) (country.Country, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.countries[id]
	return item, ok, nil
}

func (r *CountryRepository) Create(_ context.Context, item country.Country) (country.Country, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.countries {
		if strings.EqualFold(existing.Name, item.Name) || strings.EqualFold(existing.Code, item.Code) {
			return country.Country{}, fmt.Errorf("%w: name=%s code=%s", country.ErrConflict, item.Name, item.Code)
		}
	}
	item.ID = r.store.allocate("countries")
	r.store.countries[item.ID] = item
	return item, nil
}
