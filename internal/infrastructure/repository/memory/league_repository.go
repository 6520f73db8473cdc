package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) List(_ context.Context, filter league.Filter) ([]league.League, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]league.League, 0, len(r.store.leagues))
	for _, id := range sortedIDs(r.store.leagues) {
		item := r.store.leagues[id]
		if filter.CountryID > 0 && item.CountryID != filter.CountryID {
			continue
		}
		if !containsFold(item.Name, filter.Name) {
			continue
		}
		if filter.Code != "" && !optionalEqualFold(item.Code, filter.Code) {
			continue
		}
		out = append(out, r.hydrate(item))
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.leagues[leagueID]
	if !ok {
		return league.League{}, false, nil
	}
	return r.hydrate(item), true, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code string) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range sortedIDs(r.store.leagues) {
		item := r.store.leagues[id]
		if optionalEqualFold(item.Code, code) {
			return r.hydrate(item), true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) (league.League, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.leagues {
		if existing.CountryID == item.CountryID && strings.EqualFold(existing.Name, item.Name) {
			return league.League{}, fmt.Errorf("%w: country=%d name=%s", league.ErrConflict, item.CountryID, item.Name)
		}
		if item.Code != nil && optionalEqualFold(existing.Code, *item.Code) {
			return league.League{}, fmt.Errorf("%w: code=%s", league.ErrConflict, *item.Code)
		}
	}
	item.ID = r.store.allocate("leagues")
	item.Code = clonePtr(item.Code)
	item.TotalClubs = clonePtr(item.TotalClubs)
	item.CountryName, item.CountryCode = "", ""
	r.store.leagues[item.ID] = item
	return r.hydrate(item), nil
}

func (r *LeagueRepository) hydrate(item league.League) league.League {
	if c, ok := r.store.countries[item.CountryID]; ok {
		item.CountryName = c.Name
		item.CountryCode = c.Code
	}
	return item
}
