package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

// List orders seasons by label, latest first.
func (r *SeasonRepository) List(_ context.Context, filter season.Filter) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]season.Season, 0, len(r.store.seasons))
	for _, id := range sortedIDs(r.store.seasons) {
		item := r.store.seasons[id]
		if filter.LeagueID > 0 && item.LeagueID != filter.LeagueID {
			continue
		}
		if filter.Label != "" && !strings.EqualFold(item.Label, strings.TrimSpace(filter.Label)) {
			continue
		}
		out = append(out, r.hydrate(item))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label > out[j].Label })
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.seasons[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}
	return r.hydrate(item), true, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.seasons {
		if existing.LeagueID == item.LeagueID && existing.Label == item.Label {
			return season.Season{}, fmt.Errorf("%w: league=%d label=%s", season.ErrConflict, item.LeagueID, item.Label)
		}
	}
	item.ID = r.store.allocate("seasons")
	item.LeagueName = ""
	r.store.seasons[item.ID] = item
	return r.hydrate(item), nil
}

func (r *SeasonRepository) hydrate(item season.Season) season.Season {
	if l, ok := r.store.leagues[item.LeagueID]; ok {
		item.LeagueName = l.Name
	}
	return item
}
