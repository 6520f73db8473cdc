package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
)

type ClubStatRepository struct {
	store *Store
}

func NewClubStatRepository(store *Store) *ClubStatRepository {
	return &ClubStatRepository{store: store}
}

func (r *ClubStatRepository) List(_ context.Context, filter clubstats.Filter) ([]clubstats.SeasonStat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]clubstats.SeasonStat, 0, len(r.store.clubStats))
	for _, id := range sortedIDs(r.store.clubStats) {
		item := r.store.clubStats[id]
		if !matchesScope(item.LeagueID, item.SeasonID, item.ClubID, 0, filter.LeagueID, filter.SeasonID, filter.ClubID, 0, nil) {
			continue
		}
		out = append(out, r.hydrate(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SeasonLabel != out[j].SeasonLabel {
			return out[i].SeasonLabel < out[j].SeasonLabel
		}
		return out[i].LeaguePosition < out[j].LeaguePosition
	})
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *ClubStatRepository) Upsert(_ context.Context, item clubstats.SeasonStat) (clubstats.SeasonStat, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := true
	for id, existing := range r.store.clubStats {
		if existing.ClubID == item.ClubID && existing.SeasonID == item.SeasonID {
			item.ID = id
			created = false
			break
		}
	}
	if created {
		item.ID = r.store.allocate("club_season_stats")
	}
	item.ClubName, item.ClubFbrefID, item.SeasonLabel, item.LeagueName = "", "", "", ""
	r.store.clubStats[item.ID] = item
	return r.hydrate(item), created, nil
}

func (r *ClubStatRepository) hydrate(item clubstats.SeasonStat) clubstats.SeasonStat {
	if c, ok := r.store.clubs[item.ClubID]; ok {
		item.ClubName = c.Name
		item.ClubFbrefID = c.FbrefID
	}
	if s, ok := r.store.seasons[item.SeasonID]; ok {
		item.SeasonLabel = s.Label
	}
	if l, ok := r.store.leagues[item.LeagueID]; ok {
		item.LeagueName = l.Name
	}
	return item
}
