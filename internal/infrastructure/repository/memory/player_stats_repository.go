package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

type PlayerStatRepository struct {
	store *Store
}

func NewPlayerStatRepository(store *Store) *PlayerStatRepository {
	return &PlayerStatRepository{store: store}
}

func (r *PlayerStatRepository) List(_ context.Context, filter playerstats.Filter) ([]playerstats.SeasonStat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	players := idSet(filter.PlayerIDs)
	out := make([]playerstats.SeasonStat, 0, len(r.store.playerStats))
	for _, id := range sortedIDs(r.store.playerStats) {
		item := r.store.playerStats[id]
		if !matchesScope(item.LeagueID, item.SeasonID, item.ClubID, item.PlayerID, filter.LeagueID, filter.SeasonID, filter.ClubID, filter.PlayerID, players) {
			continue
		}
		if filter.Position != "" && !optionalEqualFold(item.Position, filter.Position) {
			continue
		}
		out = append(out, r.hydrate(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SeasonLabel != out[j].SeasonLabel {
			return out[i].SeasonLabel < out[j].SeasonLabel
		}
		return strings.ToLower(out[i].PlayerName) < strings.ToLower(out[j].PlayerName)
	})
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *PlayerStatRepository) Upsert(_ context.Context, item playerstats.SeasonStat) (playerstats.SeasonStat, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := true
	for id, existing := range r.store.playerStats {
		if existing.PlayerID == item.PlayerID && existing.SeasonID == item.SeasonID && existing.ClubID == item.ClubID {
			item.ID = id
			created = false
			break
		}
	}
	if created {
		item.ID = r.store.allocate("player_season_stats")
	}
	item.PlayerName, item.PlayerFbrefID, item.ClubName, item.SeasonLabel, item.LeagueName = "", "", "", "", ""
	item.PlayerAge, item.PlayerNationality = nil, nil
	r.store.playerStats[item.ID] = item
	return r.hydrate(item), created, nil
}

func (r *PlayerStatRepository) PlayerIDsWithStats(_ context.Context, playerIDs []int64) (map[int64]struct{}, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := idSet(playerIDs)
	out := make(map[int64]struct{})
	for _, item := range r.store.playerStats {
		if _, ok := wanted[item.PlayerID]; ok {
			out[item.PlayerID] = struct{}{}
		}
	}
	return out, nil
}

func (r *PlayerStatRepository) hydrate(item playerstats.SeasonStat) playerstats.SeasonStat {
	if p, ok := r.store.players[item.PlayerID]; ok {
		item.PlayerName = p.FullName
		item.PlayerFbrefID = p.FbrefID
		item.PlayerAge = clonePtr(p.Age)
		item.PlayerNationality = clonePtr(p.Nationality)
	}
	if c, ok := r.store.clubs[item.ClubID]; ok {
		item.ClubName = c.Name
	}
	if s, ok := r.store.seasons[item.SeasonID]; ok {
		item.SeasonLabel = s.Label
	}
	if l, ok := r.store.leagues[item.LeagueID]; ok {
		item.LeagueName = l.Name
	}
	return item
}
