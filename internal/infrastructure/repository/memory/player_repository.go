package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/naming"
	"github.com/riskibarqy/woso-api/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(r.store.players))
	for _, id := range sortedIDs(r.store.players) {
		item := r.store.players[id]
		if !containsFold(item.FullName, filter.Name) {
			continue
		}
		if filter.FbrefID != "" && item.FbrefID != strings.TrimSpace(filter.FbrefID) {
			continue
		}
		if filter.Nationality != "" && (item.Nationality == nil || !containsFold(*item.Nationality, filter.Nationality)) {
			continue
		}
		out = append(out, clonePlayer(item))
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	return clonePlayer(item), ok, nil
}

func (r *PlayerRepository) GetByFbrefID(_ context.Context, fbrefID string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.byFbrefID(fbrefID)
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(r.store.players[id]), true, nil
}

func (r *PlayerRepository) FindByNameOrFbrefID(_ context.Context, token string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	token = strings.TrimSpace(token)
	out := make([]player.Player, 0, 1)
	if token == "" {
		return out, nil
	}
	for _, id := range sortedIDs(r.store.players) {
		item := r.store.players[id]
		if strings.EqualFold(item.FullName, token) || item.FbrefID == token {
			out = append(out, clonePlayer(item))
		}
	}
	return out, nil
}

func (r *PlayerRepository) SearchByNormalizedName(_ context.Context, token string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	if strings.TrimSpace(token) == "" {
		return out, nil
	}
	for _, id := range sortedIDs(r.store.players) {
		if naming.Contains(r.store.players[id].FullName, token) {
			out = append(out, clonePlayer(r.store.players[id]))
		}
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) (player.Player, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existingID, exists := r.byFbrefID(item.FbrefID)
	if exists {
		item.ID = existingID
	} else {
		item.ID = r.store.allocate("players")
	}
	item = clonePlayer(item)
	r.store.players[item.ID] = item
	return clonePlayer(item), !exists, nil
}

func (r *PlayerRepository) byFbrefID(fbrefID string) (int64, bool) {
	fbrefID = strings.TrimSpace(fbrefID)
	for id, item := range r.store.players {
		if item.FbrefID == fbrefID {
			return id, true
		}
	}
	return 0, false
}

func clonePlayer(item player.Player) player.Player {
	item.Nationality = clonePtr(item.Nationality)
	item.Age = clonePtr(item.Age)
	return item
}
