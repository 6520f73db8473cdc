package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/naming"
)

type ClubRepository struct {
	store *Store
}

func NewClubRepository(store *Store) *ClubRepository {
	return &ClubRepository{store: store}
}

func (r *ClubRepository) List(_ context.Context, filter club.Filter) ([]club.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]club.Club, 0, len(r.store.clubs))
	for _, id := range sortedIDs(r.store.clubs) {
		item := r.store.clubs[id]
		if !containsFold(item.Name, filter.Name) {
			continue
		}
		if filter.FbrefID != "" && !strings.EqualFold(item.FbrefID, filter.FbrefID) {
			continue
		}
		if filter.Stadium != "" && (item.Stadium == nil || !containsFold(*item.Stadium, filter.Stadium)) {
			continue
		}
		out = append(out, cloneClub(item))
	}
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *ClubRepository) GetByID(_ context.Context, clubID int64) (club.Club, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.clubs[clubID]
	return cloneClub(item), ok, nil
}

func (r *ClubRepository) GetByFbrefID(_ context.Context, fbrefID string) (club.Club, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.byFbrefID(fbrefID)
	if !ok {
		return club.Club{}, false, nil
	}
	return cloneClub(r.store.clubs[id]), true, nil
}

func (r *ClubRepository) FindByName(_ context.Context, name string) ([]club.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	name = strings.TrimSpace(name)
	out := make([]club.Club, 0, 1)
	for _, id := range sortedIDs(r.store.clubs) {
		if strings.EqualFold(r.store.clubs[id].Name, name) {
			out = append(out, cloneClub(r.store.clubs[id]))
		}
	}
	return out, nil
}

func (r *ClubRepository) SearchByNormalizedName(_ context.Context, token string) ([]club.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	token = strings.TrimSpace(token)
	out := make([]club.Club, 0)
	if token == "" {
		return out, nil
	}
	for _, id := range sortedIDs(r.store.clubs) {
		item := r.store.clubs[id]
		if naming.Contains(item.Name, token) || strings.EqualFold(item.FbrefID, token) {
			out = append(out, cloneClub(item))
		}
	}
	return out, nil
}

func (r *ClubRepository) Upsert(_ context.Context, item club.Club) (club.Club, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existingID, exists := r.byFbrefID(item.FbrefID)
	for id, other := range r.store.clubs {
		if id != existingID && strings.EqualFold(other.Name, item.Name) {
			return club.Club{}, false, fmt.Errorf("%w: name=%s fbref_id=%s", club.ErrConflict, item.Name, other.FbrefID)
		}
	}

	item.Stadium = clonePtr(item.Stadium)
	if exists {
		item.ID = existingID
		if item.Stadium == nil {
			item.Stadium = r.store.clubs[existingID].Stadium
		}
	} else {
		item.ID = r.store.allocate("clubs")
	}
	r.store.clubs[item.ID] = item
	return cloneClub(item), !exists, nil
}

func (r *ClubRepository) UpdateStadium(_ context.Context, clubID int64, stadium *string) (club.Club, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.clubs[clubID]
	if !ok {
		return club.Club{}, false, nil
	}
	item.Stadium = clonePtr(stadium)
	r.store.clubs[clubID] = item
	return cloneClub(item), true, nil
}

func (r *ClubRepository) byFbrefID(fbrefID string) (int64, bool) {
	fbrefID = strings.TrimSpace(fbrefID)
	for id, item := range r.store.clubs {
		if strings.EqualFold(item.FbrefID, fbrefID) {
			return id, true
		}
	}
	return 0, false
}

func cloneClub(item club.Club) club.Club {
	item.Stadium = clonePtr(item.Stadium)
	return item
}
