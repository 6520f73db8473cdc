package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
)

// Store holds every table behind one lock so stat rows can be hydrated with the
// names of the rows they reference.
type Store struct {
	mu sync.RWMutex

	countries       map[int64]country.Country
	leagues         map[int64]league.League
	seasons         map[int64]season.Season
	clubs           map[int64]club.Club
	players         map[int64]player.Player
	clubStats       map[int64]clubstats.SeasonStat
	playerStats     map[int64]playerstats.SeasonStat
	goalkeeperStats map[int64]goalkeeperstats.SeasonStat

	nextID map[string]int64
}

func NewStore() *Store {
	return &Store{
		countries:       make(map[int64]country.Country),
		leagues:         make(map[int64]league.League),
		seasons:         make(map[int64]season.Season),
		clubs:           make(map[int64]club.Club),
		players:         make(map[int64]player.Player),
		clubStats:       make(map[int64]clubstats.SeasonStat),
		playerStats:     make(map[int64]playerstats.SeasonStat),
		goalkeeperStats: make(map[int64]goalkeeperstats.SeasonStat),
		nextID:          make(map[string]int64),
	}
}

// allocate must run under the write lock.
func (s *Store) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedIDs[T any](items map[int64]T) []int64 {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func containsFold(value, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

func optionalEqualFold(value *string, want string) bool {
	if value == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*value), strings.TrimSpace(want))
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func idSet(ids []int64) map[int64]struct{} {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// matchesScope applies the league/season/club/player filters shared by stat rows.
func matchesScope(leagueID, seasonID, clubID, playerID int64, wantLeague, wantSeason, wantClub, wantPlayer int64, players map[int64]struct{}) bool {
	if wantLeague > 0 && leagueID != wantLeague {
		return false
	}
	if wantSeason > 0 && seasonID != wantSeason {
		return false
	}
	if wantClub > 0 && clubID != wantClub {
		return false
	}
	if wantPlayer > 0 && playerID != wantPlayer {
		return false
	}
	if players != nil {
		if _, ok := players[playerID]; !ok {
			return false
		}
	}
	return true
}
