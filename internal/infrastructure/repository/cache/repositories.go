package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	basecache "github.com/riskibarqy/woso-api/internal/platform/cache"
	"github.com/riskibarqy/woso-api/internal/platform/resilience"
)

const (
	countryPrefix        = "country:"
	leaguePrefix         = "league:"
	seasonPrefix         = "season:"
	clubPrefix           = "club:"
	playerPrefix         = "player:"
	clubStatsPrefix      = "clubstats:"
	playerStatsPrefix    = "playerstats:"
	goalkeeperStatPrefix = "gkstats:"
)

// guard routes every call to the wrapped repository through the breaker and
// the shared store. A nil breaker leaves calls unguarded.
type guard struct {
	cache   *basecache.Store
	breaker *resilience.CircuitBreaker
}

func load[T any](ctx context.Context, g guard, key string, loader func(context.Context) (T, error)) (T, error) {
	return basecache.Load(ctx, g.cache, key, func(ctx context.Context) (T, error) {
		var out T
		err := g.breaker.Do(ctx, func(ctx context.Context) error {
			var err error
			out, err = loader(ctx)
			return err
		})
		return out, err
	})
}

func (g guard) write(ctx context.Context, fn func(context.Context) error, prefixes ...string) error {
	err := g.breaker.Do(ctx, fn)
	for _, prefix := range prefixes {
		g.cache.DeletePrefix(ctx, prefix)
	}
	return err
}

type found[T any] struct {
	value  T
	exists bool
}

func filterKey(prefix, op string, filter any) string {
	return fmt.Sprintf("%s%s:%+v", prefix, op, filter)
}

func idsKey(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

type CountryRepository struct {
	next country.Repository
	guard
}

func NewCountryRepository(next country.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *CountryRepository {
	return &CountryRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *CountryRepository) List(ctx context.Context, filter country.Filter) ([]country.Country, error) {
	items, err := load(ctx, r.guard, filterKey(countryPrefix, "list", filter), func(ctx context.Context) ([]country.Country, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]country.Country(nil), items...), nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (country.Country, bool, error) {
	key := countryPrefix + "id:" + strconv.FormatInt(id, 10)
	cached, err := load(ctx, r.guard, key, func(ctx context.Context) (found[country.Country], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		return found[country.Country]{value: item, exists: exists}, err
	})
	return cached.value, cached.exists, err
}

func (r *CountryRepository) Create(ctx context.Context, item country.Country) (country.Country, error) {
	var created country.Country
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		created, err = r.next.Create(ctx, item)
		return err
	}, countryPrefix, leaguePrefix)
	return created, err
}

type LeagueRepository struct {
	next league.Repository
	guard
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *LeagueRepository {
	return &LeagueRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *LeagueRepository) List(ctx context.Context, filter league.Filter) ([]league.League, error) {
	items, err := load(ctx, r.guard, filterKey(leaguePrefix, "list", filter), func(ctx context.Context) ([]league.League, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	key := leaguePrefix + "id:" + strconv.FormatInt(leagueID, 10)
	cached, err := load(ctx, r.guard, key, func(ctx context.Context) (found[league.League], error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		return found[league.League]{value: item, exists: exists}, err
	})
	return cached.value, cached.exists, err
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	key := leaguePrefix + "code:" + strings.ToLower(strings.TrimSpace(code))
	cached, err := load(ctx, r.guard, key, func(ctx context.Context) (found[league.League], error) {
		item, exists, err := r.next.GetByCode(ctx, code)
		return found[league.League]{value: item, exists: exists}, err
	})
	return cached.value, cached.exists, err
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	var created league.League
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		created, err = r.next.Create(ctx, item)
		return err
	}, leaguePrefix)
	return created, err
}

type SeasonRepository struct {
	next season.Repository
	guard
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *SeasonRepository {
	return &SeasonRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *SeasonRepository) List(ctx context.Context, filter season.Filter) ([]season.Season, error) {
	items, err := load(ctx, r.guard, filterKey(seasonPrefix, "list", filter), func(ctx context.Context) ([]season.Season, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	key := seasonPrefix + "id:" + strconv.FormatInt(seasonID, 10)
	cached, err := load(ctx, r.guard, key, func(ctx context.Context) (found[season.Season], error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		return found[season.Season]{value: item, exists: exists}, err
	})
	return cached.value, cached.exists, err
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	var created season.Season
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		created, err = r.next.Create(ctx, item)
		return err
	}, seasonPrefix)
	return created, err
}

type ClubRepository struct {
	next club.Repository
	guard
}

func NewClubRepository(next club.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *ClubRepository {
	return &ClubRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *ClubRepository) List(ctx context.Context, filter club.Filter) ([]club.Club, error) {
	return r.list(ctx, filterKey(clubPrefix, "list", filter), func(ctx context.Context) ([]club.Club, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID int64) (club.Club, bool, error) {
	return r.one(ctx, clubPrefix+"id:"+strconv.FormatInt(clubID, 10), func(ctx context.Context) (club.Club, bool, error) {
		return r.next.GetByID(ctx, clubID)
	})
}

func (r *ClubRepository) GetByFbrefID(ctx context.Context, fbrefID string) (club.Club, bool, error) {
	return r.one(ctx, clubPrefix+"fbref:"+strings.ToLower(fbrefID), func(ctx context.Context) (club.Club, bool, error) {
		return r.next.GetByFbrefID(ctx, fbrefID)
	})
}

func (r *ClubRepository) FindByName(ctx context.Context, name string) ([]club.Club, error) {
	return r.list(ctx, clubPrefix+"name:"+strings.ToLower(name), func(ctx context.Context) ([]club.Club, error) {
		return r.next.FindByName(ctx, name)
	})
}

func (r *ClubRepository) SearchByNormalizedName(ctx context.Context, token string) ([]club.Club, error) {
	return r.list(ctx, clubPrefix+"search:"+token, func(ctx context.Context) ([]club.Club, error) {
		return r.next.SearchByNormalizedName(ctx, token)
	})
}

// Club names are hydrated into stat rows, so writes drop those entries too.
func (r *ClubRepository) Upsert(ctx context.Context, item club.Club) (club.Club, bool, error) {
	var (
		stored  club.Club
		created bool
	)
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		stored, created, err = r.next.Upsert(ctx, item)
		return err
	}, clubPrefix, clubStatsPrefix, playerStatsPrefix, goalkeeperStatPrefix)
	return stored, created, err
}

func (r *ClubRepository) UpdateStadium(ctx context.Context, clubID int64, stadium *string) (club.Club, bool, error) {
	var (
		stored club.Club
		exists bool
	)
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		stored, exists, err = r.next.UpdateStadium(ctx, clubID, stadium)
		return err
	}, clubPrefix)
	return stored, exists, err
}

func (r *ClubRepository) list(ctx context.Context, key string, loader func(context.Context) ([]club.Club, error)) ([]club.Club, error) {
	items, err := load(ctx, r.guard, key, loader)
	if err != nil {
		return nil, err
	}
	return append([]club.Club(nil), items...), nil
}

func (r *ClubRepository) one(ctx context.Context, key string, loader func(context.Context) (club.Club, bool, error)) (club.Club, bool, error) {
	cached, err := load(ctx, r.guard, key, func(ctx context.Context) (found[club.Club], error) {
		item, exists, err := loader(ctx)
		return found[club.Club]{value: item, exists: exists}, err
	})
	return cached.value, cached.exists, err
}

type PlayerRepository struct {
	next player.Repository
	guard
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	return r.list(ctx, filterKey(playerPrefix, "list", filter), func(ctx context.Context) ([]player.Player, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return r.one(ctx, playerPrefix+"id:"+strconv.FormatInt(playerID, 10), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) GetByFbrefID(ctx context.Context, fbrefID string) (player.Player, bool, error) {
	return r.one(ctx, playerPrefix+"fbref:"+fbrefID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByFbrefID(ctx, fbrefID)
	})
}

func (r *PlayerRepository) FindByNameOrFbrefID(ctx context.Context, token string) ([]player.Player, error) {
	return r.list(ctx, playerPrefix+"find:"+token, func(ctx context.Context) ([]player.Player, error) {
		return r.next.FindByNameOrFbrefID(ctx, token)
	})
}

func (r *PlayerRepository) SearchByNormalizedName(ctx context.Context, token string) ([]player.Player, error) {
	return r.list(ctx, playerPrefix+"search:"+token, func(ctx context.Context) ([]player.Player, error) {
		return r.next.SearchByNormalizedName(ctx, token)
	})
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) (player.Player, bool, error) {
	var (
		stored  player.Player
		created bool
	)
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		stored, created, err = r.next.Upsert(ctx, item)
		return err
	}, playerPrefix, playerStatsPrefix, goalkeeperStatPrefix)
	return stored, created, err
}

func (r *PlayerRepository) list(ctx context.Context, key string, loader func(context.Context) ([]player.Player, error)) ([]player.Player, error) {
	items, err := load(ctx, r.guard, key, loader)
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) one(ctx context.Context, key string, loader func(context.Context) (player.Player, bool, error)) (player.Player, bool, error) {
	cached, err := load(ctx, r.guard, key, func(ctx context.Context) (found[player.Player], error) {
		item, exists, err := loader(ctx)
		return found[player.Player]{value: item, exists: exists}, err
	})
	return cached.value, cached.exists, err
}

type ClubStatRepository struct {
	next clubstats.Repository
	guard
}

func NewClubStatRepository(next clubstats.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *ClubStatRepository {
	return &ClubStatRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *ClubStatRepository) List(ctx context.Context, filter clubstats.Filter) ([]clubstats.SeasonStat, error) {
	items, err := load(ctx, r.guard, filterKey(clubStatsPrefix, "list", filter), func(ctx context.Context) ([]clubstats.SeasonStat, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]clubstats.SeasonStat(nil), items...), nil
}

func (r *ClubStatRepository) Upsert(ctx context.Context, item clubstats.SeasonStat) (clubstats.SeasonStat, bool, error) {
	var (
		stored  clubstats.SeasonStat
		created bool
	)
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		stored, created, err = r.next.Upsert(ctx, item)
		return err
	}, clubStatsPrefix)
	return stored, created, err
}

type PlayerStatRepository struct {
	next playerstats.Repository
	guard
}

func NewPlayerStatRepository(next playerstats.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *PlayerStatRepository {
	return &PlayerStatRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *PlayerStatRepository) List(ctx context.Context, filter playerstats.Filter) ([]playerstats.SeasonStat, error) {
	items, err := load(ctx, r.guard, filterKey(playerStatsPrefix, "list", filter), func(ctx context.Context) ([]playerstats.SeasonStat, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]playerstats.SeasonStat(nil), items...), nil
}

func (r *PlayerStatRepository) Upsert(ctx context.Context, item playerstats.SeasonStat) (playerstats.SeasonStat, bool, error) {
	var (
		stored  playerstats.SeasonStat
		created bool
	)
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		stored, created, err = r.next.Upsert(ctx, item)
		return err
	}, playerStatsPrefix)
	return stored, created, err
}

func (r *PlayerStatRepository) PlayerIDsWithStats(ctx context.Context, playerIDs []int64) (map[int64]struct{}, error) {
	return load(ctx, r.guard, playerStatsPrefix+"owners:"+idsKey(playerIDs), func(ctx context.Context) (map[int64]struct{}, error) {
		return r.next.PlayerIDsWithStats(ctx, playerIDs)
	})
}

type GoalkeeperStatRepository struct {
	next goalkeeperstats.Repository
	guard
}

func NewGoalkeeperStatRepository(next goalkeeperstats.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *GoalkeeperStatRepository {
	return &GoalkeeperStatRepository{next: next, guard: guard{cache: cache, breaker: breaker}}
}

func (r *GoalkeeperStatRepository) List(ctx context.Context, filter goalkeeperstats.Filter) ([]goalkeeperstats.SeasonStat, error) {
	items, err := load(ctx, r.guard, filterKey(goalkeeperStatPrefix, "list", filter), func(ctx context.Context) ([]goalkeeperstats.SeasonStat, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]goalkeeperstats.SeasonStat(nil), items...), nil
}

func (r *GoalkeeperStatRepository) Upsert(ctx context.Context, item goalkeeperstats.SeasonStat) (goalkeeperstats.SeasonStat, bool, error) {
	var (
		stored  goalkeeperstats.SeasonStat
		created bool
	)
	err := r.write(ctx, func(ctx context.Context) error {
		var err error
		stored, created, err = r.next.Upsert(ctx, item)
		return err
	}, goalkeeperStatPrefix)
	return stored, created, err
}

func (r *GoalkeeperStatRepository) PlayerIDsWithStats(ctx context.Context, playerIDs []int64) (map[int64]struct{}, error) {
	return load(ctx, r.guard, goalkeeperStatPrefix+"owners:"+idsKey(playerIDs), func(ctx context.Context) (map[int64]struct{}, error) {
		return r.next.PlayerIDsWithStats(ctx, playerIDs)
	})
}
