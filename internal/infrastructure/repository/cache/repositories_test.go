package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	clubmock "github.com/riskibarqy/woso-api/internal/mocks/domain/club"
	playerstatsmock "github.com/riskibarqy/woso-api/internal/mocks/domain/playerstats"
	basecache "github.com/riskibarqy/woso-api/internal/platform/cache"
	"github.com/riskibarqy/woso-api/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClubRepository_CachesReadsUntilWrite(t *testing.T) {
	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute), nil)

	chelsea := club.Club{ID: 1, Name: "Chelsea", FbrefID: "che"}
	next.On("GetByID", mock.Anything, int64(1)).Return(chelsea, true, nil).Twice()
	next.On("Upsert", mock.Anything, chelsea).Return(chelsea, false, nil).Once()

	for i := 0; i < 3; i++ {
		got, ok, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Chelsea", got.Name)
	}

	_, created, err := repo.Upsert(ctx, chelsea)
	require.NoError(t, err)
	require.False(t, created)

	_, ok, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestClubRepository_CachesMisses(t *testing.T) {
	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute), nil)

	next.On("GetByFbrefID", mock.Anything, "zzz").Return(club.Club{}, false, nil).Once()

	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetByFbrefID(ctx, "zzz")
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestPlayerStatRepository_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	next := playerstatsmock.NewRepository(t)
	repo := NewPlayerStatRepository(next, basecache.NewStore(time.Minute), nil)

	filter := playerstats.Filter{LeagueID: 1, SeasonID: 2}
	next.On("List", mock.Anything, filter).Return(nil, errors.New("db down")).Once()
	next.On("List", mock.Anything, filter).Return([]playerstats.SeasonStat{{ID: 7}}, nil).Once()

	_, err := repo.List(ctx, filter)
	require.Error(t, err)

	rows, err := repo.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = repo.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestPlayerStatRepository_BreakerRejectsAfterFailures(t *testing.T) {
	ctx := context.Background()
	next := playerstatsmock.NewRepository(t)
	breaker := resilience.NewCircuitBreaker("db", resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})
	repo := NewPlayerStatRepository(next, basecache.NewStore(time.Minute), breaker)

	next.On("List", mock.Anything, playerstats.Filter{}).Return(nil, errors.New("db down")).Once()

	_, err := repo.List(ctx, playerstats.Filter{})
	require.Error(t, err)
	require.False(t, errors.Is(err, resilience.ErrCircuitOpen))

	_, err = repo.List(ctx, playerstats.Filter{})
	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
}

func TestPlayerStatRepository_UpsertInvalidatesLists(t *testing.T) {
	ctx := context.Background()
	next := playerstatsmock.NewRepository(t)
	repo := NewPlayerStatRepository(next, basecache.NewStore(time.Minute), nil)

	row := playerstats.SeasonStat{PlayerID: 1, SeasonID: 1, ClubID: 1, LeagueID: 1}
	next.On("List", mock.Anything, playerstats.Filter{}).Return([]playerstats.SeasonStat{}, nil).Once()
	next.On("Upsert", mock.Anything, row).Return(row, true, nil).Once()
	next.On("List", mock.Anything, playerstats.Filter{}).Return([]playerstats.SeasonStat{row}, nil).Once()

	rows, err := repo.List(ctx, playerstats.Filter{})
	require.NoError(t, err)
	require.Empty(t, rows)

	_, created, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	require.True(t, created)

	rows, err = repo.List(ctx, playerstats.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
