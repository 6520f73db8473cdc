package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/woso-api/internal/domain/leaderboard"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_Rank(t *testing.T) {
	t.Parallel()

	env, _ := newPageEnv(t)
	service := NewLeaderboardService(env.clubStats, env.playerStats, env.goalkeeperStats)
	ctx := context.Background()

	t.Run("field with scope and limit", func(t *testing.T) {
		got, err := service.Rank(ctx, LeaderboardQuery{Kind: leaderboard.KindPlayer, Field: "goals", SeasonID: testSeason202324, Limit: 2})
		require.NoError(t, err)
		require.Equal(t, leaderboard.Descending, got.Direction)
		require.Len(t, got.Seasons, 1)
		require.Len(t, got.Seasons[0].Entries, 2)
		first := got.Seasons[0].Entries[0]
		require.Equal(t, 1, first.Rank)
		require.Equal(t, "Khadija Shaw", first.PlayerStat.PlayerName)
		require.Equal(t, 21.0, *first.Value)
	})

	t.Run("category defaults", func(t *testing.T) {
		got, err := service.Rank(ctx, LeaderboardQuery{Kind: leaderboard.KindClub, Category: "league_table", SeasonID: testSeason202324})
		require.NoError(t, err)
		require.Equal(t, leaderboard.Ascending, got.Direction)
		require.Equal(t, "league_position", got.Field)
		require.Len(t, got.Seasons[0].Entries, 3)
		require.Equal(t, "Chelsea", got.Seasons[0].Entries[0].ClubStat.ClubName)
	})

	t.Run("ascending override", func(t *testing.T) {
		got, err := service.Rank(ctx, LeaderboardQuery{Kind: leaderboard.KindPlayer, Field: "goals", Direction: "asc", ClubID: mustClubID(t, env, "che"), SeasonID: testSeason202324})
		require.NoError(t, err)
		require.Equal(t, "Sam Kerr", got.Seasons[0].Entries[0].PlayerStat.PlayerName)
	})

	t.Run("u23 cohort", func(t *testing.T) {
		got, err := service.Rank(ctx, LeaderboardQuery{Kind: leaderboard.KindPlayer, Field: "assists", U23: true})
		require.NoError(t, err)
		require.Len(t, got.Seasons, 1)
		require.Len(t, got.Seasons[0].Entries, 1)
		require.Equal(t, "Lauren James", got.Seasons[0].Entries[0].PlayerStat.PlayerName)
	})

	t.Run("goalkeepers", func(t *testing.T) {
		got, err := service.Rank(ctx, LeaderboardQuery{Kind: leaderboard.KindGoalkeeper, Category: "clean_sheets"})
		require.NoError(t, err)
		require.Equal(t, "Ann-Katrin Berger", got.Seasons[0].Entries[0].GoalkeeperStat.PlayerName)
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []LeaderboardQuery{
			{Kind: "teams", Field: "goals"},
			{Kind: leaderboard.KindPlayer},
			{Kind: leaderboard.KindPlayer, Field: "height"},
			{Kind: leaderboard.KindPlayer, Field: "goals", Direction: "sideways"},
			{Kind: leaderboard.KindClub, Field: "points_won", U23: true},
			{Kind: leaderboard.KindClub, Category: "top_scorers"},
		}
		for _, in := range cases {
			_, err := service.Rank(ctx, in)
			require.ErrorIs(t, err, ErrInvalidInput, "query %+v", in)
		}
	})
}

func TestLeaderboardService_Fields(t *testing.T) {
	t.Parallel()

	service := NewLeaderboardService(nil, nil, nil)
	fields, err := service.Fields(leaderboard.KindGoalkeeper)
	require.NoError(t, err)
	require.Contains(t, fields, "save_percentage")

	_, err = service.Fields("coaches")
	require.ErrorIs(t, err, ErrInvalidInput)
}
