package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/stretchr/testify/require"
)

func newPageEnv(t *testing.T) (*testEnv, *PageService) {
	t.Helper()

	env := newTestEnv(t)
	seedClubsAndPlayers(t, env)
	che, ars, mci := mustClubID(t, env, "che"), mustClubID(t, env, "ars"), mustClubID(t, env, "mci")

	env.addClubStat(t, clubstats.SeasonStat{ClubID: che, SeasonID: testSeason202324, PointsWon: 55, LeaguePosition: 1, GoalsScored: intPtr(71), GoalsConceded: intPtr(24)})
	env.addClubStat(t, clubstats.SeasonStat{ClubID: mci, SeasonID: testSeason202324, PointsWon: 55, LeaguePosition: 2, GoalsScored: intPtr(61), GoalsConceded: intPtr(15)})
	env.addClubStat(t, clubstats.SeasonStat{ClubID: ars, SeasonID: testSeason202324, PointsWon: 47, LeaguePosition: 3})
	env.addClubStat(t, clubstats.SeasonStat{ClubID: che, SeasonID: testSeason202425, PointsWon: 60, LeaguePosition: 1})

	kerr, james, russo, shaw := mustPlayerID(t, env, "kerr"), mustPlayerID(t, env, "james"), mustPlayerID(t, env, "russo"), mustPlayerID(t, env, "shaw")
	env.addPlayerStat(t, playerstats.SeasonStat{PlayerID: kerr, ClubID: che, SeasonID: testSeason202223, Position: strPtr("FW"), Goals: intPtr(12), Assists: intPtr(4), MinutesPlayed: intPtr(1600)})
	env.addPlayerStat(t, playerstats.SeasonStat{PlayerID: kerr, ClubID: che, SeasonID: testSeason202324, Position: strPtr("FW"), Goals: intPtr(5), Assists: intPtr(1), MinutesPlayed: intPtr(700)})
	env.addPlayerStat(t, playerstats.SeasonStat{PlayerID: james, ClubID: che, SeasonID: testSeason202324, Position: strPtr("MF"), Goals: intPtr(6), Assists: intPtr(7), MinutesPlayed: intPtr(1500)})
	env.addPlayerStat(t, playerstats.SeasonStat{PlayerID: russo, ClubID: ars, SeasonID: testSeason202324, Position: strPtr("FW"), Goals: intPtr(12), Assists: intPtr(2), MinutesPlayed: intPtr(1700)})
	env.addPlayerStat(t, playerstats.SeasonStat{PlayerID: shaw, ClubID: mci, SeasonID: testSeason202324, Position: strPtr("FW"), Goals: intPtr(21), Assists: intPtr(4), MinutesPlayed: intPtr(1650)})
	env.addGoalkeeperStat(t, goalkeeperstats.SeasonStat{PlayerID: mustPlayerID(t, env, "berger"), ClubID: che, SeasonID: testSeason202324, CleanSheets: intPtr(10), MinutesPlayed: intPtr(1800)})

	pages := NewPageService(env.leagues, env.seasons, env.clubStats, env.playerStats, env.goalkeeperStats, env.resolver(), 10)
	return env, pages
}

func findBoard[T any](t *testing.T, boards []Board[T], key string) Board[T] {
	t.Helper()

	for _, board := range boards {
		if board.Key == key {
			return board
		}
	}
	t.Fatalf("board %s not found", key)
	return Board[T]{}
}

func TestPageService_LeaguePage(t *testing.T) {
	t.Parallel()

	_, pages := newPageEnv(t)
	page, err := pages.LeaguePage(context.Background(), "wsl")
	require.NoError(t, err)

	require.Equal(t, "Women's Super League", page.League.Name)
	require.Len(t, page.Seasons, 3)
	require.Len(t, page.Clubs, 3)
	require.Equal(t, "Arsenal", page.Clubs[0].Name)

	goals := findBoard(t, page.PlayerBoards, "goals")
	require.Equal(t, "2023-24", goals.Seasons[0].Season)
	latest := goals.Seasons[0].Entries
	require.Len(t, latest, 4)
	require.Equal(t, "Khadija Shaw", latest[0].Record.PlayerName)
	require.Equal(t, 21.0, latest[0].Value)
	require.Equal(t, "Alessia Russo", latest[1].Record.PlayerName)

	u23 := findBoard(t, page.U23Boards, "u23_goals")
	require.Len(t, u23.Seasons, 1)
	for _, entry := range u23.Seasons[0].Entries {
		require.Equal(t, "Lauren James", entry.Record.PlayerName)
	}

	table := findBoard(t, page.ClubBoards, "league_table")
	require.Len(t, table.Seasons[0].Entries, 1)
	require.Equal(t, "2024-25", table.Seasons[0].Season)
	previous := table.Seasons[1].Entries
	require.Len(t, previous, 3)
	require.Equal(t, []int{1, 2, 3}, []int{previous[0].Rank, previous[1].Rank, previous[2].Rank})
	require.Equal(t, "Chelsea", previous[0].Record.ClubName)

	fewest := findBoard(t, page.PlayerBoards, "fewest_yellow_cards")
	for _, entry := range fewest.Seasons[0].Entries {
		require.NotEqual(t, "Sam Kerr", entry.Record.PlayerName)
	}

	keepers := findBoard(t, page.GoalkeeperBoards, "clean_sheets")
	require.Equal(t, "Ann-Katrin Berger", keepers.Seasons[0].Entries[0].Record.PlayerName)
}

func TestPageService_LeaguePageUnknownCode(t *testing.T) {
	t.Parallel()

	_, pages := newPageEnv(t)
	_, err := pages.LeaguePage(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = pages.LeaguePage(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPageService_ClubPage(t *testing.T) {
	t.Parallel()

	_, pages := newPageEnv(t)
	page, err := pages.ClubPage(context.Background(), "chelsea")
	require.NoError(t, err)

	require.Equal(t, "che", page.Club.FbrefID)
	require.Len(t, page.Seasons, 2)
	require.Equal(t, "2024-25", page.Seasons[0].SeasonLabel)

	require.Len(t, page.Roster, 2)
	require.Equal(t, "2023-24", page.Roster[0].Season)
	roster := page.Roster[0].Rows
	require.Len(t, roster, 2)
	require.Equal(t, "Lauren James", roster[0].PlayerName)
	require.Equal(t, "Sam Kerr", roster[1].PlayerName)

	require.Len(t, page.Goalkeepers, 1)
	require.Equal(t, "Ann-Katrin Berger", page.Goalkeepers[0].Rows[0].PlayerName)

	goals := findBoard(t, page.PlayerBoards, "goals")
	require.Equal(t, "2023-24", goals.Seasons[0].Season)
	require.Equal(t, "Lauren James", goals.Seasons[0].Entries[0].Record.PlayerName)
}

func TestPageService_ClubPageAmbiguous(t *testing.T) {
	t.Parallel()

	_, pages := newPageEnv(t)
	_, err := pages.ClubPage(context.Background(), "manchester")
	require.ErrorIs(t, err, ErrConflict)
}

func TestPageService_PlayerPage(t *testing.T) {
	t.Parallel()

	_, pages := newPageEnv(t)

	t.Run("outfield", func(t *testing.T) {
		page, err := pages.PlayerPage(context.Background(), "sam-kerr")
		require.NoError(t, err)
		require.Equal(t, RoleOutfield, page.Role)
		require.Equal(t, "AUS", page.Nationality)
		require.Len(t, page.Seasons, 2)
		require.Equal(t, "2022-23", page.Seasons[0].SeasonLabel)
		require.Equal(t, 6, *page.LatestGoalContribution)
		require.Equal(t, 22, *page.CareerGoalContribution)
		require.Empty(t, page.GoalkeeperSeasons)
	})

	t.Run("goalkeeper", func(t *testing.T) {
		page, err := pages.PlayerPage(context.Background(), "berger")
		require.NoError(t, err)
		require.Equal(t, RoleGoalkeeper, page.Role)
		require.Len(t, page.GoalkeeperSeasons, 1)
		require.Nil(t, page.CareerGoalContribution)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := pages.PlayerPage(context.Background(), "nobody")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
