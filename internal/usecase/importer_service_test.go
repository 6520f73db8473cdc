package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/platform/id"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func TestImporterService_ClubsAreIdempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	body := "team_id,team_name\nche,Chelsea\nars,Arsenal\n"

	first := env.mustImport(t, ImportClubs, ImportScope{}, csvSource(t, "clubs.csv", body))
	require.Equal(t, 2, first.Created)
	require.Equal(t, 0, first.Updated)
	require.NotEmpty(t, first.RunID)

	second := env.mustImport(t, ImportClubs, ImportScope{}, csvSource(t, "clubs.csv", body))
	require.Equal(t, 0, second.Created)
	require.Equal(t, 2, second.Updated)

	clubs, err := env.clubs.List(context.Background(), clubFilterAll())
	require.NoError(t, err)
	require.Len(t, clubs, 2)
}

func TestImporterService_RowFailuresAreIsolated(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	src := csvSource(t, "clubs.csv", "team_id,team_name\n"+
		"che,Chelsea\n"+
		",Nameless\n"+
		"chx,chelsea\n"+
		"ars,Arsenal\n")

	summary := env.mustImport(t, ImportClubs, ImportScope{}, src)
	require.Equal(t, 4, summary.Rows)
	require.Equal(t, 2, summary.Created)
	require.Equal(t, 2, summary.Skipped)

	kinds := summary.CountByKind()
	require.Equal(t, 1, kinds[DiagnosticInvalidRow])
	require.Equal(t, 1, kinds[DiagnosticUniquenessConflict])
	require.Equal(t, 2, summary.Diagnostics[0].Row)
	require.Equal(t, "chx", summary.Diagnostics[1].Key)
}

func TestImporterService_PlayersParseAgeAndNationality(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	src := csvSource(t, "players.csv", "player_id,player_name,nationality,age\n"+
		"a,Player A,eng ENG,25-123\n"+
		"b,Player B,,nan\n"+
		"c,Player C,fr FRA,24.9\n"+
		"d,Player D,es ESP,unknown\n")

	summary := env.mustImport(t, ImportPlayers, ImportScope{}, src)
	require.Equal(t, 4, summary.Created)
	require.Equal(t, 1, summary.CountByKind()[DiagnosticValueCoercion])

	ctx := context.Background()
	a, ok, err := env.players.GetByFbrefID(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 25, *a.Age)
	require.Equal(t, "eng ENG", *a.Nationality)

	b, _, _ := env.players.GetByFbrefID(ctx, "b")
	require.Nil(t, b.Age)
	require.Nil(t, b.Nationality)

	c, _, _ := env.players.GetByFbrefID(ctx, "c")
	require.Equal(t, 24, *c.Age)

	d, _, _ := env.players.GetByFbrefID(ctx, "d")
	require.Nil(t, d.Age)
}

func TestImporterService_ClubSeasonStatsScenario(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustImport(t, ImportClubs, ImportScope{}, csvSource(t, "clubs.csv", "team_id,team_name\na6a4e67d,Manchester City\n"))

	body := "team_id,points,rank,games,xg_for\na6a4e67d,45,3,22,\n"
	scope := ImportScope{SeasonID: testSeason202324, LeagueID: testLeagueWSL}

	first := env.mustImport(t, ImportClubSeasonStats, scope, csvSource(t, "table.csv", body))
	require.Equal(t, 1, first.Created)

	second := env.mustImport(t, ImportClubSeasonStats, scope, csvSource(t, "table.csv", body))
	require.Equal(t, 0, second.Created)
	require.Equal(t, 1, second.Updated)

	rows, err := env.clubStats.List(context.Background(), clubstats.Filter{SeasonID: testSeason202324})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, 45, row.PointsWon)
	require.Equal(t, 3, row.LeaguePosition)
	require.Equal(t, testLeagueWSL, row.LeagueID)
	require.Equal(t, testSeason202324, row.SeasonID)
	require.Equal(t, 22, *row.MatchesPlayed)
	require.Nil(t, row.XGCreated)
	require.Nil(t, row.Win)
}

func TestImporterService_ClubSeasonStatsUnknownClub(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	src := csvSource(t, "table.csv", "team_id,points,rank\nghost,10,12\n")
	summary := env.mustImport(t, ImportClubSeasonStats, ImportScope{SeasonID: testSeason202324, LeagueID: testLeagueWSL}, src)

	require.Equal(t, 1, summary.Skipped)
	require.Equal(t, DiagnosticReferenceNotFound, summary.Diagnostics[0].Kind)
	require.Equal(t, "ghost", summary.Diagnostics[0].Key)
}

func TestImporterService_ScopeFailsFast(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	src := csvSource(t, "table.csv", "team_id,points,rank\nche,10,1\n")

	t.Run("unknown season", func(t *testing.T) {
		_, err := env.importer.ImportClubSeasonStats(context.Background(), src, 999, testLeagueWSL)
		require.True(t, IsScopeNotFound(err), "got %v", err)
		require.True(t, errors.Is(err, ErrNotFound))
		require.NotEmpty(t, ErrorHints(err))
	})

	t.Run("season from another league", func(t *testing.T) {
		_, err := env.importer.ImportClubSeasonStats(context.Background(), src, testSeasonNWSL24, testLeagueWSL)
		require.True(t, IsScopeNotFound(err), "got %v", err)
	})

	t.Run("unknown club", func(t *testing.T) {
		_, err := env.importer.ImportClubStats(context.Background(), src, testSeason202324, "ghost")
		require.True(t, IsScopeNotFound(err), "got %v", err)
	})

	t.Run("missing season id", func(t *testing.T) {
		_, err := env.importer.ImportPlayerStats(context.Background(), src, 0, testLeagueWSL)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestImporterService_SchemaMismatchListsEveryColumn(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	src := csvSource(t, "players.csv", "player_id,player_name\nkerr,Sam Kerr\n")

	_, err := env.importer.ImportPlayers(context.Background(), src)
	require.True(t, IsSchemaMismatch(err))
	require.ErrorIs(t, err, ErrInvalidInput)

	var mismatch *SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, []string{"nationality", "age"}, mismatch.Missing)

	players, err := env.players.List(context.Background(), playerFilterAll())
	require.NoError(t, err)
	require.Empty(t, players)
}

func TestImporterService_PlayerStats(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	seedClubsAndPlayers(t, env)

	defaults := map[string]string{"team_id": "che", "position": "FW", "age": "30-100", "games": "20", "minutes": "1500"}
	body := statCSV(playerStatColumns(), defaults,
		map[string]string{"player_id": "kerr", "goals": "12", "xg": "9.456", "npxg": "8.1"},
		map[string]string{"player_id": "berger", "position": "GK"},
		map[string]string{"player_id": "nobody"},
		map[string]string{"player_id": "james", "goals": "inf", "assists": "1e12", "xg": "3.2", "tackles": `"1,204"`},
		map[string]string{"player_id": "russo", "team_id": "ars", "position": `"GK,FW"`, "goals": "7"},
	)
	scope := ImportScope{SeasonID: testSeason202324, LeagueID: testLeagueWSL}

	summary := env.mustImport(t, ImportPlayerStats, scope, csvSource(t, "stats.csv", body))
	require.Equal(t, 5, summary.Rows)
	require.Equal(t, 3, summary.Created)
	require.Equal(t, 2, summary.Skipped)

	kinds := summary.CountByKind()
	require.Equal(t, 1, kinds[DiagnosticPositionFiltered])
	require.Equal(t, 1, kinds[DiagnosticReferenceNotFound])
	require.Equal(t, 2, kinds[DiagnosticValueCoercion])

	ctx := context.Background()
	rows, err := env.playerStats.List(ctx, playerstats.Filter{SeasonID: testSeason202324})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := make(map[string]playerstats.SeasonStat, len(rows))
	for _, row := range rows {
		byName[row.PlayerFbrefID] = row
	}

	kerr := byName["kerr"]
	require.Equal(t, 12, *kerr.Goals)
	require.InDelta(t, 2.544, *kerr.XGPerformance, 1e-9)
	require.InDelta(t, 3.9, *kerr.NPXGPerformance, 1e-9)
	require.Equal(t, 30, *kerr.Age)
	require.Equal(t, 0, *kerr.Assists)
	require.Equal(t, "Chelsea", kerr.ClubName)

	james := byName["james"]
	require.Equal(t, 0, *james.Goals)
	require.Equal(t, 0, *james.Assists)
	require.Equal(t, 0.0, *james.XGPerformance)
	require.Equal(t, 1204, *james.Tackles)

	russo := byName["russo"]
	require.Equal(t, "GK,FW", *russo.Position)
	require.Equal(t, "Arsenal", russo.ClubName)

	rerun := env.mustImport(t, ImportPlayerStats, scope, csvSource(t, "stats.csv", body))
	require.Equal(t, 0, rerun.Created)
	require.Equal(t, 3, rerun.Updated)
}

func TestImporterService_GoalkeeperStatsKeepOnlyGoalkeepers(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	seedClubsAndPlayers(t, env)

	defaults := map[string]string{"team_id": "che", "age": "33-000", "gk_games": "18", "gk_minutes": "1620"}
	body := statCSV(goalkeeperStatColumns(), defaults,
		map[string]string{"player_id": "berger", "position": "GK", "gk_save_pct": "78.4", "gk_clean_sheets": "9"},
		map[string]string{"player_id": "kerr", "position": "FW"},
		map[string]string{"player_id": "earps", "team_id": "mun", "position": "gk"},
	)

	summary := env.mustImport(t, ImportGoalkeeperStats, ImportScope{SeasonID: testSeason202324, LeagueID: testLeagueWSL}, csvSource(t, "gk.csv", body))
	require.Equal(t, 2, summary.Created)
	require.Equal(t, 1, summary.Skipped)
	require.Equal(t, DiagnosticPositionFiltered, summary.Diagnostics[0].Kind)

	rows, err := env.goalkeeperStats.List(context.Background(), goalkeeperstats.Filter{SeasonID: testSeason202324})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Equal(t, goalkeeperstats.Position, row.Position)
		if row.PlayerFbrefID == "berger" {
			require.InDelta(t, 78.4, *row.SavePercentage, 1e-9)
			require.Equal(t, 9, *row.CleanSheets)
			require.Equal(t, 0.0, *row.PSXG)
		}
	}
}

func TestImporterService_SingleClubStats(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	seedClubsAndPlayers(t, env)

	t.Run("imports the first matching row", func(t *testing.T) {
		src := csvSource(t, "table.csv", "team_id,points,rank\nars,40,2\nche,50,1\nche,49,1\n")
		summary, err := env.importer.ImportClubStats(context.Background(), src, testSeason202425, "che")
		require.NoError(t, err)
		require.Equal(t, 1, summary.Created)
		require.Equal(t, 2, summary.Skipped)
		require.Equal(t, 1, summary.CountByKind()[DiagnosticUniquenessConflict])

		rows, err := env.clubStats.List(context.Background(), clubstats.Filter{SeasonID: testSeason202425})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, 50, rows[0].PointsWon)
		require.Equal(t, testLeagueWSL, rows[0].LeagueID)
	})

	t.Run("reports a missing club row", func(t *testing.T) {
		src := csvSource(t, "table.csv", "team_id,points,rank\nars,40,2\n")
		summary, err := env.importer.ImportClubStats(context.Background(), src, testSeason202223, "mci")
		require.NoError(t, err)
		require.Equal(t, 0, summary.Created+summary.Updated)
		require.Len(t, summary.Diagnostics, 1)
		require.Equal(t, DiagnosticReferenceNotFound, summary.Diagnostics[0].Kind)
		require.Equal(t, "mci", summary.Diagnostics[0].Key)
	})
}

func TestImporterService_CancellationStopsBetweenRows(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	src := csvSource(t, "clubs.csv", "team_id,team_name\nche,Chelsea\nars,Arsenal\nmci,Manchester City\n")

	summary, err := env.importer.Run(ctx, ImportRequest{
		Kind:   ImportClubs,
		Source: src,
		Observer: func(processed, _ int) {
			if processed == 1 {
				cancel()
			}
		},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, summary.Rows)
	require.Equal(t, 1, summary.Created)
}

func TestImporterService_RunIDComesFromGenerator(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	importer := NewImporterService(
		env.leagues, env.seasons, env.clubs, env.players,
		env.clubStats, env.playerStats, env.goalkeeperStats,
		id.NewSequence("run-1"), logging.NewNop(),
	)

	summary, err := importer.ImportClubs(context.Background(), csvSource(t, "clubs.csv", "team_id,team_name\nche,Chelsea\n"))
	require.NoError(t, err)
	require.Equal(t, "run-1", summary.RunID)
	require.Equal(t, "clubs.csv", summary.Source)

	_, err = importer.ImportClubs(context.Background(), csvSource(t, "clubs.csv", "team_id,team_name\nche,Chelsea\n"))
	require.Error(t, err)
}

func TestImporterService_UnknownKind(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.importer.Run(context.Background(), ImportRequest{Kind: "fixtures", Source: csvSource(t, "x.csv", "a\n1\n")})
	require.ErrorIs(t, err, ErrInvalidInput)
}
