package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/infrastructure/csvsource"
	"github.com/riskibarqy/woso-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/woso-api/internal/platform/id"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/platform/tabular"
)

// Seeded ids from memory.DefaultSeed.
const (
	testLeagueWSL    int64 = 1
	testLeagueNWSL   int64 = 2
	testSeason202223 int64 = 1
	testSeason202324 int64 = 2
	testSeason202425 int64 = 3
	testSeasonNWSL24 int64 = 5
)

type testEnv struct {
	store           *memory.Store
	countries       *memory.CountryRepository
	leagues         *memory.LeagueRepository
	seasons         *memory.SeasonRepository
	clubs           *memory.ClubRepository
	players         *memory.PlayerRepository
	clubStats       *memory.ClubStatRepository
	playerStats     *memory.PlayerStatRepository
	goalkeeperStats *memory.GoalkeeperStatRepository
	importer        *ImporterService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	store.Seed(memory.DefaultSeed())
	env := &testEnv{
		store:           store,
		countries:       memory.NewCountryRepository(store),
		leagues:         memory.NewLeagueRepository(store),
		seasons:         memory.NewSeasonRepository(store),
		clubs:           memory.NewClubRepository(store),
		players:         memory.NewPlayerRepository(store),
		clubStats:       memory.NewClubStatRepository(store),
		playerStats:     memory.NewPlayerStatRepository(store),
		goalkeeperStats: memory.NewGoalkeeperStatRepository(store),
	}
	env.importer = NewImporterService(
		env.leagues, env.seasons, env.clubs, env.players,
		env.clubStats, env.playerStats, env.goalkeeperStats,
		id.NewUUIDGenerator(), logging.NewNop(),
	)
	return env
}

func (e *testEnv) resolver() *ResolverService {
	return NewResolverService(e.clubs, e.players, e.playerStats, e.goalkeeperStats)
}

func (e *testEnv) mustImport(t *testing.T, kind ImportKind, scope ImportScope, src tabular.Source) ImportSummary {
	t.Helper()

	summary, err := e.importer.Run(context.Background(), ImportRequest{Kind: kind, Source: src, Scope: scope})
	if err != nil {
		t.Fatalf("import %s: %v", kind, err)
	}
	return summary
}

func csvSource(t *testing.T, name, body string) tabular.Source {
	t.Helper()

	src, err := csvsource.NewReader(name, strings.NewReader(body))
	if err != nil {
		t.Fatalf("read csv %s: %v", name, err)
	}
	return src
}

// statCSV renders a CSV with the given header where every row starts from defaults
// and is overridden by its own map.
func statCSV(columns []string, defaults map[string]string, rows ...map[string]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, column := range columns {
			value, ok := row[column]
			if !ok {
				value = defaults[column]
			}
			cells[i] = value
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func playerStatColumns() []string {
	return RequiredColumns(ImportPlayerStats)
}

func goalkeeperStatColumns() []string {
	return RequiredColumns(ImportGoalkeeperStats)
}

// seedClubsAndPlayers imports a small WSL roster used by several tests.
func seedClubsAndPlayers(t *testing.T, env *testEnv) {
	t.Helper()

	env.mustImport(t, ImportClubs, ImportScope{}, csvSource(t, "clubs.csv",
		"team_id,team_name\n"+
			"che,Chelsea\n"+
			"ars,Arsenal\n"+
			"mci,Manchester City\n"+
			"mun,Manchester United\n"))
	env.mustImport(t, ImportPlayers, ImportScope{}, csvSource(t, "players.csv",
		"player_id,player_name,nationality,age\n"+
			"kerr,Sam Kerr,au AUS,30-120\n"+
			"miedema,Vivianne Miedema,nl NED,27-010\n"+
			"shaw,Khadija Shaw,jm JAM,26-200\n"+
			"russo,Alessia Russo,eng ENG,24-050\n"+
			"james,Lauren James,eng ENG,22-300\n"+
			"berger,Ann-Katrin Berger,de GER,33-001\n"+
			"earps,Mary Earps,eng ENG,30-300\n"))
}

func clubFilterAll() club.Filter {
	return club.Filter{}
}

func playerFilterAll() player.Filter {
	return player.Filter{}
}

func mustPlayerID(t *testing.T, env *testEnv, fbrefID string) int64 {
	t.Helper()

	item, ok, err := env.players.GetByFbrefID(context.Background(), fbrefID)
	if err != nil || !ok {
		t.Fatalf("player %s: ok=%v err=%v", fbrefID, ok, err)
	}
	return item.ID
}

func mustClubID(t *testing.T, env *testEnv, fbrefID string) int64 {
	t.Helper()

	item, ok, err := env.clubs.GetByFbrefID(context.Background(), fbrefID)
	if err != nil || !ok {
		t.Fatalf("club %s: ok=%v err=%v", fbrefID, ok, err)
	}
	return item.ID
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func (e *testEnv) addPlayerStat(t *testing.T, row playerstats.SeasonStat) {
	t.Helper()

	if row.LeagueID == 0 {
		row.LeagueID = testLeagueWSL
	}
	if _, _, err := e.playerStats.Upsert(context.Background(), row); err != nil {
		t.Fatalf("upsert player stat: %v", err)
	}
}

func (e *testEnv) addGoalkeeperStat(t *testing.T, row goalkeeperstats.SeasonStat) {
	t.Helper()

	if row.LeagueID == 0 {
		row.LeagueID = testLeagueWSL
	}
	if _, _, err := e.goalkeeperStats.Upsert(context.Background(), row); err != nil {
		t.Fatalf("upsert goalkeeper stat: %v", err)
	}
}

func (e *testEnv) addClubStat(t *testing.T, row clubstats.SeasonStat) {
	t.Helper()

	if row.LeagueID == 0 {
		row.LeagueID = testLeagueWSL
	}
	if _, _, err := e.clubStats.Upsert(context.Background(), row); err != nil {
		t.Fatalf("upsert club stat: %v", err)
	}
}
