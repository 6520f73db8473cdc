package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
)

func intPtr(v int) *int { return &v }

func TestStore_SeedCreatesReferenceData(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Seed(DefaultSeed())
	ctx := context.Background()

	wsl, ok, err := NewLeagueRepository(store).GetByCode(ctx, "wsl")
	if err != nil || !ok {
		t.Fatalf("get league by code: ok=%v err=%v", ok, err)
	}
	if wsl.CountryName != "England" {
		t.Fatalf("unexpected country name: %q", wsl.CountryName)
	}

	seasons, err := NewSeasonRepository(store).List(ctx, season.Filter{LeagueID: wsl.ID})
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 3 || seasons[0].Label != "2024-25" {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}
	if seasons[0].LeagueName != wsl.Name {
		t.Fatalf("season not hydrated with league name: %+v", seasons[0])
	}
}

func TestClubRepository_UpsertIsIdempotentByFbrefID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewClubRepository(NewStore())

	first, created, err := repo.Upsert(ctx, club.Club{Name: "Arsenal", FbrefID: "411788d8"})
	if err != nil || !created {
		t.Fatalf("first upsert: created=%v err=%v", created, err)
	}
	second, created, err := repo.Upsert(ctx, club.Club{Name: "Arsenal Women", FbrefID: "411788d8"})
	if err != nil || created {
		t.Fatalf("second upsert: created=%v err=%v", created, err)
	}
	if first.ID != second.ID || second.Name != "Arsenal Women" {
		t.Fatalf("expected in-place update, got first=%+v second=%+v", first, second)
	}

	_, _, err = repo.Upsert(ctx, club.Club{Name: "arsenal women", FbrefID: "other"})
	if !errors.Is(err, club.ErrConflict) {
		t.Fatalf("expected club.ErrConflict, got %v", err)
	}
}

func TestClubRepository_SearchByNormalizedName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewClubRepository(NewStore())
	for _, item := range []club.Club{
		{Name: "Manchester City", FbrefID: "mci"},
		{Name: "Manchester United", FbrefID: "mun"},
		{Name: "Chelsea", FbrefID: "che"},
	} {
		if _, _, err := repo.Upsert(ctx, item); err != nil {
			t.Fatalf("upsert %s: %v", item.Name, err)
		}
	}

	got, err := repo.SearchByNormalizedName(ctx, "manchester-city")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].FbrefID != "mci" {
		t.Fatalf("unexpected match: %+v", got)
	}

	got, err = repo.SearchByNormalizedName(ctx, "manchester")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two matches, got %d", len(got))
	}

	got, err = repo.SearchByNormalizedName(ctx, "CHE")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Chelsea" {
		t.Fatalf("expected fbref id match, got %+v", got)
	}
}

func TestPlayerStatRepository_UpsertAndHydrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	store.Seed(DefaultSeed())

	clubItem, _, err := NewClubRepository(store).Upsert(ctx, club.Club{Name: "Chelsea", FbrefID: "che"})
	if err != nil {
		t.Fatalf("upsert club: %v", err)
	}
	playerItem, _, err := NewPlayerRepository(store).Upsert(ctx, player.Player{FullName: "Sam Kerr", FbrefID: "kerr", Age: intPtr(30)})
	if err != nil {
		t.Fatalf("upsert player: %v", err)
	}

	repo := NewPlayerStatRepository(store)
	row := playerstats.SeasonStat{PlayerID: playerItem.ID, SeasonID: 1, ClubID: clubItem.ID, LeagueID: 1, Goals: intPtr(12)}
	if _, created, err := repo.Upsert(ctx, row); err != nil || !created {
		t.Fatalf("first upsert: created=%v err=%v", created, err)
	}
	row.Goals = intPtr(14)
	saved, created, err := repo.Upsert(ctx, row)
	if err != nil || created {
		t.Fatalf("second upsert: created=%v err=%v", created, err)
	}
	if saved.PlayerName != "Sam Kerr" || saved.ClubName != "Chelsea" || saved.SeasonLabel != "2022-23" {
		t.Fatalf("row not hydrated: %+v", saved)
	}

	rows, err := repo.List(ctx, playerstats.Filter{PlayerIDs: []int64{playerItem.ID}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || *rows[0].Goals != 14 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].PlayerAge == nil || *rows[0].PlayerAge != 30 {
		t.Fatalf("expected hydrated player age, got %v", rows[0].PlayerAge)
	}

	ids, err := repo.PlayerIDsWithStats(ctx, []int64{playerItem.ID, 999})
	if err != nil {
		t.Fatalf("player ids with stats: %v", err)
	}
	if _, ok := ids[playerItem.ID]; !ok || len(ids) != 1 {
		t.Fatalf("unexpected id set: %v", ids)
	}
}
