package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	clubmock "github.com/riskibarqy/woso-api/internal/mocks/domain/club"
	countrymock "github.com/riskibarqy/woso-api/internal/mocks/domain/country"
	leaguemock "github.com/riskibarqy/woso-api/internal/mocks/domain/league"
	playerstatsmock "github.com/riskibarqy/woso-api/internal/mocks/domain/playerstats"
	seasonmock "github.com/riskibarqy/woso-api/internal/mocks/domain/season"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListSeasonsByLeague_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	leagueRepo := leaguemock.NewRepository(t)
	countryRepo := countrymock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)

	service := NewLeagueService(leagueRepo, countryRepo, seasonRepo)
	expected := []season.Season{
		{ID: 3, LeagueID: 1, Label: "2024-25"},
		{ID: 2, LeagueID: 1, Label: "2023-24"},
	}

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(league.League{ID: 1, Name: "Women's Super League"}, true, nil).
		Once()
	seasonRepo.
		On("List", mock.Anything, season.Filter{LeagueID: 1, Limit: MaxPageSize}).
		Return(expected, nil).
		Once()

	got, err := service.ListSeasonsByLeague(ctx, 1)
	if err != nil {
		t.Fatalf("list seasons by league: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected season count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].Label != "2024-25" {
		t.Fatalf("unexpected first season: got=%s", got[0].Label)
	}
}

func TestLeagueService_ListSeasonsByLeague_LeagueNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, countrymock.NewRepository(t), seasonmock.NewRepository(t))

	leagueRepo.
		On("GetByID", mock.Anything, int64(42)).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ListSeasonsByLeague(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_ListLeagues_NormalizesPaging(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, countrymock.NewRepository(t), seasonmock.NewRepository(t))

	leagueRepo.
		On("List", mock.Anything, league.Filter{CountryID: 1, Code: "WSL", Limit: DefaultPageSize}).
		Return([]league.League{{ID: 1}}, nil).
		Once()

	if _, err := service.ListLeagues(context.Background(), league.Filter{CountryID: 1, Code: " WSL "}); err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if _, err := service.ListLeagues(context.Background(), league.Filter{Offset: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative offset, got %v", err)
	}
}

func TestLeagueService_CreateLeague(t *testing.T) {
	t.Parallel()

	code := " NWSL "
	tests := []struct {
		name    string
		setup   func(*leaguemock.Repository, *countrymock.Repository)
		input   league.League
		wantErr error
	}{
		{
			name:    "missing name",
			input:   league.League{CountryID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown country",
			setup: func(_ *leaguemock.Repository, countries *countrymock.Repository) {
				countries.On("GetByID", mock.Anything, int64(9)).Return(country.Country{}, false, nil).Once()
			},
			input:   league.League{CountryID: 9, Name: "NWSL"},
			wantErr: ErrNotFound,
		},
		{
			name: "duplicate",
			setup: func(leagues *leaguemock.Repository, countries *countrymock.Repository) {
				countries.On("GetByID", mock.Anything, int64(2)).Return(country.Country{ID: 2}, true, nil).Once()
				leagues.On("Create", mock.Anything, mock.Anything).Return(league.League{}, fmt.Errorf("%w: code=NWSL", league.ErrConflict)).Once()
			},
			input:   league.League{CountryID: 2, Name: "National Women's Soccer League", Code: &code},
			wantErr: ErrConflict,
		},
		{
			name: "created with trimmed code",
			setup: func(leagues *leaguemock.Repository, countries *countrymock.Repository) {
				countries.On("GetByID", mock.Anything, int64(2)).Return(country.Country{ID: 2}, true, nil).Once()
				leagues.
					On("Create", mock.Anything, mock.MatchedBy(func(item league.League) bool {
						return item.Code != nil && *item.Code == "NWSL"
					})).
					Return(league.League{ID: 5, CountryID: 2, Name: "National Women's Soccer League"}, nil).
					Once()
			},
			input: league.League{CountryID: 2, Name: "National Women's Soccer League", Code: &code},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			leagueRepo := leaguemock.NewRepository(t)
			countryRepo := countrymock.NewRepository(t)
			if tc.setup != nil {
				tc.setup(leagueRepo, countryRepo)
			}
			service := NewLeagueService(leagueRepo, countryRepo, seasonmock.NewRepository(t))

			input := tc.input
			if input.Code != nil {
				copied := *input.Code
				input.Code = &copied
			}
			_, err := service.CreateLeague(context.Background(), input)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("create league: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestClubService_UpdateStadiumUsingMockery(t *testing.T) {
	t.Parallel()

	clubRepo := clubmock.NewRepository(t)
	service := NewClubService(clubRepo, playerstatsmock.NewRepository(t), nil)

	clubRepo.
		On("UpdateStadium", mock.Anything, int64(7), mock.MatchedBy(func(v *string) bool { return v != nil && *v == "Kingsmeadow" })).
		Return(club.Club{ID: 7, Name: "Chelsea"}, true, nil).
		Once()
	clubRepo.
		On("UpdateStadium", mock.Anything, int64(7), (*string)(nil)).
		Return(club.Club{ID: 7, Name: "Chelsea"}, true, nil).
		Once()
	clubRepo.
		On("UpdateStadium", mock.Anything, int64(8), mock.Anything).
		Return(club.Club{}, false, nil).
		Once()

	if _, err := service.UpdateStadium(context.Background(), 7, "  Kingsmeadow "); err != nil {
		t.Fatalf("update stadium: %v", err)
	}
	if _, err := service.UpdateStadium(context.Background(), 7, "   "); err != nil {
		t.Fatalf("clear stadium: %v", err)
	}
	if _, err := service.UpdateStadium(context.Background(), 8, "Meadow Park"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.UpdateStadium(context.Background(), 0, "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClubService_ListPlayersUsingMockery(t *testing.T) {
	t.Parallel()

	clubRepo := clubmock.NewRepository(t)
	statRepo := playerstatsmock.NewRepository(t)
	service := NewClubService(clubRepo, statRepo, nil)

	clubRepo.On("GetByID", mock.Anything, int64(7)).Return(club.Club{ID: 7}, true, nil).Once()
	statRepo.
		On("List", mock.Anything, playerstats.Filter{ClubID: 7, SeasonID: 2}).
		Return([]playerstats.SeasonStat{{ID: 1, ClubID: 7}}, nil).
		Once()

	rows, err := service.ListPlayers(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
}

func TestCountryService_CreateUsingMockery(t *testing.T) {
	t.Parallel()

	countryRepo := countrymock.NewRepository(t)
	service := NewCountryService(countryRepo)

	countryRepo.
		On("Create", mock.Anything, country.Country{Name: "England", Code: "ENG"}).
		Return(country.Country{ID: 1, Name: "England", Code: "ENG"}, nil).
		Once()

	got, err := service.Create(context.Background(), country.Country{Name: " England ", Code: "eng"})
	if err != nil {
		t.Fatalf("create country: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
	if _, err := service.Create(context.Background(), country.Country{Name: "Nowhere"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_CreateUsingMockery(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	leagueRepo := leaguemock.NewRepository(t)
	service := NewSeasonService(seasonRepo, leagueRepo)

	leagueRepo.On("GetByID", mock.Anything, int64(1)).Return(league.League{ID: 1}, true, nil).Twice()
	seasonRepo.
		On("Create", mock.Anything, season.Season{LeagueID: 1, Label: "2025-26"}).
		Return(season.Season{ID: 9, LeagueID: 1, Label: "2025-26"}, nil).
		Once()
	seasonRepo.
		On("Create", mock.Anything, season.Season{LeagueID: 1, Label: "2024-25"}).
		Return(season.Season{}, season.ErrConflict).
		Once()

	if _, err := service.Create(context.Background(), season.Season{LeagueID: 1, Label: " 2025-26 "}); err != nil {
		t.Fatalf("create season: %v", err)
	}
	if _, err := service.Create(context.Background(), season.Season{LeagueID: 1, Label: "2024-25"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := service.Create(context.Background(), season.Season{LeagueID: 1, Label: "2024-2025-26"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
