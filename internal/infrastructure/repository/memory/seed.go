package memory

import (
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/season"
)

// SeedLeague is one league with the seasons the in-memory driver starts with.
type SeedLeague struct {
	Country    country.Country
	Name       string
	Code       string
	TotalClubs int
	Seasons    []string
}

func DefaultSeed() []SeedLeague {
	return []SeedLeague{
		{Country: country.Country{Name: "England", Code: "ENG"}, Name: "Women's Super League", Code: "WSL", TotalClubs: 12, Seasons: []string{"2022-23", "2023-24", "2024-25"}},
		{Country: country.Country{Name: "United States", Code: "USA"}, Name: "National Women's Soccer League", Code: "NWSL", TotalClubs: 14, Seasons: []string{"2023", "2024"}},
		{Country: country.Country{Name: "Spain", Code: "ESP"}, Name: "Liga F", Code: "LigaF", TotalClubs: 16, Seasons: []string{"2023-24", "2024-25"}},
	}
}

// Seed loads reference data into an empty store. Countries shared by several
// entries are created once.
func (s *Store) Seed(entries []SeedLeague) {
	s.mu.Lock()
	defer s.mu.Unlock()

	countryIDs := make(map[string]int64)
	for _, entry := range entries {
		countryID, ok := countryIDs[entry.Country.Code]
		if !ok {
			countryID = s.allocate("countries")
			s.countries[countryID] = country.Country{ID: countryID, Name: entry.Country.Name, Code: entry.Country.Code}
			countryIDs[entry.Country.Code] = countryID
		}

		code := entry.Code
		totalClubs := entry.TotalClubs
		leagueID := s.allocate("leagues")
		s.leagues[leagueID] = league.League{ID: leagueID, CountryID: countryID, Name: entry.Name, Code: &code, TotalClubs: &totalClubs}

		for _, label := range entry.Seasons {
			seasonID := s.allocate("seasons")
			s.seasons[seasonID] = season.Season{ID: seasonID, LeagueID: leagueID, Label: label}
		}
	}
}
