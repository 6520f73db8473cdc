package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/countries", handler.ListCountries)
	mux.HandleFunc("GET /v1/countries/{countryID}", handler.GetCountry)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons", handler.ListSeasonsByLeague)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{clubID}", handler.GetClub)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/clubs", handler.ListClubsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/goalkeepers", handler.ListGoalkeepersByLeague)
	mux.HandleFunc("GET /v1/clubs/{clubID}/players", handler.ListClubPlayers)
	mux.HandleFunc("GET /v1/clubs/{clubID}/goalkeepers", handler.ListClubGoalkeepers)
	mux.HandleFunc("GET /v1/club-stats", handler.ListClubStats)
	mux.HandleFunc("GET /v1/player-stats", handler.ListPlayerStats)
	mux.HandleFunc("GET /v1/goalkeepers", handler.ListGoalkeeperStats)
}

func registerPageRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/pages/leagues/{code}", handler.LeaguePage)
	mux.HandleFunc("GET /v1/pages/clubs/{token}", handler.ClubPage)
	mux.HandleFunc("GET /v1/pages/players/{token}", handler.PlayerPage)
	mux.HandleFunc("GET /v1/leaderboards/{kind}", handler.Leaderboard)
	mux.HandleFunc("GET /v1/leaderboards/{kind}/fields", handler.LeaderboardFields)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/admin/countries", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateCountry)))
	mux.Handle("POST /v1/admin/leagues", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("POST /v1/admin/seasons", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("PUT /v1/admin/clubs/{clubID}/stadium", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpdateClubStadium)))
	mux.Handle("POST /v1/admin/imports/{kind}", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunImport)))
}
