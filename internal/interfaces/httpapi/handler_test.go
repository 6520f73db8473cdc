package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/woso-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/woso-api/internal/platform/id"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/usecase"
)

const testAdminToken = "s3cret"

func newTestRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()

	store := memory.NewStore()
	store.Seed(memory.DefaultSeed())

	countries := memory.NewCountryRepository(store)
	leagues := memory.NewLeagueRepository(store)
	seasons := memory.NewSeasonRepository(store)
	clubs := memory.NewClubRepository(store)
	players := memory.NewPlayerRepository(store)
	clubStats := memory.NewClubStatRepository(store)
	playerStats := memory.NewPlayerStatRepository(store)
	goalkeeperStats := memory.NewGoalkeeperStatRepository(store)

	logger := logging.NewNop()
	resolver := usecase.NewResolverService(clubs, players, playerStats, goalkeeperStats)
	handler := NewHandler(
		usecase.NewCountryService(countries),
		usecase.NewLeagueService(leagues, countries, seasons),
		usecase.NewSeasonService(seasons, leagues),
		usecase.NewClubService(clubs, playerStats, goalkeeperStats),
		usecase.NewPlayerService(players),
		usecase.NewStatsService(leagues, clubStats, playerStats, goalkeeperStats),
		usecase.NewPageService(leagues, seasons, clubStats, playerStats, goalkeeperStats, resolver, 0),
		usecase.NewLeaderboardService(clubStats, playerStats, goalkeeperStats),
		usecase.NewImporterService(leagues, seasons, clubs, players, clubStats, playerStats, goalkeeperStats, id.NewUUIDGenerator(), logger),
		1<<20,
		logger,
	)
	if opts.AdminToken == "" {
		opts.AdminToken = testAdminToken
	}
	return NewRouter(handler, opts, logger)
}

func doRequest(t *testing.T, router http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
		}
	}
	return rec, body
}

func importRequest(t *testing.T, kind, query, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	target := "/v1/admin/imports/" + kind
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	return req
}

func errorReason(body map[string]any) string {
	errorObj, _ := body["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) == 0 {
		return ""
	}
	first, _ := items[0].(map[string]any)
	reason, _ := first["reason"].(string)
	return reason
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec, body := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected healthz payload: %v", body)
	}
}

func TestHandler_CatalogReads(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	t.Run("list leagues by country", func(t *testing.T) {
		rec, body := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leagues?country_id=1", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		items, _ := body["data"].([]any)
		if len(items) != 1 {
			t.Fatalf("expected one league, got %d", len(items))
		}
		first, _ := items[0].(map[string]any)
		if first["code"] != "WSL" || first["country_code"] != "ENG" {
			t.Fatalf("unexpected league: %v", first)
		}
	})

	t.Run("seasons of league", func(t *testing.T) {
		rec, body := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leagues/1/seasons", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if items, _ := body["data"].([]any); len(items) != 3 {
			t.Fatalf("expected three seasons, got %d", len(items))
		}
	})

	t.Run("bad path id", func(t *testing.T) {
		rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leagues/abc", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("missing league", func(t *testing.T) {
		rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leagues/999", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/clubs?limit=-1", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandler_AdminRequiresToken(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/countries", strings.NewReader(`{"name":"France","code":"FRA"}`))
	rec, _ := doRequest(t, router, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/admin/countries", strings.NewReader(`{"name":"France","code":"FRA"}`))
	req.Header.Set("Authorization", "Bearer wrong")
	rec, _ = doRequest(t, router, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_CreateCountry(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	create := func(payload string) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/countries", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+testAdminToken)
		return doRequest(t, router, req)
	}

	rec, body := create(`{"name":"France","code":"FRA"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %v", rec.Code, body)
	}

	rec, _ = create(`{"name":"France","code":"FRA"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 on duplicate code, got %d", rec.Code)
	}

	rec, _ = create(`{"name":"France"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 on missing code, got %d", rec.Code)
	}

	rec, _ = create(`{"name":"France","code":"FR2","extra":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 on unknown field, got %d", rec.Code)
	}
}

func TestHandler_ImportThenServePages(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec, body := doRequest(t, router, importRequest(t, "clubs", "", "clubs.csv",
		"team_id,team_name\nche,Chelsea\nars,Arsenal\n"))
	if rec.Code != http.StatusOK {
		t.Fatalf("import clubs: expected status 200, got %d: %v", rec.Code, body)
	}
	summary, _ := body["data"].(map[string]any)
	if summary["created"] != float64(2) {
		t.Fatalf("expected two created clubs, got %v", summary)
	}

	rec, body = doRequest(t, router, importRequest(t, "club-season-stats", "season_id=2&league_id=1", "table.csv",
		"team_id,points,rank\nche,55,1\nars,50,2\n"))
	if rec.Code != http.StatusOK {
		t.Fatalf("import table: expected status 200, got %d: %v", rec.Code, body)
	}

	rec, body = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/clubs?field=points_won&league_id=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("leaderboard: expected status 200, got %d: %v", rec.Code, body)
	}
	board, _ := body["data"].(map[string]any)
	seasons, _ := board["seasons"].([]any)
	if len(seasons) != 1 {
		t.Fatalf("expected one ranked season, got %d", len(seasons))
	}
	season, _ := seasons[0].(map[string]any)
	entries, _ := season["entries"].([]any)
	if season["season"] != "2023-24" || len(entries) != 2 {
		t.Fatalf("unexpected ranked season: %v", season)
	}
	top, _ := entries[0].(map[string]any)
	row, _ := top["row"].(map[string]any)
	if top["rank"] != float64(1) || row["club_name"] != "Chelsea" {
		t.Fatalf("unexpected leader: %v", top)
	}

	rec, body = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/pages/leagues/wsl", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("league page: expected status 200, got %d: %v", rec.Code, body)
	}
	page, _ := body["data"].(map[string]any)
	if clubs, _ := page["clubs"].([]any); len(clubs) != 2 {
		t.Fatalf("expected two clubs on league page, got %v", page["clubs"])
	}

	rec, body = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/pages/clubs/chelsea", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("club page: expected status 200, got %d: %v", rec.Code, body)
	}

	rec, _ = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/pages/clubs/nobody", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown club: expected status 404, got %d", rec.Code)
	}
}

func TestHandler_ImportErrors(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	t.Run("unknown kind", func(t *testing.T) {
		rec, _ := doRequest(t, router, importRequest(t, "fixtures", "", "x.csv", "a\n1\n"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		rec, body := doRequest(t, router, importRequest(t, "clubs", "", "clubs.csv", "team_id\nche\n"))
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", rec.Code)
		}
		if got := errorReason(body); got != "missingColumn" {
			t.Fatalf("expected missingColumn reason, got %q", got)
		}
	})

	t.Run("unknown season scope", func(t *testing.T) {
		rec, body := doRequest(t, router, importRequest(t, "player-stats", "season_id=999&league_id=1", "stats.csv", "player_id\nkerr\n"))
		if rec.Code != http.StatusUnprocessableEntity && rec.Code != http.StatusBadRequest {
			t.Fatalf("expected a client error, got %d: %v", rec.Code, body)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		_ = form.WriteField("note", "nothing")
		_ = form.Close()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/imports/clubs", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+testAdminToken)

		rec, _ := doRequest(t, router, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandler_LeaderboardFields(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec, body := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/goalkeepers/fields", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if fields, _ := body["data"].([]any); len(fields) == 0 {
		t.Fatalf("expected goalkeeper fields, got %v", body["data"])
	}

	rec, _ = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/referees/fields", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown kind, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/v1/leaderboards/players", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without field or category, got %d", rec.Code)
	}
}

func TestRateLimit_RejectsBurst(t *testing.T) {
	router := newTestRouter(t, RouterOptions{RateLimit: RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}})

	rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec, body := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
	if got := errorReason(body); got != "rateLimitExceeded" {
		t.Fatalf("expected rateLimitExceeded reason, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	rec, _ = doRequest(t, router, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", rec.Code)
	}
}

func TestHandler_OpenAPIRevalidates(t *testing.T) {
	router := newTestRouter(t, RouterOptions{SwaggerEnabled: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" || !strings.Contains(rec.Body.String(), "openapi:") {
		t.Fatalf("unexpected document response: etag=%q", etag)
	}

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected status 304, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body on 304, got %d bytes", rec.Body.Len())
	}
}
