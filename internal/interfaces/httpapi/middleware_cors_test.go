package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantOrigin  string
		wantExposed string
	}{
		{
			name:        "listed origin",
			allowed:     []string{"https://stats.woso.example/"},
			method:      http.MethodGet,
			origin:      "https://stats.woso.example",
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://stats.woso.example",
			wantExposed: corsExposeHeaders,
		},
		{
			name:       "unlisted origin",
			allowed:    []string{"https://stats.woso.example"},
			method:     http.MethodGet,
			origin:     "https://elsewhere.example",
			wantStatus: http.StatusOK,
		},
		{
			name:        "wildcard preflight",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://elsewhere.example",
			preflight:   true,
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantExposed: corsExposeHeaders,
		},
		{
			name:        "options without request method reaches handler",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://elsewhere.example",
			wantStatus:  http.StatusOK,
			wantOrigin:  "*",
			wantExposed: corsExposeHeaders,
		},
		{
			name:       "no origins configured",
			allowed:    []string{" "},
			method:     http.MethodOptions,
			origin:     "https://stats.woso.example",
			preflight:  true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/v1/leaderboards/players", nil)
			req.Header.Set("Origin", tc.origin)
			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			rec := httptest.NewRecorder()

			CORS(tc.allowed, okHandler).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers"); got != tc.wantExposed {
				t.Fatalf("unexpected Access-Control-Expose-Headers: %q", got)
			}
		})
	}
}
