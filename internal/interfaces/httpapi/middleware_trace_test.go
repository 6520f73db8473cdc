package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: " /readyz ", want: false},
		{path: "/openapi.yaml", want: false},
		{path: "/docs", want: false},
		{path: "/docs/index.html", want: false},
		{path: "/v1/leagues", want: true},
		{path: "/v1/pages/clubs/chelsea", want: true},
		{path: "/v1/admin/imports/clubs", want: true},
		{path: "/", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := shouldTraceRequest(tt.path); got != tt.want {
				t.Fatalf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
			}
		})
	}
}
