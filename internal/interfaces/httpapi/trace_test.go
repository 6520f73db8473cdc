package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.LeaguePage", want: true},
		{name: "import handler span", in: "httpapi.Handler.RunImport", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_NeedsParent(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.Leaderboard")
	defer span.End()
	if got != ctx {
		t.Fatalf("expected context unchanged without a parent span")
	}

	parent := trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{1},
		TraceFlags: trace.FlagsSampled,
	}))
	child, childSpan := startSpan(parent, "httpapi.Handler.Leaderboard")
	defer childSpan.End()
	if child == parent {
		t.Fatalf("expected a child context under a traced request")
	}
	if got := trace.SpanContextFromContext(child).TraceID(); got != (trace.TraceID{1}) {
		t.Fatalf("expected parent trace id, got %s", got)
	}
}
