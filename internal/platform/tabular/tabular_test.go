package tabular

import (
	"reflect"
	"testing"
)

func TestIsMissing(t *testing.T) {
	for _, raw := range []string{"", "  ", "NaN", "nan", "NA", "N/A", "null", "None"} {
		if !IsMissing(raw) {
			t.Fatalf("expected %q to be missing", raw)
		}
	}
	for _, raw := range []string{"0", "abc", "-"} {
		if IsMissing(raw) {
			t.Fatalf("expected %q to be present", raw)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		missing bool
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: " 1,234.5 ", want: 1234.5},
		{raw: "-3.25", want: -3.25},
		{raw: "NaN", missing: true},
		{raw: "", missing: true},
		{raw: "abc", wantErr: true},
		{raw: "inf", wantErr: true},
		{raw: "-Infinity", wantErr: true},
		{raw: "1e12", want: 1e12},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, missing, err := ParseNumber(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if missing != tc.missing || got != tc.want {
				t.Fatalf("ParseNumber(%q) = %v, missing=%v", tc.raw, got, missing)
			}
		})
	}
}

func TestMissingColumns(t *testing.T) {
	got := MissingColumns([]string{"team_id", "points"}, []string{"team_id", "points", "rank", "games"})
	if !reflect.DeepEqual(got, []string{"rank", "games"}) {
		t.Fatalf("unexpected missing columns: %v", got)
	}
	if got := MissingColumns([]string{"a"}, []string{"a"}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
