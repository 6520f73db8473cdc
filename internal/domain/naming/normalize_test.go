package naming

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Manchester City":        "manchestercity",
		"  Paris-Saint Germain ": "parissaintgermain",
		"":                       "",
		"WEST-HAM":               "westham",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q)=%q want %q", in, got, want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("Manchester City", "manchestercity") {
		t.Fatalf("expected normalized token to match")
	}
	if !Contains("Manchester City", "chester c") {
		t.Fatalf("expected substring to match after normalization")
	}
	if Contains("Arsenal", "") {
		t.Fatalf("empty token must not match")
	}
	if Contains("Arsenal", "chelsea") {
		t.Fatalf("unexpected match")
	}
}
