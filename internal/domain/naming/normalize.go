// Package naming holds the loose name matching rules shared by clubs and players.
package naming

import "strings"

var stripper = strings.NewReplacer(" ", "", "-", "")

// Normalize removes spaces and hyphens and lowercases the result, so
// "Manchester City", "manchester-city" and "manchestercity" compare equal.
func Normalize(name string) string {
	return strings.ToLower(stripper.Replace(strings.TrimSpace(name)))
}

// Contains reports whether the normalized candidate contains the normalized token.
func Contains(candidate, token string) bool {
	normalizedToken := Normalize(token)
	if normalizedToken == "" {
		return false
	}
	return strings.Contains(Normalize(candidate), normalizedToken)
}
