// Package tabular holds the row/column contract shared by the CSV reader and the importer.
package tabular

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Source is an ordered set of rows with named columns.
type Source interface {
	Name() string
	Columns() []string
	Len() int
	// Cell returns the trimmed cell text; ok is false when the column is absent.
	Cell(row int, column string) (value string, ok bool)
}

var missingMarkers = map[string]struct{}{
	"":     {},
	"nan":  {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"none": {},
}

// IsMissing reports whether a cell denotes "no value".
func IsMissing(raw string) bool {
	_, ok := missingMarkers[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ErrNotFinite rejects cells such as "inf" that strconv accepts but no stat can hold.
var ErrNotFinite = errors.New("number is not finite")

// ParseNumber reads a decimal cell. Thousands separators are stripped.
// missing is true for blank/marker cells; err is set for anything else that fails to parse,
// including infinities.
func ParseNumber(raw string) (value float64, missing bool, err error) {
	if IsMissing(raw) {
		return 0, true, nil
	}
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err = strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false, ErrNotFinite
	}
	return value, false, nil
}

// MissingColumns lists the required columns absent from columns, in required order.
func MissingColumns(columns []string, required []string) []string {
	present := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		present[column] = struct{}{}
	}
	var missing []string
	for _, column := range required {
		if _, ok := present[column]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}
