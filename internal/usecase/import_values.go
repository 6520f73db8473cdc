package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/woso-api/internal/platform/tabular"
)

// rowReader reads one data row and records value coercions as it goes.
type rowReader struct {
	src   tabular.Source
	index int
	key   string
	notes []RowDiagnostic
}

func newRowReader(src tabular.Source, index int) *rowReader {
	return &rowReader{src: src, index: index}
}

// text returns the trimmed cell; ok is false for absent columns and missing markers.
func (r *rowReader) text(column string) (string, bool) {
	raw, ok := r.src.Cell(r.index, column)
	if !ok || tabular.IsMissing(raw) {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// optionalText maps blank cells to nil.
func (r *rowReader) optionalText(column string) *string {
	value, ok := r.text(column)
	if !ok {
		return nil
	}
	return &value
}

// number parses a decimal cell; ok is false when missing or unparseable (the latter is noted).
func (r *rowReader) number(column string) (float64, bool) {
	raw, present := r.src.Cell(r.index, column)
	if !present {
		return 0, false
	}
	value, missing, err := tabular.ParseNumber(raw)
	if missing {
		return 0, false
	}
	if err != nil {
		r.coerced(column, raw)
		return 0, false
	}
	return value, true
}

// nullableInt: missing -> nil. Values outside the INTEGER column range are noted and dropped.
func (r *rowReader) nullableInt(column string) *int {
	value, ok := r.number(column)
	if !ok {
		return nil
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		raw, _ := r.src.Cell(r.index, column)
		r.coerced(column, raw)
		return nil
	}
	v := int(math.Trunc(value))
	return &v
}

// nullableFloat: missing -> nil.
func (r *rowReader) nullableFloat(column string) *float64 {
	value, ok := r.number(column)
	if !ok {
		return nil
	}
	return &value
}

// zeroInt: missing -> 0.
func (r *rowReader) zeroInt(column string) *int {
	if v := r.nullableInt(column); v != nil {
		return v
	}
	zero := 0
	return &zero
}

// zeroFloat: missing -> 0.
func (r *rowReader) zeroFloat(column string) *float64 {
	if v := r.nullableFloat(column); v != nil {
		return v
	}
	zero := 0.0
	return &zero
}

// age reads "<years>-<days>" or a plain number; anything else is nil.
func (r *rowReader) age(column string) *int {
	raw, ok := r.text(column)
	if !ok {
		return nil
	}
	age, ok := parseAge(raw)
	if !ok {
		r.coerced(column, raw)
		return nil
	}
	return &age
}

func parseAge(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if years, _, found := strings.Cut(raw, "-"); found && years != "" {
		v, err := strconv.Atoi(strings.TrimSpace(years))
		if err != nil || v < 0 {
			return 0, false
		}
		return v, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return int(math.Trunc(v)), true
}

// performance is goals minus expected, computed from raw cells; 0 unless both are present.
func (r *rowReader) performance(goalsColumn, expectedColumn string) *float64 {
	goals, okGoals := r.number(goalsColumn)
	expected, okExpected := r.number(expectedColumn)
	out := 0.0
	if okGoals && okExpected {
		out = goals - expected
	}
	return &out
}

func (r *rowReader) coerced(column, raw string) {
	for _, note := range r.notes {
		if note.Column == column {
			return
		}
	}
	r.notes = append(r.notes, RowDiagnostic{
		Row:     r.index + 1,
		Kind:    DiagnosticValueCoercion,
		Key:     r.key,
		Column:  column,
		Message: fmt.Sprintf("could not parse %q, using the column default", raw),
	})
}
