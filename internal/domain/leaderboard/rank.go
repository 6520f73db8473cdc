package leaderboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownField      = errors.New("unknown leaderboard field")
	ErrCohortUnsupported = errors.New("age cohort is not supported for this record kind")
	ErrInvalidDirection  = errors.New("invalid leaderboard direction")
)

const (
	// DefaultLimit applies when Query.Limit is zero.
	DefaultLimit = 10
	// NoLimit keeps every ranked row of a group.
	NoLimit = -1
	// AllSeasons is the only group key when season grouping is turned off.
	AllSeasons = "all"
)

type Direction string

const (
	Descending Direction = "desc"
	Ascending  Direction = "asc"
)

func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, raw)
	}
}

// Metric reads one rankable value off a record; ok=false means the value is unknown.
type Metric[T any] func(record T) (value float64, ok bool)

// Schema tells RankBy how to read a record kind.
type Schema[T any] struct {
	Kind    string
	Season  func(T) string
	Name    func(T) string
	Age     func(T) *int
	Metrics map[string]Metric[T]
}

func (s Schema[T]) HasField(field string) bool {
	_, ok := s.Metrics[field]
	return ok
}

// Fields returns the rankable field names sorted alphabetically.
func (s Schema[T]) Fields() []string {
	out := make([]string, 0, len(s.Metrics))
	for name := range s.Metrics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type Qualifier struct {
	Field string
	Min   float64
}

type Query struct {
	Field              string
	Direction          Direction
	Limit              int
	Ungrouped          bool
	ExcludeNonPositive bool
	MinValue           *float64
	MaxAge             *int
	Qualifier          *Qualifier
}

func (q Query) effectiveLimit() int {
	if q.Limit == 0 {
		return DefaultLimit
	}
	return q.Limit
}

type Entry[T any] struct {
	Rank     int
	Record   T
	Value    float64
	HasValue bool
}

// Result maps a season label to its ranked entries.
type Result[T any] map[string][]Entry[T]

// Seasons returns the group keys, latest label first.
func (r Result[T]) Seasons() []string {
	out := make([]string, 0, len(r))
	for season := range r {
		out = append(out, season)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

type scored[T any] struct {
	record  T
	value   float64
	present bool
	name    string
	index   int
}

// RankBy buckets records by season and ranks each bucket by query.Field.
func RankBy[T any](records []T, schema Schema[T], query Query) (Result[T], error) {
	metric, ok := schema.Metrics[query.Field]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, schema.Kind, query.Field)
	}
	var qualifier Metric[T]
	if query.Qualifier != nil {
		qualifier, ok = schema.Metrics[query.Qualifier.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no qualifier field %q", ErrUnknownField, schema.Kind, query.Qualifier.Field)
		}
	}
	if query.MaxAge != nil && schema.Age == nil {
		return nil, fmt.Errorf("%w: %s", ErrCohortUnsupported, schema.Kind)
	}
	direction := query.Direction
	if direction == "" {
		direction = Descending
	}
	if direction != Descending && direction != Ascending {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	groups := make(map[string][]scored[T])
	for i, record := range records {
		if query.MaxAge != nil {
			if age := schema.Age(record); age != nil && *age > *query.MaxAge {
				continue
			}
		}
		if qualifier != nil {
			v, present := qualifier(record)
			if !present || v < query.Qualifier.Min {
				continue
			}
		}

		value, present := metric(record)
		if query.ExcludeNonPositive && (!present || value <= 0) {
			continue
		}
		if query.MinValue != nil && (!present || value < *query.MinValue) {
			continue
		}

		key := AllSeasons
		if !query.Ungrouped {
			key = schema.Season(record)
		}
		item := scored[T]{record: record, value: value, present: present, index: i}
		if schema.Name != nil {
			item.name = strings.ToLower(schema.Name(record))
		}
		groups[key] = append(groups[key], item)
	}

	limit := query.effectiveLimit()
	out := make(Result[T], len(groups))
	for key, items := range groups {
		sort.SliceStable(items, func(i, j int) bool {
			return less(items[i], items[j], direction)
		})
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}

		entries := make([]Entry[T], 0, len(items))
		for i, item := range items {
			entries = append(entries, Entry[T]{
				Rank:     i + 1,
				Record:   item.record,
				Value:    item.value,
				HasValue: item.present,
			})
		}
		out[key] = entries
	}

	return out, nil
}

func less[T any](a, b scored[T], direction Direction) bool {
	if a.present != b.present {
		return a.present
	}
	if a.present && a.value != b.value {
		if direction == Ascending {
			return a.value < b.value
		}
		return a.value > b.value
	}
	if a.name != b.name {
		return a.name < b.name
	}
	return a.index < b.index
}
