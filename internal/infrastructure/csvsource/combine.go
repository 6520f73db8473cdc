package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/riskibarqy/woso-api/internal/platform/tabular"
	"github.com/valyala/bytebufferpool"
)

// CombineOptions selects the grouping key and the columns copied from a group's first row.
type CombineOptions struct {
	Key      string
	Identity []string
}

func DefaultCombineOptions() CombineOptions {
	return CombineOptions{
		Key:      "player_id",
		Identity: []string{"player_id", "player_name", "position", "age"},
	}
}

type CombineResult struct {
	InputRows  int
	OutputRows int
	Summed     []string
	Dropped    []string
}

type group struct {
	first int
	sums  map[string]float64
	seen  map[string]bool
}

// Combine collapses rows sharing opts.Key into one row. Numeric columns are summed; a column
// where every value in a group is missing stays blank. Columns holding any non-numeric value
// are dropped unless listed as identity columns.
func Combine(src *Source, w io.Writer, opts CombineOptions) (CombineResult, error) {
	if opts.Key == "" {
		opts = DefaultCombineOptions()
	}
	if !src.Has(opts.Key) {
		return CombineResult{}, fmt.Errorf("combine %s: key column %q is missing", src.Name(), opts.Key)
	}

	identity := make(map[string]struct{}, len(opts.Identity))
	var identityCols []string
	for _, column := range opts.Identity {
		if src.Has(column) {
			identity[column] = struct{}{}
			identityCols = append(identityCols, column)
		}
	}

	var numeric, dropped []string
	for _, column := range src.columns {
		if _, ok := identity[column]; ok || column == "" {
			continue
		}
		if isNumericColumn(src, column) {
			numeric = append(numeric, column)
		} else {
			dropped = append(dropped, column)
		}
	}

	order := make([]string, 0, src.Len())
	groups := make(map[string]*group, src.Len())
	for row := 0; row < src.Len(); row++ {
		key, _ := src.Cell(row, opts.Key)
		if tabular.IsMissing(key) {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{first: row, sums: make(map[string]float64, len(numeric)), seen: make(map[string]bool, len(numeric))}
			groups[key] = g
			order = append(order, key)
		}
		for _, column := range numeric {
			raw, _ := src.Cell(row, column)
			value, missing, err := tabular.ParseNumber(raw)
			if err != nil || missing {
				continue
			}
			g.sums[column] += value
			g.seen[column] = true
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	out := csv.NewWriter(buf)
	header := append(append([]string(nil), identityCols...), numeric...)
	if err := out.Write(header); err != nil {
		return CombineResult{}, fmt.Errorf("write combined header: %w", err)
	}
	for _, key := range order {
		g := groups[key]
		record := make([]string, 0, len(header))
		for _, column := range identityCols {
			value, _ := src.Cell(g.first, column)
			record = append(record, value)
		}
		for _, column := range numeric {
			if !g.seen[column] {
				record = append(record, "")
				continue
			}
			record = append(record, formatNumber(g.sums[column]))
		}
		if err := out.Write(record); err != nil {
			return CombineResult{}, fmt.Errorf("write combined row %s: %w", key, err)
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return CombineResult{}, fmt.Errorf("flush combined csv: %w", err)
	}

	if _, err := w.Write(buf.B); err != nil {
		return CombineResult{}, fmt.Errorf("write combined csv: %w", err)
	}

	return CombineResult{
		InputRows:  src.Len(),
		OutputRows: len(order),
		Summed:     numeric,
		Dropped:    dropped,
	}, nil
}

func isNumericColumn(src *Source, column string) bool {
	for row := 0; row < src.Len(); row++ {
		raw, _ := src.Cell(row, column)
		if _, _, err := tabular.ParseNumber(raw); err != nil {
			return false
		}
	}
	return true
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
