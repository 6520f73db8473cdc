package usecase

import (
	"time"

	"github.com/riskibarqy/woso-api/internal/platform/tabular"
)

type ImportKind string

const (
	ImportClubs           ImportKind = "clubs"
	ImportPlayers         ImportKind = "players"
	ImportClubSeasonStats ImportKind = "club-season-stats"
	ImportClubStats       ImportKind = "club-stats"
	ImportPlayerStats     ImportKind = "player-stats"
	ImportGoalkeeperStats ImportKind = "goalkeeper-stats"
)

// ImportKinds lists every kind in a stable order.
func ImportKinds() []ImportKind {
	return []ImportKind{
		ImportClubs,
		ImportPlayers,
		ImportClubSeasonStats,
		ImportClubStats,
		ImportPlayerStats,
		ImportGoalkeeperStats,
	}
}

func ParseImportKind(raw string) (ImportKind, bool) {
	for _, kind := range ImportKinds() {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}

type DiagnosticKind string

const (
	DiagnosticReferenceNotFound  DiagnosticKind = "reference_not_found"
	DiagnosticUniquenessConflict DiagnosticKind = "uniqueness_conflict"
	DiagnosticPositionFiltered   DiagnosticKind = "position_filtered"
	DiagnosticInvalidRow         DiagnosticKind = "invalid_row"
	DiagnosticValueCoercion      DiagnosticKind = "value_coercion"
	DiagnosticRowFailed          DiagnosticKind = "row_failed"
)

// RowDiagnostic describes one row-scoped issue. Row is 1-based over data rows; Key is the
// row's natural key (fbref id) when known.
type RowDiagnostic struct {
	Row     int            `json:"row"`
	Kind    DiagnosticKind `json:"kind"`
	Key     string         `json:"key,omitempty"`
	Column  string         `json:"column,omitempty"`
	Message string         `json:"message"`
}

type ImportSummary struct {
	RunID       string          `json:"run_id"`
	Kind        ImportKind      `json:"kind"`
	Source      string          `json:"source"`
	Rows        int             `json:"rows"`
	Created     int             `json:"created"`
	Updated     int             `json:"updated"`
	Skipped     int             `json:"skipped"`
	Diagnostics []RowDiagnostic `json:"diagnostics"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  time.Time       `json:"finished_at"`
}

func (s ImportSummary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// CountByKind tallies diagnostics, e.g. for CLI output.
func (s ImportSummary) CountByKind() map[DiagnosticKind]int {
	out := make(map[DiagnosticKind]int)
	for _, d := range s.Diagnostics {
		out[d.Kind]++
	}
	return out
}

func (s ImportSummary) mentions(key string) bool {
	for _, d := range s.Diagnostics {
		if d.Key == key {
			return true
		}
	}
	return false
}

func (s *ImportSummary) note(d RowDiagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// ImportScope carries the prerequisites a kind needs; unused fields are ignored.
type ImportScope struct {
	SeasonID    int64
	LeagueID    int64
	ClubFbrefID string
}

// RowObserver is told after each processed row, e.g. to drive a progress bar.
type RowObserver func(processed, total int)

type ImportRequest struct {
	Kind     ImportKind
	Source   tabular.Source
	Scope    ImportScope
	Observer RowObserver
}
