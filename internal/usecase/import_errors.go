package usecase

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrScopeNotFound marks imports whose season, league or club prerequisite is missing.
	ErrScopeNotFound = crerr.New("import scope not found")
	// ErrSchemaMismatch marks imports whose source lacks required columns.
	ErrSchemaMismatch = crerr.New("import source is missing required columns")
)

// SchemaMismatchError lists every absent required column.
type SchemaMismatchError struct {
	Kind    ImportKind
	Source  string
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s import from %s is missing columns: %s", e.Kind, e.Source, strings.Join(e.Missing, ", "))
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrInvalidInput
}

func scopeNotFound(format string, args ...any) error {
	err := crerr.Wrapf(ErrNotFound, format, args...)
	err = crerr.WithHint(err, "create the season, league and club before importing stats")
	return crerr.Mark(err, ErrScopeNotFound)
}

func schemaMismatch(kind ImportKind, source string, missing []string) error {
	err := crerr.WithHintf(&SchemaMismatchError{Kind: kind, Source: source, Missing: missing},
		"expected columns: %s", strings.Join(requiredColumns[kind], ", "))
	return crerr.Mark(err, ErrSchemaMismatch)
}

// IsScopeNotFound reports whether err aborted an import because a prerequisite is missing.
func IsScopeNotFound(err error) bool {
	return crerr.Is(err, ErrScopeNotFound)
}

// IsSchemaMismatch reports whether err aborted an import because of absent columns.
func IsSchemaMismatch(err error) bool {
	return crerr.Is(err, ErrSchemaMismatch)
}

// ErrorHints returns user-facing hints attached to err.
func ErrorHints(err error) []string {
	return crerr.GetAllHints(err)
}
