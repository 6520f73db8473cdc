package usecase

import (
	"errors"
	"fmt"
)

// Sentinels shared by every service. Handlers map them to HTTP statuses, so wrap them
// with %w and add the offending id or field.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrConflict is a duplicate catalog entry, e.g. a second league with the same code.
	ErrConflict     = errors.New("resource conflict")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable covers missing server-side configuration and open breakers.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// createError translates a repository Create failure. A storage conflict becomes ErrConflict;
// anything else is wrapped with the operation name.
func createError(op string, err, conflict error) error {
	if errors.Is(err, conflict) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
