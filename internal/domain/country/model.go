package country

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConflict = errors.New("country already exists")

// Country is immutable reference data that leagues hang off.
type Country struct {
	ID   int64
	Name string
	Code string
}

func (c Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("country name is required")
	}
	if len(c.Name) > 70 {
		return fmt.Errorf("country name must be at most 70 characters")
	}
	code := strings.TrimSpace(c.Code)
	if code == "" {
		return fmt.Errorf("country code is required")
	}
	if len(code) > 5 {
		return fmt.Errorf("country code must be at most 5 characters")
	}

	return nil
}

type Filter struct {
	Name   string
	Code   string
	Limit  int
	Offset int
}
