package league

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConflict = errors.New("league already exists")

// League is a competition inside one country. Code is the short public handle
// used by the league pages (WSL, NWSL, LigaF, ...).
type League struct {
	ID          int64
	CountryID   int64
	CountryName string
	CountryCode string
	Name        string
	TotalClubs  *int
	Code        *string
}

func (l League) Validate() error {
	if l.CountryID <= 0 {
		return fmt.Errorf("league country id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if len(l.Name) > 100 {
		return fmt.Errorf("league name must be at most 100 characters")
	}
	if l.TotalClubs != nil && *l.TotalClubs < 0 {
		return fmt.Errorf("league total clubs must be >= 0")
	}
	if l.Code != nil && len(strings.TrimSpace(*l.Code)) > 10 {
		return fmt.Errorf("league code must be at most 10 characters")
	}

	return nil
}

// CodeValue returns the league code or an empty string when unset.
func (l League) CodeValue() string {
	if l.Code == nil {
		return ""
	}
	return *l.Code
}

type Filter struct {
	CountryID int64
	Name      string
	Code      string
	Limit     int
	Offset    int
}
