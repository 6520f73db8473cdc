package player

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConflict = errors.New("player conflicts with an existing player")

// Player is keyed externally by fbref id. Age is the age recorded on the last
// player import and drives the U23 cohort.
type Player struct {
	ID          int64
	FullName    string
	FbrefID     string
	Nationality *string
	Age         *int
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("player full name is required")
	}
	if len(p.FullName) > 500 {
		return fmt.Errorf("player full name must be at most 500 characters")
	}
	if strings.TrimSpace(p.FbrefID) == "" {
		return fmt.Errorf("player fbref id is required")
	}
	if len(p.FbrefID) > 100 {
		return fmt.Errorf("player fbref id must be at most 100 characters")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 100) {
		return fmt.Errorf("player age must be between 0 and 100")
	}

	return nil
}

// CleanNationality turns "eng ENG" into "ENG". A single token is kept as is,
// an empty value becomes "Unknown".
func CleanNationality(nationality *string) string {
	if nationality == nil {
		return "Unknown"
	}
	parts := strings.Fields(*nationality)
	switch len(parts) {
	case 0:
		return "Unknown"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[1:], " ")
	}
}

type Filter struct {
	Name        string
	FbrefID     string
	Nationality string
	Limit       int
	Offset      int
}
