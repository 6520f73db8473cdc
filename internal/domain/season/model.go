package season

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConflict = errors.New("season already exists")

// Season is one edition of a league, labelled like "2024-25".
type Season struct {
	ID         int64
	LeagueID   int64
	LeagueName string
	Label      string
}

func (s Season) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id is required")
	}
	label := strings.TrimSpace(s.Label)
	if label == "" {
		return fmt.Errorf("season label is required")
	}
	if len(label) > 9 {
		return fmt.Errorf("season label must be at most 9 characters")
	}

	return nil
}

type Filter struct {
	LeagueID int64
	Label    string
	Limit    int
	Offset   int
}
