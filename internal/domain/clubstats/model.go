package clubstats

import (
	"errors"
	"fmt"
)

var ErrConflict = errors.New("club season stat conflicts with an existing row")

// SeasonStat is one league-table row: one per (club, season).
type SeasonStat struct {
	ID       int64
	ClubID   int64
	SeasonID int64
	LeagueID int64

	ClubName    string
	ClubFbrefID string
	SeasonLabel string
	LeagueName  string

	PointsWon      int
	LeaguePosition int

	MatchesPlayed             *int
	Win                       *int
	Draw                      *int
	Lost                      *int
	GoalsScored               *int
	GoalsConceded             *int
	XGCreated                 *float64
	XGConceded                *float64
	ShotsAllowed              *int
	ShotsTargetAllowed        *int
	AttemptedPassesAgainst    *int
	CompPassesAllowed         *int
	PassesToFinalThirdAllowed *int
	PassesToPenAreaAllowed    *int
}

func (s SeasonStat) Validate() error {
	if s.ClubID <= 0 {
		return fmt.Errorf("club id is required")
	}
	if s.SeasonID <= 0 {
		return fmt.Errorf("season id is required")
	}
	if s.LeagueID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if s.LeaguePosition < 0 {
		return fmt.Errorf("league position must be >= 0")
	}

	return nil
}

// GoalDifference is goals scored minus goals conceded, unknown when either side is.
func (s SeasonStat) GoalDifference() (int, bool) {
	if s.GoalsScored == nil || s.GoalsConceded == nil {
		return 0, false
	}
	return *s.GoalsScored - *s.GoalsConceded, true
}

type Filter struct {
	LeagueID int64
	SeasonID int64
	ClubID   int64
	Limit    int
	Offset   int
}
