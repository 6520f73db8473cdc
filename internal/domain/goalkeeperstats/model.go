package goalkeeperstats

import (
	"errors"
	"fmt"
)

var ErrConflict = errors.New("goalkeeper season stat conflicts with an existing row")

// Position is stored on every goalkeeper row.
const Position = "GK"

// SeasonStat is a goalkeeper's season at one club: one per (player, season, club).
type SeasonStat struct {
	ID       int64
	PlayerID int64
	SeasonID int64
	ClubID   int64
	LeagueID int64

	PlayerName        string
	PlayerFbrefID     string
	PlayerAge         *int
	PlayerNationality *string
	ClubName          string
	SeasonLabel       string
	LeagueName        string

	Position string
	Age      *int

	MatchesPlayed      *int
	MinutesPlayed      *int
	GoalsConceded      *int
	ShotsFaced         *int
	Saves              *int
	SavePercentage     *float64
	CleanSheets        *int
	PSXG               *float64
	PSXGPerformance    *float64
	PenSaved           *int
	Passes             *int
	CrossesStopped     *int
	SweeperAction      *int
	SweeperActionPer90 *float64
}

func (s SeasonStat) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if s.SeasonID <= 0 {
		return fmt.Errorf("season id is required")
	}
	if s.ClubID <= 0 {
		return fmt.Errorf("club id is required")
	}
	if s.LeagueID <= 0 {
		return fmt.Errorf("league id is required")
	}

	return nil
}

type Filter struct {
	LeagueID  int64
	SeasonID  int64
	ClubID    int64
	PlayerID  int64
	PlayerIDs []int64
	Limit     int
	Offset    int
}
