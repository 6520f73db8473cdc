package playerstats

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConflict = errors.New("player season stat conflicts with an existing row")

// GoalkeeperPosition is the position marker that routes a row to the goalkeeper collection.
const GoalkeeperPosition = "GK"

// IsGoalkeeper reports whether a raw position marker is exactly "GK". Hybrid markers
// such as "GK,DF" stay outfield rows.
func IsGoalkeeper(position string) bool {
	return strings.EqualFold(strings.TrimSpace(position), GoalkeeperPosition)
}

// SeasonStat is an outfield player's season at one club: one per (player, season, club).
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

	Position *string
	Age      *int

	MatchesPlayed       *int
	MinutesPlayed       *int
	MatchesCompleted    *int
	MatchesSubstituted  *int
	UnusedSub           *int
	Goals               *int
	Assists             *int
	XG                  *float64
	NPXG                *float64
	XGPerformance       *float64
	NPXGPerformance     *float64
	ProgCarries         *int
	ProgCarriesFinal3rd *int
	ProgPasses          *int
	ShotsTarget         *int
	PassesToFinal3rd    *int
	PassesToPenArea     *int
	PassSwitches        *int
	ThroughBall         *int
	ShotsCreationAction *int
	Offsides            *int
	PenWon              *int
	PenConceded         *int
	Tackles             *int
	BallRecoveries      *int
	AerialDuelsWon      *int
	AerialDuelsLost     *int
	Blocks              *int
	TacklesWon          *int
	Interceptions       *int
	Touches             *int
	Dispossessed        *int
	Miscontrols         *int
	TakeOns             *int
	TakeOnsWon          *int
	FoulsWon            *int
	FoulsCommitted      *int
	CarriesToFinal3rd   *int
	CarriesToPenArea    *int
	YellowCard          *int
	RedCard             *int
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

// GoalContribution is goals plus assists, unknown when either is.
func (s SeasonStat) GoalContribution() (int, bool) {
	if s.Goals == nil || s.Assists == nil {
		return 0, false
	}
	return *s.Goals + *s.Assists, true
}

type Filter struct {
	LeagueID  int64
	SeasonID  int64
	ClubID    int64
	PlayerID  int64
	PlayerIDs []int64
	Position  string
	Limit     int
	Offset    int
}
