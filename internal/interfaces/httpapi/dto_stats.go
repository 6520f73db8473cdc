package httpapi

// Stat DTOs mirror the domain rows field for field so handlers convert them directly.

type clubStatDTO struct {
	ID       int64 `json:"id"`
	ClubID   int64 `json:"club_id"`
	SeasonID int64 `json:"season_id"`
	LeagueID int64 `json:"league_id"`

	ClubName    string `json:"club_name"`
	ClubFbrefID string `json:"club_fbref_id"`
	SeasonLabel string `json:"season_label"`
	LeagueName  string `json:"league_name"`

	PointsWon      int `json:"points_won"`
	LeaguePosition int `json:"league_position"`

	MatchesPlayed             *int     `json:"matches_played"`
	Win                       *int     `json:"win"`
	Draw                      *int     `json:"draw"`
	Lost                      *int     `json:"lost"`
	GoalsScored               *int     `json:"goals_scored"`
	GoalsConceded             *int     `json:"goals_conceded"`
	XGCreated                 *float64 `json:"xg_created"`
	XGConceded                *float64 `json:"xg_conceded"`
	ShotsAllowed              *int     `json:"shots_allowed"`
	ShotsTargetAllowed        *int     `json:"shots_target_allowed"`
	AttemptedPassesAgainst    *int     `json:"attempted_passes_against"`
	CompPassesAllowed         *int     `json:"comp_passes_allowed"`
	PassesToFinalThirdAllowed *int     `json:"passes_to_final_third_allowed"`
	PassesToPenAreaAllowed    *int     `json:"passes_to_pen_area_allowed"`
}

type playerStatDTO struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"player_id"`
	SeasonID int64 `json:"season_id"`
	ClubID   int64 `json:"club_id"`
	LeagueID int64 `json:"league_id"`

	PlayerName        string  `json:"player_name"`
	PlayerFbrefID     string  `json:"player_fbref_id"`
	PlayerAge         *int    `json:"player_age"`
	PlayerNationality *string `json:"player_nationality"`
	ClubName          string  `json:"club_name"`
	SeasonLabel       string  `json:"season_label"`
	LeagueName        string  `json:"league_name"`

	Position *string `json:"position"`
	Age      *int    `json:"age"`

	MatchesPlayed       *int     `json:"matches_played"`
	MinutesPlayed       *int     `json:"minutes_played"`
	MatchesCompleted    *int     `json:"matches_completed"`
	MatchesSubstituted  *int     `json:"matches_substituted"`
	UnusedSub           *int     `json:"unused_sub"`
	Goals               *int     `json:"goals"`
	Assists             *int     `json:"assists"`
	XG                  *float64 `json:"xg"`
	NPXG                *float64 `json:"npxg"`
	XGPerformance       *float64 `json:"xg_performance"`
	NPXGPerformance     *float64 `json:"npxg_performance"`
	ProgCarries         *int     `json:"prog_carries"`
	ProgCarriesFinal3rd *int     `json:"prog_carries_final_3rd"`
	ProgPasses          *int     `json:"prog_passes"`
	ShotsTarget         *int     `json:"shots_target"`
	PassesToFinal3rd    *int     `json:"passes_to_final_3rd"`
	PassesToPenArea     *int     `json:"passes_to_pen_area"`
	PassSwitches        *int     `json:"pass_switches"`
	ThroughBall         *int     `json:"through_ball"`
	ShotsCreationAction *int     `json:"shots_creation_action"`
	Offsides            *int     `json:"offsides"`
	PenWon              *int     `json:"pen_won"`
	PenConceded         *int     `json:"pen_conceded"`
	Tackles             *int     `json:"tackles"`
	BallRecoveries      *int     `json:"ball_recoveries"`
	AerialDuelsWon      *int     `json:"aerial_duels_won"`
	AerialDuelsLost     *int     `json:"aerial_duels_lost"`
	Blocks              *int     `json:"blocks"`
	TacklesWon          *int     `json:"tackles_won"`
	Interceptions       *int     `json:"interceptions"`
	Touches             *int     `json:"touches"`
	Dispossessed        *int     `json:"dispossessed"`
	Miscontrols         *int     `json:"miscontrols"`
	TakeOns             *int     `json:"take_ons"`
	TakeOnsWon          *int     `json:"take_ons_won"`
	FoulsWon            *int     `json:"fouls_won"`
	FoulsCommitted      *int     `json:"fouls_committed"`
	CarriesToFinal3rd   *int     `json:"carries_to_final_3rd"`
	CarriesToPenArea    *int     `json:"carries_to_pen_area"`
	YellowCard          *int     `json:"yellow_card"`
	RedCard             *int     `json:"red_card"`
}

type goalkeeperStatDTO struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"player_id"`
	SeasonID int64 `json:"season_id"`
	ClubID   int64 `json:"club_id"`
	LeagueID int64 `json:"league_id"`

	PlayerName        string  `json:"player_name"`
	PlayerFbrefID     string  `json:"player_fbref_id"`
	PlayerAge         *int    `json:"player_age"`
	PlayerNationality *string `json:"player_nationality"`
	ClubName          string  `json:"club_name"`
	SeasonLabel       string  `json:"season_label"`
	LeagueName        string  `json:"league_name"`

	Position string `json:"position"`
	Age      *int   `json:"age"`

	MatchesPlayed      *int     `json:"matches_played"`
	MinutesPlayed      *int     `json:"minutes_played"`
	GoalsConceded      *int     `json:"goals_conceded"`
	ShotsFaced         *int     `json:"shots_faced"`
	Saves              *int     `json:"saves"`
	SavePercentage     *float64 `json:"save_percentage"`
	CleanSheets        *int     `json:"clean_sheets"`
	PSXG               *float64 `json:"psxg"`
	PSXGPerformance    *float64 `json:"psxg_performance"`
	PenSaved           *int     `json:"pen_saved"`
	Passes             *int     `json:"passes"`
	CrossesStopped     *int     `json:"crosses_stopped"`
	SweeperAction      *int     `json:"sweeper_action"`
	SweeperActionPer90 *float64 `json:"sweeper_action_per90"`
}
