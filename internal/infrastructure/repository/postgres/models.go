package postgres

// Row models mirror the domain structs field for field so rows convert with a plain
// type conversion. Label columns come from joins and are never written.

type countryModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

type leagueModel struct {
	ID          int64   `db:"id"`
	CountryID   int64   `db:"country_id"`
	CountryName string  `db:"country_name"`
	CountryCode string  `db:"country_code"`
	Name        string  `db:"name"`
	TotalClubs  *int    `db:"total_clubs"`
	Code        *string `db:"code"`
}

type seasonModel struct {
	ID         int64  `db:"id"`
	LeagueID   int64  `db:"league_id"`
	LeagueName string `db:"league_name"`
	Label      string `db:"label"`
}

type clubModel struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	FbrefID string  `db:"fbref_id"`
	Stadium *string `db:"stadium"`
}

type playerModel struct {
	ID          int64   `db:"id"`
	FullName    string  `db:"full_name"`
	FbrefID     string  `db:"fbref_id"`
	Nationality *string `db:"nationality"`
	Age         *int    `db:"age"`
}

type clubStatModel struct {
	ID       int64 `db:"id"`
	ClubID   int64 `db:"club_id"`
	SeasonID int64 `db:"season_id"`
	LeagueID int64 `db:"league_id"`

	ClubName    string `db:"club_name"`
	ClubFbrefID string `db:"club_fbref_id"`
	SeasonLabel string `db:"season_label"`
	LeagueName  string `db:"league_name"`

	PointsWon      int `db:"points_won"`
	LeaguePosition int `db:"league_position"`

	MatchesPlayed             *int     `db:"matches_played"`
	Win                       *int     `db:"win"`
	Draw                      *int     `db:"draw"`
	Lost                      *int     `db:"lost"`
	GoalsScored               *int     `db:"goals_scored"`
	GoalsConceded             *int     `db:"goals_conceded"`
	XGCreated                 *float64 `db:"xg_created"`
	XGConceded                *float64 `db:"xg_conceded"`
	ShotsAllowed              *int     `db:"shots_allowed"`
	ShotsTargetAllowed        *int     `db:"shots_target_allowed"`
	AttemptedPassesAgainst    *int     `db:"attempted_passes_against"`
	CompPassesAllowed         *int     `db:"comp_passes_allowed"`
	PassesToFinalThirdAllowed *int     `db:"passes_to_final_third_allowed"`
	PassesToPenAreaAllowed    *int     `db:"passes_to_pen_area_allowed"`
}

type playerStatModel struct {
	ID       int64 `db:"id"`
	PlayerID int64 `db:"player_id"`
	SeasonID int64 `db:"season_id"`
	ClubID   int64 `db:"club_id"`
	LeagueID int64 `db:"league_id"`

	PlayerName        string  `db:"player_name"`
	PlayerFbrefID     string  `db:"player_fbref_id"`
	PlayerAge         *int    `db:"player_age"`
	PlayerNationality *string `db:"player_nationality"`
	ClubName          string  `db:"club_name"`
	SeasonLabel       string  `db:"season_label"`
	LeagueName        string  `db:"league_name"`

	Position *string `db:"position"`
	Age      *int    `db:"age"`

	MatchesPlayed       *int     `db:"matches_played"`
	MinutesPlayed       *int     `db:"minutes_played"`
	MatchesCompleted    *int     `db:"matches_completed"`
	MatchesSubstituted  *int     `db:"matches_substituted"`
	UnusedSub           *int     `db:"unused_sub"`
	Goals               *int     `db:"goals"`
	Assists             *int     `db:"assists"`
	XG                  *float64 `db:"xg"`
	NPXG                *float64 `db:"npxg"`
	XGPerformance       *float64 `db:"xg_performance"`
	NPXGPerformance     *float64 `db:"npxg_performance"`
	ProgCarries         *int     `db:"prog_carries"`
	ProgCarriesFinal3rd *int     `db:"prog_carries_final_3rd"`
	ProgPasses          *int     `db:"prog_passes"`
	ShotsTarget         *int     `db:"shots_target"`
	PassesToFinal3rd    *int     `db:"passes_to_final_3rd"`
	PassesToPenArea     *int     `db:"passes_to_pen_area"`
	PassSwitches        *int     `db:"pass_switches"`
	ThroughBall         *int     `db:"through_ball"`
	ShotsCreationAction *int     `db:"shots_creation_action"`
	Offsides            *int     `db:"offsides"`
	PenWon              *int     `db:"pen_won"`
	PenConceded         *int     `db:"pen_conceded"`
	Tackles             *int     `db:"tackles"`
	BallRecoveries      *int     `db:"ball_recoveries"`
	AerialDuelsWon      *int     `db:"aerial_duels_won"`
	AerialDuelsLost     *int     `db:"aerial_duels_lost"`
	Blocks              *int     `db:"blocks"`
	TacklesWon          *int     `db:"tackles_won"`
	Interceptions       *int     `db:"interceptions"`
	Touches             *int     `db:"touches"`
	Dispossessed        *int     `db:"dispossessed"`
	Miscontrols         *int     `db:"miscontrols"`
	TakeOns             *int     `db:"take_ons"`
	TakeOnsWon          *int     `db:"take_ons_won"`
	FoulsWon            *int     `db:"fouls_won"`
	FoulsCommitted      *int     `db:"fouls_committed"`
	CarriesToFinal3rd   *int     `db:"carries_to_final_3rd"`
	CarriesToPenArea    *int     `db:"carries_to_pen_area"`
	YellowCard          *int     `db:"yellow_card"`
	RedCard             *int     `db:"red_card"`
}

type goalkeeperStatModel struct {
	ID       int64 `db:"id"`
	PlayerID int64 `db:"player_id"`
	SeasonID int64 `db:"season_id"`
	ClubID   int64 `db:"club_id"`
	LeagueID int64 `db:"league_id"`

	PlayerName        string  `db:"player_name"`
	PlayerFbrefID     string  `db:"player_fbref_id"`
	PlayerAge         *int    `db:"player_age"`
	PlayerNationality *string `db:"player_nationality"`
	ClubName          string  `db:"club_name"`
	SeasonLabel       string  `db:"season_label"`
	LeagueName        string  `db:"league_name"`

	Position string `db:"position"`
	Age      *int   `db:"age"`

	MatchesPlayed      *int     `db:"matches_played"`
	MinutesPlayed      *int     `db:"minutes_played"`
	GoalsConceded      *int     `db:"goals_conceded"`
	ShotsFaced         *int     `db:"shots_faced"`
	Saves              *int     `db:"saves"`
	SavePercentage     *float64 `db:"save_percentage"`
	CleanSheets        *int     `db:"clean_sheets"`
	PSXG               *float64 `db:"psxg"`
	PSXGPerformance    *float64 `db:"psxg_performance"`
	PenSaved           *int     `db:"pen_saved"`
	Passes             *int     `db:"passes"`
	CrossesStopped     *int     `db:"crosses_stopped"`
	SweeperAction      *int     `db:"sweeper_action"`
	SweeperActionPer90 *float64 `db:"sweeper_action_per90"`
}
