package usecase

import (
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

var requiredColumns = map[ImportKind][]string{
	ImportClubs:           {"team_id", "team_name"},
	ImportPlayers:         {"player_id", "player_name", "nationality", "age"},
	ImportClubSeasonStats: {"team_id", "points", "rank"},
	ImportClubStats:       {"team_id", "points", "rank"},
	ImportPlayerStats: {
		"player_id", "team_id", "position", "age", "games", "minutes", "goals", "assists",
		"xg", "npxg", "progressive_carries", "progressive_passes", "shots_on_target",
		"passes_into_final_third", "passes_into_penalty_area", "passes_switches",
		"through_balls", "sca", "offsides", "pens_won", "pens_conceded", "tackles",
		"ball_recoveries", "aerials_won", "aerials_lost", "blocks", "tackles_won",
		"interceptions", "touches", "dispossessed", "miscontrols", "take_ons", "fouled",
		"fouls", "carries_into_final_third", "carries_into_penalty_area", "cards_yellow",
		"cards_red", "games_complete", "games_subs", "unused_subs",
	},
	ImportGoalkeeperStats: {
		"player_id", "team_id", "position", "age", "gk_games", "gk_minutes", "gk_goals_against",
		"gk_shots_on_target_against", "gk_saves", "gk_save_pct", "gk_clean_sheets", "gk_psxg",
		"gk_psxg_net", "gk_pens_saved", "gk_passes", "gk_crosses_stopped",
		"gk_def_actions_outside_pen_area", "gk_def_actions_outside_pen_area_per90",
	},
}

// RequiredColumns returns the column contract of kind.
func RequiredColumns(kind ImportKind) []string {
	return append([]string(nil), requiredColumns[kind]...)
}

type intColumn[T any] struct {
	column string
	field  func(*T) **int
}

type floatColumn[T any] struct {
	column string
	field  func(*T) **float64
}

// Club season stats: every optional column may be absent and maps to null.
var clubStatIntColumns = []intColumn[clubstats.SeasonStat]{
	{"games", func(s *clubstats.SeasonStat) **int { return &s.MatchesPlayed }},
	{"wins", func(s *clubstats.SeasonStat) **int { return &s.Win }},
	{"ties", func(s *clubstats.SeasonStat) **int { return &s.Draw }},
	{"losses", func(s *clubstats.SeasonStat) **int { return &s.Lost }},
	{"goals_for", func(s *clubstats.SeasonStat) **int { return &s.GoalsScored }},
	{"goals_against", func(s *clubstats.SeasonStat) **int { return &s.GoalsConceded }},
	{"shots", func(s *clubstats.SeasonStat) **int { return &s.ShotsAllowed }},
	{"shots_on_target", func(s *clubstats.SeasonStat) **int { return &s.ShotsTargetAllowed }},
	{"passes", func(s *clubstats.SeasonStat) **int { return &s.AttemptedPassesAgainst }},
	{"passes_completed", func(s *clubstats.SeasonStat) **int { return &s.CompPassesAllowed }},
	{"passes_into_final_third", func(s *clubstats.SeasonStat) **int { return &s.PassesToFinalThirdAllowed }},
	{"passes_into_penalty_area", func(s *clubstats.SeasonStat) **int { return &s.PassesToPenAreaAllowed }},
}

var clubStatFloatColumns = []floatColumn[clubstats.SeasonStat]{
	{"xg_for", func(s *clubstats.SeasonStat) **float64 { return &s.XGCreated }},
	{"xg_against", func(s *clubstats.SeasonStat) **float64 { return &s.XGConceded }},
}

// Outfield stats: missing cells become 0.
var playerStatIntColumns = []intColumn[playerstats.SeasonStat]{
	{"games", func(s *playerstats.SeasonStat) **int { return &s.MatchesPlayed }},
	{"minutes", func(s *playerstats.SeasonStat) **int { return &s.MinutesPlayed }},
	{"games_complete", func(s *playerstats.SeasonStat) **int { return &s.MatchesCompleted }},
	{"games_subs", func(s *playerstats.SeasonStat) **int { return &s.MatchesSubstituted }},
	{"unused_subs", func(s *playerstats.SeasonStat) **int { return &s.UnusedSub }},
	{"goals", func(s *playerstats.SeasonStat) **int { return &s.Goals }},
	{"assists", func(s *playerstats.SeasonStat) **int { return &s.Assists }},
	{"progressive_carries", func(s *playerstats.SeasonStat) **int { return &s.ProgCarries }},
	{"carries_into_final_third", func(s *playerstats.SeasonStat) **int { return &s.ProgCarriesFinal3rd }},
	{"carries_into_final_third", func(s *playerstats.SeasonStat) **int { return &s.CarriesToFinal3rd }},
	{"progressive_passes", func(s *playerstats.SeasonStat) **int { return &s.ProgPasses }},
	{"shots_on_target", func(s *playerstats.SeasonStat) **int { return &s.ShotsTarget }},
	{"passes_into_final_third", func(s *playerstats.SeasonStat) **int { return &s.PassesToFinal3rd }},
	{"passes_into_penalty_area", func(s *playerstats.SeasonStat) **int { return &s.PassesToPenArea }},
	{"passes_switches", func(s *playerstats.SeasonStat) **int { return &s.PassSwitches }},
	{"through_balls", func(s *playerstats.SeasonStat) **int { return &s.ThroughBall }},
	{"sca", func(s *playerstats.SeasonStat) **int { return &s.ShotsCreationAction }},
	{"offsides", func(s *playerstats.SeasonStat) **int { return &s.Offsides }},
	{"pens_won", func(s *playerstats.SeasonStat) **int { return &s.PenWon }},
	{"pens_conceded", func(s *playerstats.SeasonStat) **int { return &s.PenConceded }},
	{"tackles", func(s *playerstats.SeasonStat) **int { return &s.Tackles }},
	{"ball_recoveries", func(s *playerstats.SeasonStat) **int { return &s.BallRecoveries }},
	{"aerials_won", func(s *playerstats.SeasonStat) **int { return &s.AerialDuelsWon }},
	{"aerials_lost", func(s *playerstats.SeasonStat) **int { return &s.AerialDuelsLost }},
	{"blocks", func(s *playerstats.SeasonStat) **int { return &s.Blocks }},
	{"tackles_won", func(s *playerstats.SeasonStat) **int { return &s.TacklesWon }},
	{"interceptions", func(s *playerstats.SeasonStat) **int { return &s.Interceptions }},
	{"touches", func(s *playerstats.SeasonStat) **int { return &s.Touches }},
	{"dispossessed", func(s *playerstats.SeasonStat) **int { return &s.Dispossessed }},
	{"miscontrols", func(s *playerstats.SeasonStat) **int { return &s.Miscontrols }},
	{"take_ons", func(s *playerstats.SeasonStat) **int { return &s.TakeOns }},
	{"take_ons_won", func(s *playerstats.SeasonStat) **int { return &s.TakeOnsWon }},
	{"fouled", func(s *playerstats.SeasonStat) **int { return &s.FoulsWon }},
	{"fouls", func(s *playerstats.SeasonStat) **int { return &s.FoulsCommitted }},
	{"carries_into_penalty_area", func(s *playerstats.SeasonStat) **int { return &s.CarriesToPenArea }},
	{"cards_yellow", func(s *playerstats.SeasonStat) **int { return &s.YellowCard }},
	{"cards_red", func(s *playerstats.SeasonStat) **int { return &s.RedCard }},
}

var playerStatFloatColumns = []floatColumn[playerstats.SeasonStat]{
	{"xg", func(s *playerstats.SeasonStat) **float64 { return &s.XG }},
	{"npxg", func(s *playerstats.SeasonStat) **float64 { return &s.NPXG }},
}

// Goalkeeper stats: missing cells become 0.
var goalkeeperStatIntColumns = []intColumn[goalkeeperstats.SeasonStat]{
	{"gk_games", func(s *goalkeeperstats.SeasonStat) **int { return &s.MatchesPlayed }},
	{"gk_minutes", func(s *goalkeeperstats.SeasonStat) **int { return &s.MinutesPlayed }},
	{"gk_goals_against", func(s *goalkeeperstats.SeasonStat) **int { return &s.GoalsConceded }},
	{"gk_shots_on_target_against", func(s *goalkeeperstats.SeasonStat) **int { return &s.ShotsFaced }},
	{"gk_saves", func(s *goalkeeperstats.SeasonStat) **int { return &s.Saves }},
	{"gk_clean_sheets", func(s *goalkeeperstats.SeasonStat) **int { return &s.CleanSheets }},
	{"gk_pens_saved", func(s *goalkeeperstats.SeasonStat) **int { return &s.PenSaved }},
	{"gk_passes", func(s *goalkeeperstats.SeasonStat) **int { return &s.Passes }},
	{"gk_crosses_stopped", func(s *goalkeeperstats.SeasonStat) **int { return &s.CrossesStopped }},
	{"gk_def_actions_outside_pen_area", func(s *goalkeeperstats.SeasonStat) **int { return &s.SweeperAction }},
}

var goalkeeperStatFloatColumns = []floatColumn[goalkeeperstats.SeasonStat]{
	{"gk_save_pct", func(s *goalkeeperstats.SeasonStat) **float64 { return &s.SavePercentage }},
	{"gk_psxg", func(s *goalkeeperstats.SeasonStat) **float64 { return &s.PSXG }},
	{"gk_psxg_net", func(s *goalkeeperstats.SeasonStat) **float64 { return &s.PSXGPerformance }},
	{"gk_def_actions_outside_pen_area_per90", func(s *goalkeeperstats.SeasonStat) **float64 { return &s.SweeperActionPer90 }},
}
