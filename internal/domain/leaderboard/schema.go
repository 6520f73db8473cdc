package leaderboard

import (
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

const (
	KindClub       = "clubs"
	KindPlayer     = "players"
	KindGoalkeeper = "goalkeepers"
)

func intMetric[T any](get func(T) *int) Metric[T] {
	return func(record T) (float64, bool) {
		v := get(record)
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	}
}

func floatMetric[T any](get func(T) *float64) Metric[T] {
	return func(record T) (float64, bool) {
		v := get(record)
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

func ClubSchema() Schema[clubstats.SeasonStat] {
	type row = clubstats.SeasonStat
	return Schema[row]{
		Kind:   KindClub,
		Season: func(r row) string { return r.SeasonLabel },
		Name:   func(r row) string { return r.ClubName },
		Metrics: map[string]Metric[row]{
			"points_won":      func(r row) (float64, bool) { return float64(r.PointsWon), true },
			"league_position": func(r row) (float64, bool) { return float64(r.LeaguePosition), true },
			"goal_difference": func(r row) (float64, bool) {
				v, ok := r.GoalDifference()
				return float64(v), ok
			},
			"matches_played":                intMetric(func(r row) *int { return r.MatchesPlayed }),
			"win":                           intMetric(func(r row) *int { return r.Win }),
			"draw":                          intMetric(func(r row) *int { return r.Draw }),
			"lost":                          intMetric(func(r row) *int { return r.Lost }),
			"goals_scored":                  intMetric(func(r row) *int { return r.GoalsScored }),
			"goals_conceded":                intMetric(func(r row) *int { return r.GoalsConceded }),
			"xg_created":                    floatMetric(func(r row) *float64 { return r.XGCreated }),
			"xg_conceded":                   floatMetric(func(r row) *float64 { return r.XGConceded }),
			"shots_allowed":                 intMetric(func(r row) *int { return r.ShotsAllowed }),
			"shots_target_allowed":          intMetric(func(r row) *int { return r.ShotsTargetAllowed }),
			"attempted_passes_against":      intMetric(func(r row) *int { return r.AttemptedPassesAgainst }),
			"comp_passes_allowed":           intMetric(func(r row) *int { return r.CompPassesAllowed }),
			"passes_to_final_third_allowed": intMetric(func(r row) *int { return r.PassesToFinalThirdAllowed }),
			"passes_to_pen_area_allowed":    intMetric(func(r row) *int { return r.PassesToPenAreaAllowed }),
		},
	}
}

func PlayerSchema() Schema[playerstats.SeasonStat] {
	type row = playerstats.SeasonStat
	return Schema[row]{
		Kind:   KindPlayer,
		Season: func(r row) string { return r.SeasonLabel },
		Name:   func(r row) string { return r.PlayerName },
		Age:    func(r row) *int { return r.PlayerAge },
		Metrics: map[string]Metric[row]{
			"goal_contribution": func(r row) (float64, bool) {
				v, ok := r.GoalContribution()
				return float64(v), ok
			},
			"matches_played":         intMetric(func(r row) *int { return r.MatchesPlayed }),
			"minutes_played":         intMetric(func(r row) *int { return r.MinutesPlayed }),
			"matches_completed":      intMetric(func(r row) *int { return r.MatchesCompleted }),
			"matches_substituted":    intMetric(func(r row) *int { return r.MatchesSubstituted }),
			"unused_sub":             intMetric(func(r row) *int { return r.UnusedSub }),
			"goals":                  intMetric(func(r row) *int { return r.Goals }),
			"assists":                intMetric(func(r row) *int { return r.Assists }),
			"xg":                     floatMetric(func(r row) *float64 { return r.XG }),
			"npxg":                   floatMetric(func(r row) *float64 { return r.NPXG }),
			"xg_performance":         floatMetric(func(r row) *float64 { return r.XGPerformance }),
			"npxg_performance":       floatMetric(func(r row) *float64 { return r.NPXGPerformance }),
			"prog_carries":           intMetric(func(r row) *int { return r.ProgCarries }),
			"prog_carries_final_3rd": intMetric(func(r row) *int { return r.ProgCarriesFinal3rd }),
			"prog_passes":            intMetric(func(r row) *int { return r.ProgPasses }),
			"shots_target":           intMetric(func(r row) *int { return r.ShotsTarget }),
			"passes_to_final_3rd":    intMetric(func(r row) *int { return r.PassesToFinal3rd }),
			"passes_to_pen_area":     intMetric(func(r row) *int { return r.PassesToPenArea }),
			"pass_switches":          intMetric(func(r row) *int { return r.PassSwitches }),
			"through_ball":           intMetric(func(r row) *int { return r.ThroughBall }),
			"shots_creation_action":  intMetric(func(r row) *int { return r.ShotsCreationAction }),
			"offsides":               intMetric(func(r row) *int { return r.Offsides }),
			"pen_won":                intMetric(func(r row) *int { return r.PenWon }),
			"pen_conceded":           intMetric(func(r row) *int { return r.PenConceded }),
			"tackles":                intMetric(func(r row) *int { return r.Tackles }),
			"ball_recoveries":        intMetric(func(r row) *int { return r.BallRecoveries }),
			"aerial_duels_won":       intMetric(func(r row) *int { return r.AerialDuelsWon }),
			"aerial_duels_lost":      intMetric(func(r row) *int { return r.AerialDuelsLost }),
			"blocks":                 intMetric(func(r row) *int { return r.Blocks }),
			"tackles_won":            intMetric(func(r row) *int { return r.TacklesWon }),
			"interceptions":          intMetric(func(r row) *int { return r.Interceptions }),
			"touches":                intMetric(func(r row) *int { return r.Touches }),
			"dispossessed":           intMetric(func(r row) *int { return r.Dispossessed }),
			"miscontrols":            intMetric(func(r row) *int { return r.Miscontrols }),
			"take_ons":               intMetric(func(r row) *int { return r.TakeOns }),
			"take_ons_won":           intMetric(func(r row) *int { return r.TakeOnsWon }),
			"fouls_won":              intMetric(func(r row) *int { return r.FoulsWon }),
			"fouls_committed":        intMetric(func(r row) *int { return r.FoulsCommitted }),
			"carries_to_final_3rd":   intMetric(func(r row) *int { return r.CarriesToFinal3rd }),
			"carries_to_pen_area":    intMetric(func(r row) *int { return r.CarriesToPenArea }),
			"yellow_card":            intMetric(func(r row) *int { return r.YellowCard }),
			"red_card":               intMetric(func(r row) *int { return r.RedCard }),
		},
	}
}

func GoalkeeperSchema() Schema[goalkeeperstats.SeasonStat] {
	type row = goalkeeperstats.SeasonStat
	return Schema[row]{
		Kind:   KindGoalkeeper,
		Season: func(r row) string { return r.SeasonLabel },
		Name:   func(r row) string { return r.PlayerName },
		Age:    func(r row) *int { return r.PlayerAge },
		Metrics: map[string]Metric[row]{
			"matches_played":       intMetric(func(r row) *int { return r.MatchesPlayed }),
			"minutes_played":       intMetric(func(r row) *int { return r.MinutesPlayed }),
			"goals_conceded":       intMetric(func(r row) *int { return r.GoalsConceded }),
			"shots_faced":          intMetric(func(r row) *int { return r.ShotsFaced }),
			"saves":                intMetric(func(r row) *int { return r.Saves }),
			"save_percentage":      floatMetric(func(r row) *float64 { return r.SavePercentage }),
			"clean_sheets":         intMetric(func(r row) *int { return r.CleanSheets }),
			"psxg":                 floatMetric(func(r row) *float64 { return r.PSXG }),
			"psxg_performance":     floatMetric(func(r row) *float64 { return r.PSXGPerformance }),
			"pen_saved":            intMetric(func(r row) *int { return r.PenSaved }),
			"passes":               intMetric(func(r row) *int { return r.Passes }),
			"crosses_stopped":      intMetric(func(r row) *int { return r.CrossesStopped }),
			"sweeper_action":       intMetric(func(r row) *int { return r.SweeperAction }),
			"sweeper_action_per90": floatMetric(func(r row) *float64 { return r.SweeperActionPer90 }),
		},
	}
}
