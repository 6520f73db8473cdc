package leaderboard

import "strings"

// U23Prefix marks the under-23 variant of a player category.
const U23Prefix = "u23_"

// U23MaxAge is the oldest age kept in the under-23 cohort.
const U23MaxAge = 23

// QualifyingMinutes gates the "fewest" categories so bench players do not top them.
const QualifyingMinutes = 900

// Category is a named, preconfigured leaderboard.
type Category struct {
	Key   string
	Title string
	Query Query
}

func top(field, title string) Category {
	return Category{Key: field, Title: title, Query: Query{Field: field, Direction: Descending, ExcludeNonPositive: true}}
}

func delta(field, title string) Category {
	return Category{Key: field, Title: title, Query: Query{Field: field, Direction: Descending}}
}

func fewest(key, field, title string) Category {
	return Category{
		Key:   key,
		Title: title,
		Query: Query{
			Field:     field,
			Direction: Ascending,
			Qualifier: &Qualifier{Field: "minutes_played", Min: QualifyingMinutes},
		},
	}
}

func table(key, field, title string, direction Direction) Category {
	return Category{Key: key, Title: title, Query: Query{Field: field, Direction: direction, Limit: NoLimit}}
}

// ClubCategories rank whole league tables, so zero and negative values stay in.
func ClubCategories() []Category {
	return []Category{
		table("points", "points_won", "Points", Descending),
		table("league_table", "league_position", "League table", Ascending),
		table("goal_difference", "goal_difference", "Goal difference", Descending),
		table("goals_scored", "goals_scored", "Goals scored", Descending),
		table("goals_conceded", "goals_conceded", "Goals conceded", Descending),
		table("fewest_goals_conceded", "goals_conceded", "Fewest goals conceded", Ascending),
		table("xg_created", "xg_created", "xG created", Descending),
		table("xg_conceded", "xg_conceded", "xG conceded", Descending),
		table("shots_allowed", "shots_allowed", "Shots allowed", Descending),
		table("shots_target_allowed", "shots_target_allowed", "Shots on target allowed", Descending),
		table("attempted_passes_against", "attempted_passes_against", "Passes attempted against", Descending),
		table("comp_passes_allowed", "comp_passes_allowed", "Completed passes allowed", Descending),
		table("passes_to_final_third_allowed", "passes_to_final_third_allowed", "Passes into final third allowed", Descending),
		table("passes_to_pen_area_allowed", "passes_to_pen_area_allowed", "Passes into penalty area allowed", Descending),
	}
}

func PlayerCategories() []Category {
	return []Category{
		top("goals", "Goals"),
		top("assists", "Assists"),
		top("goal_contribution", "Goals + assists"),
		top("xg", "xG"),
		top("npxg", "Non-penalty xG"),
		delta("xg_performance", "Goals minus xG"),
		delta("npxg_performance", "Goals minus npxG"),
		top("matches_played", "Matches played"),
		top("minutes_played", "Minutes played"),
		top("matches_completed", "Full matches"),
		top("matches_substituted", "Substitute appearances"),
		top("unused_sub", "Unused substitute"),
		top("prog_carries", "Progressive carries"),
		top("prog_carries_final_3rd", "Carries into final third"),
		top("prog_passes", "Progressive passes"),
		top("shots_target", "Shots on target"),
		top("passes_to_final_3rd", "Passes into final third"),
		top("passes_to_pen_area", "Passes into penalty area"),
		top("pass_switches", "Switches"),
		top("through_ball", "Through balls"),
		top("shots_creation_action", "Shot-creating actions"),
		top("offsides", "Offsides"),
		top("pen_won", "Penalties won"),
		top("pen_conceded", "Penalties conceded"),
		top("tackles", "Tackles"),
		top("tackles_won", "Tackles won"),
		top("ball_recoveries", "Ball recoveries"),
		top("aerial_duels_won", "Aerial duels won"),
		top("aerial_duels_lost", "Aerial duels lost"),
		top("blocks", "Blocks"),
		top("interceptions", "Interceptions"),
		top("touches", "Touches"),
		top("dispossessed", "Dispossessed"),
		top("miscontrols", "Miscontrols"),
		top("take_ons", "Take-ons attempted"),
		top("take_ons_won", "Take-ons won"),
		top("fouls_won", "Fouls won"),
		top("fouls_committed", "Fouls committed"),
		top("carries_to_final_3rd", "Carries to final third"),
		top("carries_to_pen_area", "Carries into penalty area"),
		top("yellow_card", "Yellow cards"),
		top("red_card", "Red cards"),
		fewest("fewest_yellow_cards", "yellow_card", "Fewest yellow cards"),
	}
}

// U23PlayerCategories mirrors PlayerCategories restricted to players aged 23 or younger.
func U23PlayerCategories() []Category {
	base := PlayerCategories()
	out := make([]Category, 0, len(base))
	for _, category := range base {
		out = append(out, category.U23())
	}
	return out
}

func GoalkeeperCategories() []Category {
	return []Category{
		top("matches_played", "Matches played"),
		top("minutes_played", "Minutes played"),
		top("goals_conceded", "Goals conceded"),
		fewest("fewest_goals_conceded", "goals_conceded", "Fewest goals conceded"),
		top("shots_faced", "Shots faced"),
		top("saves", "Saves"),
		top("save_percentage", "Save percentage"),
		top("clean_sheets", "Clean sheets"),
		top("psxg", "Post-shot xG"),
		delta("psxg_performance", "Post-shot xG minus goals"),
		top("pen_saved", "Penalties saved"),
		top("passes", "Passes"),
		top("crosses_stopped", "Crosses stopped"),
		top("sweeper_action", "Sweeper actions"),
		top("sweeper_action_per90", "Sweeper actions per 90"),
	}
}

// U23 returns the under-23 variant of c.
func (c Category) U23() Category {
	maxAge := U23MaxAge
	out := c
	out.Key = U23Prefix + c.Key
	out.Title = c.Title + " (U23)"
	out.Query.MaxAge = &maxAge
	return out
}

// FindCategory looks a category key up in the catalog of kind.
func FindCategory(kind, key string) (Category, bool) {
	var categories []Category
	switch kind {
	case KindClub:
		categories = ClubCategories()
	case KindPlayer:
		categories = PlayerCategories()
		if strings.HasPrefix(key, U23Prefix) {
			categories = U23PlayerCategories()
		}
	case KindGoalkeeper:
		categories = GoalkeeperCategories()
	}
	for _, category := range categories {
		if category.Key == key {
			return category, true
		}
	}
	return Category{}, false
}
