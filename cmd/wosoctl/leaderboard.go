package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/woso-api/internal/app"
	"github.com/riskibarqy/woso-api/internal/usecase"
	"github.com/spf13/cobra"
)

func leaderboardCmd() *cobra.Command {
	var (
		query  usecase.LeaderboardQuery
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "leaderboard <clubs|players|goalkeepers>",
		Short: "Print a ranked leaderboard per season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Kind = args[0]
			return withServices(cmd.Context(), func(services app.Services) error {
				result, err := services.Leaderboard.Rank(cmd.Context(), query)
				if err != nil {
					return err
				}
				if asJSON {
					data, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}
				return printLeaderboard(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&query.Category, "category", "", "named category, e.g. top_scorers")
	cmd.Flags().StringVar(&query.Field, "field", "", "stat field to rank by")
	cmd.Flags().StringVar(&query.Direction, "direction", "", "asc or desc (default desc)")
	cmd.Flags().IntVar(&query.Limit, "limit", 10, "entries per season")
	cmd.Flags().Int64Var(&query.LeagueID, "league-id", 0, "restrict to a league")
	cmd.Flags().Int64Var(&query.SeasonID, "season-id", 0, "restrict to a season")
	cmd.Flags().Int64Var(&query.ClubID, "club-id", 0, "restrict to a club")
	cmd.Flags().BoolVar(&query.U23, "u23", false, "players under 23 only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printLeaderboard(w io.Writer, result usecase.LeaderboardResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s by %s (%s)\n", result.Kind, result.Field, result.Direction)
	for _, season := range result.Seasons {
		fmt.Fprintf(tw, "\n%s\n", season.Season)
		for _, entry := range season.Entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", entry.Rank, entryName(entry), entryClub(entry), formatValue(entry.Value))
		}
	}
	return tw.Flush()
}

func entryName(entry usecase.LeaderboardEntry) string {
	switch {
	case entry.ClubStat != nil:
		return entry.ClubStat.ClubName
	case entry.PlayerStat != nil:
		return entry.PlayerStat.PlayerName
	case entry.GoalkeeperStat != nil:
		return entry.GoalkeeperStat.PlayerName
	}
	return ""
}

func entryClub(entry usecase.LeaderboardEntry) string {
	switch {
	case entry.PlayerStat != nil:
		return entry.PlayerStat.ClubName
	case entry.GoalkeeperStat != nil:
		return entry.GoalkeeperStat.ClubName
	}
	return ""
}

func formatValue(value *float64) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
