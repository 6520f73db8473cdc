package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/riskibarqy/woso-api/internal/app"
	"github.com/riskibarqy/woso-api/internal/usecase"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var (
		scope    usecase.ImportScope
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "import <kind> <file>",
		Short: "Import one CSV export",
		Long: "Import one CSV export. Kinds: clubs, players, club-season-stats, club-stats, " +
			"player-stats, goalkeeper-stats.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := usecase.ParseImportKind(args[0])
			if !ok {
				return fmt.Errorf("unknown import kind %q", args[0])
			}
			src, err := app.OpenCSV(args[1])
			if err != nil {
				return err
			}

			req := usecase.ImportRequest{Kind: kind, Source: src, Scope: scope}
			if progress {
				bar := newProgressBar(src.Len(), string(kind))
				defer bar.Finish()
				req.Observer = func(processed, _ int) { bar.SetCurrent(int64(processed)) }
			}

			return withServices(cmd.Context(), func(services app.Services) error {
				summary, err := services.Importer.Run(cmd.Context(), req)
				if err != nil {
					return err
				}
				printSummary(cmd.OutOrStdout(), summary)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&scope.SeasonID, "season-id", 0, "season the rows belong to")
	cmd.Flags().Int64Var(&scope.LeagueID, "league-id", 0, "league the rows belong to")
	cmd.Flags().StringVar(&scope.ClubFbrefID, "club", "", "club FBref id for single-club player exports")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress bar")
	return cmd
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix+" ")
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func printSummary(w io.Writer, s usecase.ImportSummary) {
	fmt.Fprintf(w, "%s %s: %s rows, %s created, %s updated, %s skipped in %s\n",
		s.Kind,
		s.Source,
		humanize.Comma(int64(s.Rows)),
		humanize.Comma(int64(s.Created)),
		humanize.Comma(int64(s.Updated)),
		humanize.Comma(int64(s.Skipped)),
		s.Duration().Round(time.Millisecond),
	)

	counts := s.CountByKind()
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %-22s %s\n", kind, humanize.Comma(int64(counts[usecase.DiagnosticKind(kind)])))
	}
	if len(s.Diagnostics) > 0 {
		fmt.Fprintf(w, "  first: row %d %s\n", s.Diagnostics[0].Row, strings.TrimSpace(s.Diagnostics[0].Message))
	}
}
