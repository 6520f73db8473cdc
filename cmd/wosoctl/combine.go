package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/riskibarqy/woso-api/internal/infrastructure/csvsource"
	"github.com/spf13/cobra"
)

func combineCmd() *cobra.Command {
	opts := csvsource.DefaultCombineOptions()

	cmd := &cobra.Command{
		Use:   "combine <in.csv> <out.csv>",
		Short: "Collapse per-club rows of players who moved mid-season into one row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := csvsource.Open(args[0])
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[1], err)
			}
			result, err := csvsource.Combine(src, out, opts)
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s rows -> %s rows, summed %d columns\n",
				humanize.Comma(int64(result.InputRows)),
				humanize.Comma(int64(result.OutputRows)),
				len(result.Summed),
			)
			if len(result.Dropped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "dropped: %s\n", strings.Join(result.Dropped, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Key, "key", opts.Key, "column identifying a player")
	cmd.Flags().StringSliceVar(&opts.Identity, "identity", opts.Identity, "columns copied from the first row of each group")
	return cmd
}
