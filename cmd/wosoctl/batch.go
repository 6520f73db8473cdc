package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/riskibarqy/woso-api/internal/app"
	"github.com/riskibarqy/woso-api/internal/usecase"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run a staged set of imports from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}
			manifest, err := usecase.ParseBatchManifest(data)
			if err != nil {
				return err
			}
			if workers > 0 {
				manifest.Workers = workers
			}

			return withServices(cmd.Context(), func(services app.Services) error {
				result, runErr := services.Batch.Run(cmd.Context(), manifest, filepath.Dir(args[0]))

				out := cmd.OutOrStdout()
				for _, stage := range result.Stages {
					fmt.Fprintf(out, "stage %s: %d imports, %d failed\n", stage.Name, len(stage.Imports), stage.Failed)
					for _, item := range stage.Imports {
						if item.Error != "" || item.Summary == nil {
							fmt.Fprintf(out, "  %-18s %s: %s\n", item.Kind, item.File, item.Error)
							continue
						}
						fmt.Fprintf(out, "  %-18s %s: %s rows, %d diagnostics (%s)\n",
							item.Kind,
							item.File,
							humanize.Comma(int64(item.Summary.Rows)),
							len(item.Summary.Diagnostics),
							item.Duration.Round(time.Millisecond),
						)
					}
				}
				return runErr
			})
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "override the manifest worker count")
	return cmd
}
