package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
	"scriptorium/internal/review"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered view as a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *registry.Store) error {
				records, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				rows := review.Build(records, time.Now(), criteria)

				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create report file: %w", err)
				}

				if err := review.WriteCSV(file, rows); err != nil {
					_ = file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("close report file: %w", err)
				}

				ctx.ensureLogger().Info("report exported", "path", outPath, "rows", len(rows))
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d manuscripts to %s\n", len(rows), outPath)
				return nil
			})
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", review.DefaultReportFilename, "Destination for the CSV report")

	return cmd
}
