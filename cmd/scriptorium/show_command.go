package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
	"scriptorium/internal/review"
	"scriptorium/internal/sla"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var number string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one manuscript in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 0) == (number == "") {
				return errors.New("provide a record id or --number (not both)")
			}

			return ctx.withStore(func(store *registry.Store) error {
				var rec *registry.Record
				if number != "" {
					found, err := store.GetByNumber(cmd.Context(), number)
					if err != nil {
						return err
					}
					if found == nil {
						return fmt.Errorf("manuscript number %q: not found", number)
					}
					rec = found
				} else {
					id, err := parseRecordID(args[0])
					if err != nil {
						return err
					}
					found, err := store.GetByID(cmd.Context(), id)
					if err != nil {
						return err
					}
					if found == nil {
						return fmt.Errorf("manuscript id %d: not found", id)
					}
					rec = found
				}

				derived := sla.Compute(rec.EnteredDate, rec.SLADays, time.Now())
				row := review.Row{Record: *rec, Derived: derived}

				if asJSON {
					return writeJSON(cmd, rowToJSON(row))
				}

				table := renderTable(
					[]string{"Field", "Value"},
					buildDetailRows(row),
					[]columnAlignment{alignLeft, alignLeft},
				)
				fmt.Fprint(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVar(&number, "number", "", "Look the manuscript up by number instead of id")
	return cmd
}

func buildDetailRows(row review.Row) [][]string {
	return [][]string{
		{"ID", strconv.FormatInt(row.Record.ID, 10)},
		{"Number", row.Record.Number},
		{"Title", orDash(row.Record.Title)},
		{"Stage", orDash(string(row.Record.Stage))},
		{"Department", orDash(string(row.Record.Department))},
		{"Assignee", orDash(row.Record.Assignee)},
		{"Entered stage", orDash(row.Record.EnteredDate)},
		{"SLA days", strconv.Itoa(row.Record.SLADays)},
		{"Days in stage", strconv.Itoa(row.Derived.DaysInStage)},
		{"Days remaining", strconv.Itoa(row.Derived.DaysRemaining)},
		{"Status", string(row.Derived.Status)},
	}
}
