package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
	"scriptorium/internal/review"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manuscripts with their SLA status",
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

				if asJSON {
					return writeJSON(cmd, rowsToJSON(rows))
				}

				if len(rows) == 0 {
					if criteria.IsZero() {
						fmt.Fprintln(cmd.OutOrStdout(), "Registry is empty")
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), "No manuscripts match the current filters")
					}
					return nil
				}

				table := renderTable(
					[]string{"ID", "Number", "Title", "Stage", "Department", "Assignee", "Entered", "SLA", "In Stage", "Remaining", "Status"},
					buildListRows(rows),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				)
				fmt.Fprint(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}

func buildListRows(rows []review.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			strconv.FormatInt(row.Record.ID, 10),
			row.Record.Number,
			orDash(row.Record.Title),
			orDash(string(row.Record.Stage)),
			orDash(string(row.Record.Department)),
			orDash(row.Record.Assignee),
			orDash(row.Record.EnteredDate),
			strconv.Itoa(row.Record.SLADays),
			strconv.Itoa(row.Derived.DaysInStage),
			strconv.Itoa(row.Derived.DaysRemaining),
			string(row.Derived.Status),
		})
	}
	return out
}
