package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
	"scriptorium/internal/review"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show KPI counters and grouped counts for the filtered view",
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
				registryTotal, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				rows := review.Build(records, time.Now(), criteria)
				totals := review.KPIs(rows)

				// An unfiltered report takes its grouped counts straight
				// from the store; filters switch to the derived view.
				byStage := review.CountByStage(rows)
				byDepartment := review.CountByDepartment(rows)
				if criteria.IsZero() {
					if byStage, err = store.CountByStage(cmd.Context()); err != nil {
						return err
					}
					if byDepartment, err = store.CountByDepartment(cmd.Context()); err != nil {
						return err
					}
				}

				if asJSON {
					return writeJSON(cmd, reportJSON{
						Total:         totals.Total,
						RegistryTotal: registryTotal,
						OnTime:        totals.OnTime,
						Late:          totals.Late,
						ByStage:       stageCountsJSON(byStage),
						ByDepartment:  departmentCountsJSON(byDepartment),
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprint(out, renderTable(
					[]string{"Total", "On time", "Late"},
					[][]string{{
						strconv.Itoa(totals.Total),
						strconv.Itoa(totals.OnTime),
						strconv.Itoa(totals.Late),
					}},
					[]columnAlignment{alignRight, alignRight, alignRight},
				))

				if !criteria.IsZero() {
					fmt.Fprintf(out, "\nMatched %d of %d manuscripts\n", totals.Total, registryTotal)
				}

				if totals.Total == 0 {
					return nil
				}

				fmt.Fprintln(out, "\nBy stage")
				fmt.Fprint(out, renderTable(
					[]string{"Stage", "Count"},
					buildStageCountRows(byStage),
					[]columnAlignment{alignLeft, alignRight},
				))

				fmt.Fprintln(out, "\nBy department")
				fmt.Fprint(out, renderTable(
					[]string{"Department", "Count"},
					buildDepartmentCountRows(byDepartment),
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of tables")

	return cmd
}

type reportJSON struct {
	Total         int            `json:"total"`
	RegistryTotal int            `json:"registry_total"`
	OnTime        int            `json:"on_time"`
	Late          int            `json:"late"`
	ByStage       map[string]int `json:"by_stage"`
	ByDepartment  map[string]int `json:"by_department"`
}

func stageCountsJSON(counts map[registry.Stage]int) map[string]int {
	out := make(map[string]int, len(counts))
	for stage, count := range counts {
		out[string(stage)] = count
	}
	return out
}

func departmentCountsJSON(counts map[registry.Department]int) map[string]int {
	out := make(map[string]int, len(counts))
	for department, count := range counts {
		out[string(department)] = count
	}
	return out
}

// buildStageCountRows orders buckets by the fixed stage order, skipping
// empty buckets the way the original report charts only present groups.
func buildStageCountRows(counts map[registry.Stage]int) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, stage := range registry.AllStages() {
		if count := counts[stage]; count > 0 {
			rows = append(rows, []string{string(stage), strconv.Itoa(count)})
		}
	}
	if count := counts[""]; count > 0 {
		rows = append(rows, []string{"-", strconv.Itoa(count)})
	}
	return rows
}

func buildDepartmentCountRows(counts map[registry.Department]int) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, department := range registry.AllDepartments() {
		if count := counts[department]; count > 0 {
			rows = append(rows, []string{string(department), strconv.Itoa(count)})
		}
	}
	if count := counts[""]; count > 0 {
		rows = append(rows, []string{"-", strconv.Itoa(count)})
	}
	return rows
}
