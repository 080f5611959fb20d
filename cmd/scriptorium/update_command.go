package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		number     string
		title      string
		stage      string
		department string
		assignee   string
		entered    string
		slaDays    int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing manuscript",
		Long: `Update fields of an existing manuscript.

Only flags that are provided change the record; everything else is
preserved. Moving a manuscript to a new stage does not reset the
entered-stage date automatically; pass --entered alongside --stage when the
move happens today.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *registry.Store) error {
				rec, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if rec == nil {
					return fmt.Errorf("manuscript id %d: not found", id)
				}

				if cmd.Flags().Changed("number") {
					rec.Number = number
				}
				if cmd.Flags().Changed("title") {
					rec.Title = title
				}
				if cmd.Flags().Changed("stage") {
					stageValue, ok := registry.ParseStage(stage)
					if !ok {
						return fmt.Errorf("unknown stage %q (expected one of: %s)", stage, stageTokens())
					}
					rec.Stage = stageValue
				}
				if cmd.Flags().Changed("department") {
					departmentValue, ok := registry.ParseDepartment(department)
					if !ok {
						return fmt.Errorf("unknown department %q (expected one of: %s)", department, departmentTokens())
					}
					rec.Department = departmentValue
				}
				if cmd.Flags().Changed("assignee") {
					rec.Assignee = assignee
				}
				if cmd.Flags().Changed("entered") {
					rec.EnteredDate = entered
				}
				if cmd.Flags().Changed("sla") {
					rec.SLADays = slaDays
				}

				if err := store.Update(cmd.Context(), rec); err != nil {
					if errors.Is(err, registry.ErrDuplicateNumber) {
						return fmt.Errorf("manuscript number %q is used by another record", rec.Number)
					}
					return err
				}
				ctx.ensureLogger().Info("manuscript updated",
					"id", rec.ID,
					"number", rec.Number,
					"stage", string(rec.Stage),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Updated manuscript %s (id %d)\n", rec.Number, rec.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Manuscript number")
	cmd.Flags().StringVar(&title, "title", "", "Manuscript title")
	cmd.Flags().StringVar(&stage, "stage", "", "Current workflow stage: "+stageTokens())
	cmd.Flags().StringVar(&department, "department", "", "Owning department: "+departmentTokens())
	cmd.Flags().StringVar(&assignee, "assignee", "", "Current assignee")
	cmd.Flags().StringVar(&entered, "entered", "", "Date the manuscript entered its current stage (YYYY-MM-DD)")
	cmd.Flags().IntVar(&slaDays, "sla", 0, "SLA allowance in days for the current stage")

	return cmd
}
