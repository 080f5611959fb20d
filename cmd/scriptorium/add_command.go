package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
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
		Use:   "add",
		Short: "Add a manuscript to the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			stageValue, ok := registry.ParseStage(stage)
			if !ok {
				return fmt.Errorf("unknown stage %q (expected one of: %s)", stage, stageTokens())
			}
			departmentValue, ok := registry.ParseDepartment(department)
			if !ok {
				return fmt.Errorf("unknown department %q (expected one of: %s)", department, departmentTokens())
			}

			if entered == "" {
				entered = time.Now().Format(registry.EnteredDateLayout)
			}
			if !cmd.Flags().Changed("sla") {
				slaDays = cfg.SLA.DefaultDays
			}

			rec := &registry.Record{
				Number:      number,
				Title:       title,
				Stage:       stageValue,
				Department:  departmentValue,
				Assignee:    assignee,
				EnteredDate: entered,
				SLADays:     slaDays,
			}

			return ctx.withStore(func(store *registry.Store) error {
				created, err := store.Create(cmd.Context(), rec)
				if err != nil {
					if errors.Is(err, registry.ErrDuplicateNumber) {
						return fmt.Errorf("manuscript number %q already exists; change the number or use `scriptorium update`", rec.Number)
					}
					return err
				}
				ctx.ensureLogger().Info("manuscript added",
					"id", created.ID,
					"number", created.Number,
					"stage", string(created.Stage),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Added manuscript %s (id %d)\n", created.Number, created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Manuscript number (required)")
	cmd.Flags().StringVar(&title, "title", "", "Manuscript title")
	cmd.Flags().StringVar(&stage, "stage", string(registry.StageReceipt), "Current workflow stage: "+stageTokens())
	cmd.Flags().StringVar(&department, "department", string(registry.DepartmentRestoration), "Owning department: "+departmentTokens())
	cmd.Flags().StringVar(&assignee, "assignee", "", "Current assignee")
	cmd.Flags().StringVar(&entered, "entered", "", "Date the manuscript entered its current stage (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&slaDays, "sla", 0, "SLA allowance in days for the current stage (default from config)")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
