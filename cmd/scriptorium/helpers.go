package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
	"scriptorium/internal/review"
	"scriptorium/internal/sla"
)

// filterFlags carries the shared search/filter flags of list, report, and
// export.
type filterFlags struct {
	number      string
	stages      []string
	departments []string
	statuses    []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.number, "number", "", "Substring match on manuscript number")
	cmd.Flags().StringSliceVar(&f.stages, "stage", nil, "Filter by stage (repeatable): "+stageTokens())
	cmd.Flags().StringSliceVar(&f.departments, "department", nil, "Filter by department (repeatable): "+departmentTokens())
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "Filter by status (repeatable): on-time, late")
}

func (f *filterFlags) criteria() (review.Criteria, error) {
	criteria := review.Criteria{Number: strings.TrimSpace(f.number)}

	for _, raw := range f.stages {
		stage, ok := registry.ParseStage(raw)
		if !ok {
			return review.Criteria{}, fmt.Errorf("unknown stage %q (expected one of: %s)", raw, stageTokens())
		}
		criteria.Stages = append(criteria.Stages, stage)
	}
	for _, raw := range f.departments {
		department, ok := registry.ParseDepartment(raw)
		if !ok {
			return review.Criteria{}, fmt.Errorf("unknown department %q (expected one of: %s)", raw, departmentTokens())
		}
		criteria.Departments = append(criteria.Departments, department)
	}
	for _, raw := range f.statuses {
		status, ok := sla.ParseStatus(raw)
		if !ok {
			return review.Criteria{}, fmt.Errorf("unknown status %q (expected on-time or late)", raw)
		}
		criteria.Statuses = append(criteria.Statuses, status)
	}

	return criteria, nil
}

func stageTokens() string {
	stages := registry.AllStages()
	tokens := make([]string, len(stages))
	for i, stage := range stages {
		tokens[i] = string(stage)
	}
	return strings.Join(tokens, ", ")
}

func departmentTokens() string {
	departments := registry.AllDepartments()
	tokens := make([]string, len(departments))
	for i, department := range departments {
		tokens[i] = string(department)
	}
	return strings.Join(tokens, ", ")
}

func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
