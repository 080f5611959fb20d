package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"scriptorium/internal/review"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type recordJSON struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	Title         string `json:"title,omitempty"`
	Stage         string `json:"stage,omitempty"`
	Department    string `json:"department,omitempty"`
	Assignee      string `json:"assignee,omitempty"`
	EnteredDate   string `json:"entered_stage_date,omitempty"`
	SLADays       int    `json:"sla_days"`
	DaysInStage   int    `json:"days_in_stage"`
	DaysRemaining int    `json:"days_remaining"`
	Status        string `json:"status"`
}

func rowToJSON(row review.Row) recordJSON {
	return recordJSON{
		ID:            row.Record.ID,
		Number:        row.Record.Number,
		Title:         row.Record.Title,
		Stage:         string(row.Record.Stage),
		Department:    string(row.Record.Department),
		Assignee:      row.Record.Assignee,
		EnteredDate:   row.Record.EnteredDate,
		SLADays:       row.Record.SLADays,
		DaysInStage:   row.Derived.DaysInStage,
		DaysRemaining: row.Derived.DaysRemaining,
		Status:        string(row.Derived.Status),
	}
}

func rowsToJSON(rows []review.Row) []recordJSON {
	out := make([]recordJSON, len(rows))
	for i, row := range rows {
		out[i] = rowToJSON(row)
	}
	return out
}
