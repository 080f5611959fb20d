package review

import (
	"scriptorium/internal/registry"
	"scriptorium/internal/sla"
)

// Totals holds the KPI counters computed over a filtered view.
type Totals struct {
	Total  int
	OnTime int
	Late   int
}

// KPIs counts rows and their verdicts over the filtered view, not the
// whole store.
func KPIs(rows []Row) Totals {
	totals := Totals{Total: len(rows)}
	for _, row := range rows {
		switch row.Derived.Status {
		case sla.StatusLate:
			totals.Late++
		default:
			totals.OnTime++
		}
	}
	return totals
}

// CountByStage groups the filtered rows by stage.
func CountByStage(rows []Row) map[registry.Stage]int {
	counts := make(map[registry.Stage]int)
	for _, row := range rows {
		counts[row.Record.Stage]++
	}
	return counts
}

// CountByDepartment groups the filtered rows by department.
func CountByDepartment(rows []Row) map[registry.Department]int {
	counts := make(map[registry.Department]int)
	for _, row := range rows {
		counts[row.Record.Department]++
	}
	return counts
}
