package review

import (
	"strings"
	"time"

	"scriptorium/internal/registry"
	"scriptorium/internal/sla"
)

// Criteria describes the optional filters applied to a listing. Categories
// combine with AND; values within a category combine with OR. An empty
// category places no restriction.
type Criteria struct {
	Number      string
	Stages      []registry.Stage
	Departments []registry.Department
	Statuses    []sla.Status
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return c.Number == "" && len(c.Stages) == 0 && len(c.Departments) == 0 && len(c.Statuses) == 0
}

// Row joins a stored record with its derived SLA fields.
type Row struct {
	Record  registry.Record
	Derived sla.Derived
}

// Build derives status for every record against today and returns the rows
// matching the criteria, preserving listing order.
func Build(records []*registry.Record, today time.Time, criteria Criteria) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		derived := sla.Compute(rec.EnteredDate, rec.SLADays, today)
		row := Row{Record: *rec, Derived: derived}
		if matches(row, criteria) {
			rows = append(rows, row)
		}
	}
	return rows
}

func matches(row Row, criteria Criteria) bool {
	if criteria.Number != "" {
		if row.Record.Number == "" || !strings.Contains(row.Record.Number, criteria.Number) {
			return false
		}
	}
	if len(criteria.Stages) > 0 && !containsStage(criteria.Stages, row.Record.Stage) {
		return false
	}
	if len(criteria.Departments) > 0 && !containsDepartment(criteria.Departments, row.Record.Department) {
		return false
	}
	if len(criteria.Statuses) > 0 && !containsStatus(criteria.Statuses, row.Derived.Status) {
		return false
	}
	return true
}

func containsStage(set []registry.Stage, value registry.Stage) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}

func containsDepartment(set []registry.Department, value registry.Department) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}

func containsStatus(set []sla.Status, value sla.Status) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}
