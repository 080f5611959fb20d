// Package review builds the filtered view model the CLI renders: records
// joined with their derived SLA fields, KPI counters, grouped counts, and
// the CSV report.
//
// Everything operates on an in-memory listing; the registry stays the only
// component that talks to the database.
package review
