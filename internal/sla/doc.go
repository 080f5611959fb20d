// Package sla derives per-stage timing status for manuscript records.
//
// Compute is a pure function over the stored stage-entry date, the SLA
// allowance, and a caller-supplied reference date. Callers re-derive on every
// read; nothing here is cached or persisted.
package sla
