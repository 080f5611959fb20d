// Command scriptorium is the CLI for the manuscript conservation and
// digitization registry: add, list, update, and remove manuscripts, inspect
// SLA status, and export the filtered view as a CSV report.
package main
