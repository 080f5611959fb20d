// Package logging builds the slog logger the CLI runs with.
//
// Terminals get a compact console handler; the json format and the log file
// use slog's JSON handler. Every invocation carries a run identifier so
// interleaved sessions in the shared log file stay separable.
package logging
