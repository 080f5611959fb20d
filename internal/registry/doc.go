// Package registry persists manuscript records in SQLite and exposes the
// create/update/remove/list operations the CLI is built on.
//
// The Store manages the database connection, schema initialization, the
// single-session lock file, and the uniqueness guarantee on manuscript
// numbers. Stage and department vocabularies are enforced when records are
// written; rows that predate enforcement still read back and list normally.
//
// Treat this package as the single source of truth for record semantics; when
// you add columns, update schema.sql and bump schemaVersion.
package registry
