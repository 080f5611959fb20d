// Package config loads and validates Scriptorium's TOML configuration.
//
// Load resolves the config path (explicit flag, then the user config
// directory, then a project-local scriptorium.toml), applies defaults for
// missing keys, expands ~ in paths, and validates the result. A missing file
// is not an error; defaults carry the tool.
package config
