// Package main provides the entry point for atlascfg.
//
// atlascfg reads the Atlas CLI configuration file and provides
// command-line access to:
//
//   - Global settings and named profiles
//   - Validation with typed decode errors
//   - Effective values with MONGODB_ATLAS_* overrides
//   - Watching the file for changes
//
// Usage:
//
//	atlascfg [global flags] config show
//	atlascfg -o json config profiles
//	atlascfg config validate ~/.config/atlascli/config.toml
package main
