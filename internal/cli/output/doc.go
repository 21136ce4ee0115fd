// Package output provides output formatting for atlascfg.
//
// Supported formats:
//
//   - table: aligned columns for humans (default)
//   - json: indented JSON
//   - yaml: YAML
//
// Unset optional values are omitted from JSON and YAML and shown as "-"
// in tables.
package output
