// Package command provides CLI command definitions for atlascfg.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, logger setup, version
//   - config.go: Configuration subcommand group
//   - view.go: Table views of decoded configuration
//
// Commands follow a consistent pattern of parsing flags,
// loading the config file, and formatting output.
package command
