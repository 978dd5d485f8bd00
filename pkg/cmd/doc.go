// Package cmd provides the CLI commands for the steward tool.
//
// # Available Commands
//
//   - dataset annotate: Interactively label a manifest with data categories
//   - dataset generate: Write a boilerplate manifest from a live database
//
// # Command Structure
//
// Each command is implemented as a function returning a *cli.Command,
// following the urfave/cli/v3 pattern. Commands are provided to the fx
// application through the "commands" value group (see Module) and run by
// Run inside the application's start hook.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify the working directory (defaults to current directory)
//   - --verbose: Enable debug logging
//   - --no-color: Disable coloured output
//   - --help, -h: Display command help
package cmd
