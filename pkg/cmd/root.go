package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the steward CLI application with the fx lifecycle. The CLI
// runs in the start hook and the app is shut down with exit code 0 when the
// command succeeds, or 1 when it fails.
//
// Global Flags:
//   - --dir, -d: Working directory (defaults to current directory)
//   - --verbose: Enable debug logging
//   - --no-color: Disable coloured output
//
// Example usage:
//
//	steward dataset generate --url postgres://localhost:5432/app .steward/dataset.yml
//	steward --dir ./policies dataset annotate --all dataset.yml
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := NewApp(p.Version.Version, p.Commands...)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// NewApp returns the root steward command with the global flags.
func NewApp(version string, commands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "steward",
		Usage: "Annotate and generate privacy dataset manifests",
		Description: `steward keeps dataset manifests in sync with your databases. It generates
boilerplate manifests from a live database and walks you through labelling
every field with the data categories of your privacy taxonomy.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the working directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			if err := os.Chdir(cmd.String("dir")); err != nil {
				return ctx, errors.Wrapf(err, "failed to change directory: %s", cmd.String("dir"))
			}

			return ctx, nil
		},
		Commands: commands,
	}
}
