package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/steward/pkg/cmd"
	"github.com/pseudomuto/steward/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(context.Background),
		fx.Supply(
			os.Args,
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		config.Module,
		cmd.Module,
	)

	if err := app.Err(); err != nil {
		slog.Error("Failed to start steward", "err", err)
		os.Exit(1)
	}

	app.Run()
}
