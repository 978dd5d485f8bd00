package cmd

import (
	"github.com/pseudomuto/steward/pkg/config"
	"github.com/urfave/cli/v3"
)

// dataset groups the commands working on dataset manifests.
func dataset(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "dataset",
		Usage: "Work with dataset manifests",
		Commands: []*cli.Command{
			annotateCmd(cfg),
			generateCmd(cfg),
		},
	}
}
