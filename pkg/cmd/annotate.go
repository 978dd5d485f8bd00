package cmd

import (
	"context"
	"log/slog"

	"github.com/pseudomuto/steward/pkg/annotate"
	"github.com/pseudomuto/steward/pkg/category"
	"github.com/pseudomuto/steward/pkg/config"
	"github.com/urfave/cli/v3"
)

// annotateCmd returns the command that walks an operator through labelling a
// manifest with data categories.
//
// Every field without categories is prompted for. With --all, datasets and
// collections without categories are prompted for too. Answers are checked
// against the taxonomy resources listed by the policy server (or by the
// --categories-file taxonomy) unless --no-validate is passed.
//
// At any prompt:
//   - s: leave the member without categories and move on
//   - q: quit after confirmation, keeping the answers given so far
//
// The manifest is rewritten once, when the session ends.
//
// Example usage:
//
//	steward dataset annotate .steward/dataset.yml
//	steward dataset annotate --all --server-url http://fides:8080 dataset.yml
//	steward dataset annotate --categories-file taxonomy.yml dataset.yml
func annotateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "annotate",
		Usage:     "Interactively label dataset fields with data categories",
		ArgsUsage: "<manifest>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "resource-type",
				Aliases: []string{"r"},
				Usage:   "the taxonomy resource type holding the valid labels",
				Value:   cfg.Annotate.ResourceType,
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "also annotate datasets and collections",
			},
			&cli.BoolFlag{
				Name:  "no-validate",
				Usage: "accept answers as typed, without checking the key grammar or the taxonomy",
				Value: !cfg.Annotate.ShouldValidate(),
			},
			&cli.StringFlag{
				Name:    "server-url",
				Aliases: []string{"s"},
				Usage:   "the policy server listing the valid labels",
				Sources: cli.EnvVars("STEWARD_SERVER_URL"),
				Value:   cfg.ServerURL,
			},
			&cli.StringFlag{
				Name:  "categories-file",
				Usage: "read the valid labels from a local taxonomy file instead of the server",
				Value: cfg.Annotate.CategoriesFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, err := manifestArg(cmd)
			if err != nil {
				return err
			}

			out := printer(cmd)
			annotator := &annotate.Annotator{
				Lister:   lister(cfg, cmd),
				Prompter: annotate.NewPrompter(reader(cmd), out),
				Out:      out,
			}

			result, err := annotator.Run(ctx, annotate.Options{
				File:         file,
				ResourceType: cmd.String("resource-type"),
				ServerURL:    cmd.String("server-url"),
				AnnotateAll:  cmd.Bool("all"),
				Validate:     !cmd.Bool("no-validate"),
			})
			if err != nil {
				return err
			}

			slog.Debug("Annotation finished", "file", file, "aborted", result.Aborted)
			return nil
		},
	}
}

func lister(cfg *config.Config, cmd *cli.Command) category.Lister {
	if path := cmd.String("categories-file"); path != "" {
		return &category.FileLister{Path: path}
	}

	return category.NewHTTPLister(cmd.String("server-url"), cfg.RequestTimeout)
}
