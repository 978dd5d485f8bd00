package generate

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/inspect"
	"github.com/pseudomuto/steward/pkg/manifest"
	"github.com/pseudomuto/steward/pkg/model"
	"github.com/pseudomuto/steward/pkg/ui"
)

type (
	// Opener connects to the database at url. inspect.Open is used when a
	// Generator has none.
	Opener func(ctx context.Context, url string, opts inspect.Options) (inspect.Catalog, error)

	// Generator builds dataset manifests from live databases.
	Generator struct {
		Open Opener
		Out  *ui.Printer
	}

	// Options control a single generation run.
	Options struct {
		// URL is the database connection URL, see inspect.Open
		URL string

		// File is the manifest written; an existing file is replaced
		File string

		// PerDatabase produces a single dataset named after the database
		PerDatabase bool

		// IgnoreSchemas are skipped in addition to the engine's system schemas
		IgnoreSchemas []string

		TLS inspect.Options
	}
)

// Run inspects the database, builds the datasets and writes them to
// opts.File. The connection is closed as soon as inspection ends. Nothing is
// written when any step fails.
func (g *Generator) Run(ctx context.Context, opts Options) ([]model.Dataset, error) {
	open := g.Open
	if open == nil {
		open = inspect.Open
	}

	catalog, err := open(ctx, opts.URL, opts.TLS)
	if err != nil {
		return nil, err
	}

	tables, err := inspect.Inspect(ctx, catalog, opts.IgnoreSchemas...)
	database := catalog.Database()

	if closeErr := catalog.Close(); closeErr != nil {
		slog.Warn("Failed to close database connection", "err", closeErr)
	}

	if err != nil {
		return nil, err
	}

	slog.Debug("Inspected database", "database", database, "schemas", len(tables))

	datasets := BuildDatasets(tables)
	if opts.PerDatabase {
		var collections []model.Collection
		for _, ds := range datasets {
			collections = append(collections, ds.Collections...)
		}
		datasets = []model.Dataset{BuildDatabaseDataset(database, collections)}
	}

	for i := range datasets {
		if err := datasets[i].Validate(); err != nil {
			return nil, errors.Wrap(err, "generated dataset is invalid")
		}
	}

	if err := manifest.Write(opts.File, datasets); err != nil {
		return nil, err
	}

	g.Out.Success("Successfully generated dataset manifest: %s", opts.File)
	return datasets, nil
}
