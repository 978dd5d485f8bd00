package annotate

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/category"
	"github.com/pseudomuto/steward/pkg/manifest"
	"github.com/pseudomuto/steward/pkg/ui"
)

type (
	// Annotator runs an interactive annotation session over a manifest file.
	Annotator struct {
		Lister   category.Lister
		Prompter CategoryPrompter
		Out      *ui.Printer
	}

	// Options control a single annotation session.
	Options struct {
		// File is the manifest to annotate; it is rewritten in place
		File string

		// ResourceType is the taxonomy resource holding the valid categories
		ResourceType string

		// ServerURL is only used to point the operator at the visualizer
		ServerURL string

		AnnotateAll bool
		Validate    bool
	}
)

// Run loads the manifest, walks the operator through every member missing
// categories, and writes the manifest back once the walk ends (completed or
// quit). Errors raised before the write leave the file untouched.
func (a *Annotator) Run(ctx context.Context, opts Options) (*Result, error) {
	a.Out.Success(
		"For reference, open the %s visualizer at either:\n    %s\n    %s\n",
		opts.ResourceType,
		category.VisualizeURL(opts.ServerURL, opts.ResourceType, "graphs"),
		category.VisualizeURL(opts.ServerURL, opts.ResourceType, "text"),
	)

	if info, err := os.Stat(opts.File); err == nil && info.IsDir() {
		return nil, errors.Errorf("cannot annotate directory %s, pass a single manifest file", opts.File)
	}

	datasets, err := manifest.Load(opts.File)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded manifest", "file", opts.File, "datasets", len(datasets))

	var valid []string
	if opts.Validate {
		valid, err = a.Lister.ListKeys(ctx, opts.ResourceType)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch valid %s keys", opts.ResourceType)
		}
		slog.Debug("Fetched valid categories", "resource_type", opts.ResourceType, "count", len(valid))
	}

	walker := &Walker{
		Prompter:    a.Prompter,
		Out:         a.Out,
		Valid:       valid,
		Validate:    opts.Validate,
		AnnotateAll: opts.AnnotateAll,
	}

	result, err := walker.Walk(datasets)
	if err != nil {
		return nil, err
	}

	// Unchecked answers are written as typed; point out the ones the next
	// load will reject.
	for i := range result.Datasets {
		if err := result.Datasets[i].Validate(); err != nil {
			a.Out.Error("Warning: %v (the manifest will not load until this is fixed)", err)
		}
	}

	if err := manifest.Write(opts.File, result.Datasets); err != nil {
		return nil, err
	}

	if result.Aborted {
		a.Out.Success("Annotation stopped, progress saved to %s", opts.File)
	} else {
		a.Out.Success("Annotation complete, saved to %s", opts.File)
	}

	return result, nil
}
