package annotate

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/model"
	"github.com/pseudomuto/steward/pkg/ui"
)

type (
	// Walker visits every dataset, collection and field of a manifest and
	// asks for the categories of members that don't have any.
	Walker struct {
		Prompter CategoryPrompter
		Out      *ui.Printer

		// Valid lists the categories accepted when Validate is set
		Valid    []string
		Validate bool

		// AnnotateAll also prompts for datasets and collections. Fields are
		// always prompted for.
		AnnotateAll bool
	}

	// Result is the outcome of a walk.
	Result struct {
		// Datasets holds every input dataset, annotated or not, in input order
		Datasets []model.Dataset

		// Aborted is set when the operator quit before the walk completed
		Aborted bool
	}
)

// Walk annotates datasets in place, depth first, and returns them all.
//
// When the operator quits, the walk stops immediately: the categories
// collected so far are kept, and members that were not reached are returned
// unchanged. Only non-abort errors are returned as errors.
func (w *Walker) Walk(datasets []model.Dataset) (*Result, error) {
	result := &Result{Datasets: make([]model.Dataset, 0, len(datasets))}

	for i := range datasets {
		err := w.walkDataset(&datasets[i])
		result.Datasets = append(result.Datasets, datasets[i])

		if err == nil {
			continue
		}

		if errors.Is(err, ErrAbort) {
			result.Datasets = append(result.Datasets, datasets[i+1:]...)
			result.Aborted = true
			return result, nil
		}

		return nil, err
	}

	return result, nil
}

func (w *Walker) walkDataset(ds *model.Dataset) error {
	w.Out.Info("\n####\nAnnotating Dataset: [%s]", ds.Name)

	if w.AnnotateAll && !ds.HasCategories() {
		w.Out.Info("Dataset [%s] has no data categories", ds.Name)

		categories, err := w.Prompter.Categories(ds, w.Valid, w.Validate)
		if err != nil {
			return err
		}
		ds.DataCategories = categories
	}

	for i := range ds.Collections {
		if err := w.walkCollection(&ds.Collections[i]); err != nil {
			return err
		}
	}

	return nil
}

func (w *Walker) walkCollection(c *model.Collection) error {
	w.Out.Info("####\nAnnotating Table: [%s]\n", c.Name)

	if w.AnnotateAll && !c.HasCategories() {
		w.Out.Info("Table [%s] has no data categories", c.Name)

		categories, err := w.Prompter.Categories(c, w.Valid, w.Validate)
		if err != nil {
			return err
		}
		c.DataCategories = categories
	}

	for i := range c.Fields {
		field := &c.Fields[i]
		if field.HasCategories() {
			continue
		}

		w.Out.Info("Field [%s.%s] has no data categories\n", c.Name, field.Name)

		categories, err := w.Prompter.Categories(field, w.Valid, w.Validate)
		if err != nil {
			return err
		}

		w.Out.Info("Setting data categories for %s.%s to: [%s]\n", c.Name, field.Name, strings.Join(categories, ", "))
		field.DataCategories = categories
	}

	return nil
}
