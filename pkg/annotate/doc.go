// Package annotate implements the interactive data category annotator.
//
// The annotator walks a manifest depth first (dataset, collection, field) and
// asks the operator for the categories of every member that has none. Fields
// are always visited; datasets and collections only when AnnotateAll is set.
// Members that already carry categories are never changed.
//
// Operator answers:
//
//	user.contact.email, system.operations   set these categories
//	s                                       skip this member
//	q                                       quit (after confirmation)
//
// Quitting is cooperative: the walker stops where it is, keeps everything
// collected so far, and the manifest is still written. Invalid answers are
// reported and the same question is asked again.
//
// Example:
//
//	out := ui.New(os.Stdout, ui.IsTerminal(os.Stdout))
//	a := &annotate.Annotator{
//		Lister:   category.NewHTTPLister("http://localhost:8080", 30*time.Second),
//		Prompter: annotate.NewPrompter(os.Stdin, out),
//		Out:      out,
//	}
//
//	_, err := a.Run(ctx, annotate.Options{
//		File:         "dataset.yml",
//		ResourceType: "data_category",
//		ServerURL:    "http://localhost:8080",
//		Validate:     true,
//	})
package annotate
