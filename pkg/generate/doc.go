// Package generate writes a boilerplate dataset manifest from a live database.
//
// Every table becomes a collection and every column a field with an empty
// list of data categories, ready for annotation:
//
//	g := &generate.Generator{Out: ui.New(os.Stdout, true)}
//
//	_, err := g.Run(ctx, generate.Options{
//		URL:  "postgres://localhost:5432/app",
//		File: ".steward/dataset.yml",
//	})
//
// By default one dataset is produced per schema. With PerDatabase set, all
// collections are wrapped in a single dataset named after the database.
package generate
