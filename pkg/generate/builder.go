package generate

import (
	"maps"
	"slices"

	"github.com/pseudomuto/steward/pkg/inspect"
	"github.com/pseudomuto/steward/pkg/model"
)

const (
	schemaDescription   = "Generated description for schema: "
	tableDescription    = "Generated description for table: "
	columnDescription   = "Generated description for column: "
	databaseDescription = "Generated description for dataset: "
)

// BuildDatasets returns one dataset per schema in tables. Each table becomes a
// collection named after its qualified name, and each column a field without
// data categories. Schemas and tables are sorted by name; columns keep their
// order.
func BuildDatasets(tables inspect.Tables) []model.Dataset {
	datasets := make([]model.Dataset, 0, len(tables))

	for _, schema := range slices.Sorted(maps.Keys(tables)) {
		ds := model.Dataset{
			FidesKey:    schema,
			Name:        schema,
			Description: schemaDescription + schema,
			Collections: buildCollections(tables[schema]),
		}
		ds.ApplyDefaults()

		datasets = append(datasets, ds)
	}

	return datasets
}

// BuildDatabaseDataset wraps collections in a single dataset named after the
// database.
func BuildDatabaseDataset(name string, collections []model.Collection) model.Dataset {
	if collections == nil {
		collections = []model.Collection{}
	}

	ds := model.Dataset{
		FidesKey:    name,
		Name:        name,
		Description: databaseDescription + name,
		Collections: collections,
	}
	ds.ApplyDefaults()

	return ds
}

func buildCollections(tables map[string][]string) []model.Collection {
	collections := make([]model.Collection, 0, len(tables))

	for _, table := range slices.Sorted(maps.Keys(tables)) {
		columns := tables[table]

		fields := make([]model.Field, 0, len(columns))
		for _, column := range columns {
			fields = append(fields, model.Field{
				Name:           column,
				Description:    columnDescription + column,
				DataCategories: []string{},
			})
		}

		collections = append(collections, model.Collection{
			Name:        table,
			Description: tableDescription + table,
			Fields:      fields,
		})
	}

	return collections
}
