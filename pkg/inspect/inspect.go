package inspect

import (
	"context"
	"log/slog"
	"slices"
)

// Dialect names a database engine family.
type Dialect string

const (
	Postgres   Dialect = "postgresql"
	MySQL      Dialect = "mysql"
	SQLite     Dialect = "sqlite"
	ClickHouse Dialect = "clickhouse"
)

type (
	// Catalog is a read-only view of the schemas, tables and columns of a
	// single database.
	Catalog interface {
		Dialect() Dialect

		// Database is the name of the database the catalog is connected to
		Database() string

		Schemas(ctx context.Context) ([]string, error)
		Tables(ctx context.Context, schema string) ([]string, error)

		// Columns returns column names in their declared order
		Columns(ctx context.Context, schema, table string) ([]string, error)

		Close() error
	}

	// Tables maps each schema to its tables, keyed by qualified name
	// ("schema.table"), and each table to its column names.
	Tables map[string]map[string][]string
)

// ExcludedSchemas returns the system schemas never inspected for dialect.
func ExcludedSchemas(dialect Dialect) []string {
	excluded := []string{"information_schema"}

	switch dialect {
	case MySQL:
		excluded = append(excluded, "mysql", "performance_schema", "sys")
	case ClickHouse:
		excluded = append(excluded, "INFORMATION_SCHEMA", "system")
	}

	return excluded
}

// Inspect lists every column of every table in the catalog. Schemas returned
// by ExcludedSchemas and any schema named in ignore are skipped. A schema
// without tables is kept with an empty table map.
//
// Failures are returned as *IntrospectionError. Nothing is retried.
func Inspect(ctx context.Context, c Catalog, ignore ...string) (Tables, error) {
	excluded := append(ExcludedSchemas(c.Dialect()), ignore...)

	schemas, err := c.Schemas(ctx)
	if err != nil {
		return nil, &IntrospectionError{Op: "list schemas", Err: err}
	}

	tables := make(Tables, len(schemas))
	for _, schema := range schemas {
		if slices.Contains(excluded, schema) {
			slog.Debug("Skipping schema", "schema", schema)
			continue
		}

		names, err := c.Tables(ctx, schema)
		if err != nil {
			return nil, &IntrospectionError{Op: "list tables", Schema: schema, Err: err}
		}

		collections := make(map[string][]string, len(names))
		for _, table := range names {
			columns, err := c.Columns(ctx, schema, table)
			if err != nil {
				return nil, &IntrospectionError{Op: "list columns", Schema: schema, Table: table, Err: err}
			}
			collections[schema+"."+table] = columns
		}

		slog.Debug("Inspected schema", "schema", schema, "tables", len(collections))
		tables[schema] = collections
	}

	return tables, nil
}
