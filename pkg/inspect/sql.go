package inspect

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/utils"
)

type (
	// queries holds the catalog queries of a database/sql engine.
	queries struct {
		schemas string
		tables  func(schema string) (string, []any)
		columns func(schema, table string) (string, []any)
	}

	sqlCatalog struct {
		db       *sql.DB
		dialect  Dialect
		database string
		queries  queries
	}
)

var postgresQueries = queries{
	schemas: `
		SELECT nspname
		FROM pg_catalog.pg_namespace
		WHERE nspname NOT LIKE 'pg\_%'
		ORDER BY nspname`,
	tables: func(schema string) (string, []any) {
		return `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = $1
			  AND table_type = 'BASE TABLE'
			ORDER BY table_name`, []any{schema}
	},
	columns: func(schema, table string) (string, []any) {
		return `
			SELECT column_name
			FROM information_schema.columns
			WHERE table_schema = $1
			  AND table_name = $2
			ORDER BY ordinal_position`, []any{schema, table}
	},
}

var mysqlQueries = queries{
	schemas: `
		SELECT schema_name
		FROM information_schema.schemata
		ORDER BY schema_name`,
	tables: func(schema string) (string, []any) {
		return `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = ?
			  AND table_type = 'BASE TABLE'
			ORDER BY table_name`, []any{schema}
	},
	columns: func(schema, table string) (string, []any) {
		return `
			SELECT column_name
			FROM information_schema.columns
			WHERE table_schema = ?
			  AND table_name = ?
			ORDER BY ordinal_position`, []any{schema, table}
	},
}

// SQLite has no information_schema. Attached databases act as schemas and
// each one carries its own sqlite_master table.
var sqliteQueries = queries{
	schemas: `
		SELECT name
		FROM pragma_database_list
		WHERE name <> 'temp'
		ORDER BY seq`,
	tables: func(schema string) (string, []any) {
		return `
			SELECT name
			FROM ` + utils.QuoteQualifiedName(schema, "sqlite_master") + `
			WHERE type = 'table'
			  AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
			ORDER BY name`, nil
	},
	columns: func(schema, table string) (string, []any) {
		return `
			SELECT name
			FROM pragma_table_info(?, ?)
			ORDER BY cid`, []any{table, schema}
	},
}

// newSQLCatalog pings db and wraps it. db is closed when the ping fails.
func newSQLCatalog(ctx context.Context, db *sql.DB, dialect Dialect, database string, q queries) (*sqlCatalog, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqlCatalog{
		db:       db,
		dialect:  dialect,
		database: database,
		queries:  q,
	}, nil
}

func (c *sqlCatalog) Dialect() Dialect { return c.dialect }
func (c *sqlCatalog) Database() string { return c.database }
func (c *sqlCatalog) Close() error     { return c.db.Close() }

func (c *sqlCatalog) Schemas(ctx context.Context) ([]string, error) {
	return c.names(ctx, c.queries.schemas)
}

func (c *sqlCatalog) Tables(ctx context.Context, schema string) ([]string, error) {
	query, args := c.queries.tables(schema)
	return c.names(ctx, query, args...)
}

func (c *sqlCatalog) Columns(ctx context.Context, schema, table string) ([]string, error) {
	query, args := c.queries.columns(schema, table)
	return c.names(ctx, query, args...)
}

// names runs a query returning a single string column.
func (c *sqlCatalog) names(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query failed")
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return names, nil
}
