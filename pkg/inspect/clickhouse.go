package inspect

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
)

// clickHouseCatalog reads ClickHouse system tables over the native protocol.
// Databases play the role of schemas.
type clickHouseCatalog struct {
	conn     driver.Conn
	database string
}

func (c *clickHouseCatalog) Dialect() Dialect { return ClickHouse }
func (c *clickHouseCatalog) Database() string { return c.database }
func (c *clickHouseCatalog) Close() error     { return c.conn.Close() }

func (c *clickHouseCatalog) Schemas(ctx context.Context) ([]string, error) {
	return c.names(ctx, `SELECT name FROM system.databases ORDER BY name`)
}

// Tables skips views, dictionaries, temporary tables and the inner tables
// backing materialized views.
func (c *clickHouseCatalog) Tables(ctx context.Context, schema string) ([]string, error) {
	query := `
		SELECT name
		FROM system.tables
		WHERE database = ?
		  AND engine NOT IN ('View', 'MaterializedView', 'LiveView', 'Dictionary')
		  AND is_temporary = 0
		  AND name NOT LIKE '.inner%'
		ORDER BY name
	`

	return c.names(ctx, query, schema)
}

func (c *clickHouseCatalog) Columns(ctx context.Context, schema, table string) ([]string, error) {
	query := `
		SELECT name
		FROM system.columns
		WHERE database = ?
		  AND table = ?
		ORDER BY position
	`

	return c.names(ctx, query, schema, table)
}

func (c *clickHouseCatalog) names(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.conn.Query(ctx, query, args...)
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
