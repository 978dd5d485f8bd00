// Package inspect reads the table and column layout of a live database.
//
// A Catalog is a read-only view of one database connection. Open picks the
// engine from the URL scheme:
//
//	postgres://, postgresql://   PostgreSQL (github.com/lib/pq)
//	mysql://, mariadb://         MySQL and MariaDB (github.com/go-sql-driver/mysql)
//	sqlite://<path>              SQLite files (modernc.org/sqlite)
//	clickhouse://, tcp://        ClickHouse native protocol (clickhouse-go)
//
// A "+driver" suffix on the scheme, as in postgresql+psycopg2://, is ignored.
//
// Inspect walks a Catalog and returns every column of every table, grouped by
// schema, skipping system schemas:
//
//	catalog, err := inspect.Open(ctx, "postgres://localhost:5432/app", inspect.Options{})
//	if err != nil {
//		return err
//	}
//	defer catalog.Close()
//
//	tables, err := inspect.Inspect(ctx, catalog)
//	if err != nil {
//		return err
//	}
//
//	for schema, collections := range tables {
//		for name, columns := range collections {
//			fmt.Println(schema, name, columns) // public public.users [id email]
//		}
//	}
package inspect
