// Package docker runs disposable ClickHouse servers through testcontainers.
//
// The containers back the integration tests that exercise catalog
// introspection and manifest generation against a real engine:
//
//	container := docker.New(docker.Options{Database: "analytics"})
//
//	ctx := context.Background()
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	err := container.Exec(ctx,
//		"CREATE TABLE analytics.events (id UInt64, email String) ENGINE = MergeTree ORDER BY id",
//	)
//
//	dsn, _ := container.DSN(ctx)
//	catalog, _ := inspect.Open(ctx, dsn, inspect.Options{})
//
// A Docker daemon must be reachable from the test process.
package docker
