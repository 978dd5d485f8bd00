package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	chcontainer "github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultClickHouseVersion is the server image tag used when none is set
	DefaultClickHouseVersion = "25.7"

	clickHouseHTTPPort = "8123/tcp"
)

type (
	// Options configures a sandbox ClickHouse server.
	Options struct {
		// Version is the clickhouse-server image tag (default: DefaultClickHouseVersion)
		Version string

		// Database is created on start and used by DSN (default: "default")
		Database string
	}

	// Container manages a throwaway ClickHouse server used to exercise
	// catalog introspection against a real engine.
	Container struct {
		options   Options
		container *chcontainer.ClickHouseContainer
	}
)

// New returns a Container for opts. Nothing is started until Start is called.
//
// Example:
//
//	container := docker.New(docker.Options{Database: "analytics"})
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	dsn, err := container.DSN(ctx)
func New(opts Options) *Container {
	if opts.Version == "" {
		opts.Version = DefaultClickHouseVersion
	}
	if opts.Database == "" {
		opts.Database = "default"
	}

	return &Container{options: opts}
}

// Start runs the server and waits until its HTTP interface answers.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	container, err := chcontainer.Run(ctx,
		fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", c.options.Version),
		chcontainer.WithUsername("default"),
		chcontainer.WithPassword(""),
		chcontainer.WithDatabase(c.options.Database),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(nat.Port(clickHouseHTTPPort)).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = container
	return nil
}

// Stop terminates the server. Stopping a container that isn't running is a
// no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	return errors.Wrap(err, "failed to stop ClickHouse container")
}

// DSN returns a clickhouse:// URL for the running server.
func (c *Container) DSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// Exec runs each statement in order against the running server. It is meant
// for seeding fixtures.
func (c *Container) Exec(ctx context.Context, statements ...string) error {
	dsn, err := c.DSN(ctx)
	if err != nil {
		return err
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return errors.Wrap(err, "invalid connection string")
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return errors.Wrap(err, "failed to connect to ClickHouse container")
	}
	defer func() { _ = conn.Close() }()

	for _, stmt := range statements {
		if err := conn.Exec(ctx, stmt); err != nil {
			return errors.Wrapf(err, "failed to execute: %s", stmt)
		}
	}

	return nil
}

// IsRunning reports whether Start succeeded and Stop hasn't been called.
func (c *Container) IsRunning() bool {
	return c.container != nil
}
