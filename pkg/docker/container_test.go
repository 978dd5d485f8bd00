package docker_test

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/pseudomuto/steward/pkg/docker"
	"github.com/stretchr/testify/require"
)

// skipIfNoDocker skips the test if Docker is not available
func skipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Docker tests in short mode")
	}

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

func TestContainer_StartStop(t *testing.T) {
	skipIfNoDocker(t)

	container := docker.New(docker.Options{Database: "analytics"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	defer func() { _ = container.Stop(ctx) }()

	require.NoError(t, container.Start(ctx))
	require.True(t, container.IsRunning())
	require.Error(t, container.Start(ctx), "starting twice should fail")

	dsn, err := container.DSN(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dsn, "clickhouse://"), dsn)

	require.NoError(t, container.Exec(ctx,
		"CREATE TABLE analytics.events (id UInt64) ENGINE = MergeTree ORDER BY id",
	))
	require.Error(t, container.Exec(ctx, "NOT SQL"))

	require.NoError(t, container.Stop(ctx))
	require.False(t, container.IsRunning())
}

func TestContainer_NotRunning(t *testing.T) {
	container := docker.New(docker.Options{})
	ctx := context.Background()

	require.False(t, container.IsRunning())
	require.NoError(t, container.Stop(ctx))

	_, err := container.DSN(ctx)
	require.EqualError(t, err, "container is not running")

	err = container.Exec(ctx, "SELECT 1")
	require.EqualError(t, err, "container is not running")
}
