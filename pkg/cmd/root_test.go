package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/steward/pkg/cmd/testutil"
	"github.com/pseudomuto/steward/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	app := NewApp("1.2.3", dataset(config.Default()))
	require.Equal(t, "steward", app.Name)
	require.Equal(t, "1.2.3", app.Version)
	require.Len(t, app.Commands, 1)

	ds := app.Commands[0]
	require.Equal(t, "dataset", ds.Name)
	require.Equal(t, "annotate", ds.Commands[0].Name)
	require.Equal(t, "generate", ds.Commands[1].Name)
}

func TestNewApp_Dir(t *testing.T) {
	t.Chdir(t.TempDir())

	ws := testutil.NewWorkspace(t)
	ws.SQLiteDatabase("shop.db", shopSchema...)

	var out bytes.Buffer
	app := NewApp("test", dataset(config.Default()))
	app.Writer = &out

	err := app.Run(context.Background(), []string{
		"steward", "--dir", ws.Dir, "--no-color",
		"dataset", "generate", "--per-database", "--url", "sqlite://shop.db", "shop.yml",
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Successfully generated dataset manifest: shop.yml")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(ws.Dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	require.Equal(t, want, got)

	datasets := testutil.RequireManifest(t, ws.Path("shop.yml"))
	require.Equal(t, "shop", datasets[0].FidesKey)
}

func TestNewApp_InvalidDir(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	app := NewApp("test", dataset(config.Default()))
	app.Writer = &out

	err := app.Run(context.Background(), []string{
		"steward", "--dir", filepath.Join(t.TempDir(), "missing"),
		"dataset", "generate", "--url", "sqlite://shop.db", "shop.yml",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to change directory")
}
