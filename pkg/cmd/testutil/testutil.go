package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/steward/pkg/consts"
	"github.com/stretchr/testify/require"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// Workspace is an isolated directory holding manifests, taxonomy files and
// databases for command tests.
type Workspace struct {
	Dir string
	t   *testing.T
}

// NewWorkspace creates an empty workspace in a temporary directory.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{Dir: t.TempDir(), t: t}
}

// Path returns the absolute path of name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// WriteFile writes content to name, creating parent directories as needed.
func (w *Workspace) WriteFile(name, content string) string {
	w.t.Helper()

	path := w.Path(name)
	require.NoError(w.t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(w.t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return path
}

// WriteTaxonomy writes a taxonomy file listing keys as data_category
// resources.
func (w *Workspace) WriteTaxonomy(name string, keys ...string) string {
	w.t.Helper()

	content := "data_category:\n"
	for _, key := range keys {
		content += "  - fides_key: " + key + "\n"
	}

	return w.WriteFile(name, content)
}

// SQLiteDatabase creates a database file by running each statement in order
// and returns its path.
func (w *Workspace) SQLiteDatabase(name string, statements ...string) string {
	w.t.Helper()

	path := w.Path(name)

	db, err := sql.Open("sqlite", path)
	require.NoError(w.t, err)
	defer func() { _ = db.Close() }()

	for _, stmt := range statements {
		_, err := db.Exec(stmt)
		require.NoError(w.t, err, "failed to execute: %s", stmt)
	}

	return path
}
