package testutil

import (
	"os"
	"testing"

	"github.com/pseudomuto/steward/pkg/manifest"
	"github.com/pseudomuto/steward/pkg/model"
	"github.com/stretchr/testify/require"
)

// RequireManifest loads the manifest at path, failing the test when it is
// missing or invalid.
func RequireManifest(t *testing.T, path string) []model.Dataset {
	t.Helper()

	require.FileExists(t, path, "manifest should exist: %s", path)

	datasets, err := manifest.Load(path)
	require.NoError(t, err, "manifest should be valid: %s", path)

	return datasets
}

// RequireFileUnchanged asserts that the file at path still holds content.
func RequireFileUnchanged(t *testing.T, path, content string) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, content, string(data), "file should not have been modified: %s", path)
}

// RequireNoFile asserts that a file does not exist.
func RequireNoFile(t *testing.T, path string) {
	t.Helper()
	require.NoFileExists(t, path, "File should not exist: %s", path)
}

// RequireFieldCategories asserts the data categories of a field, addressed
// by dataset key, collection name and field name.
func RequireFieldCategories(t *testing.T, datasets []model.Dataset, dataset, collection, field string, expected []string) {
	t.Helper()

	for _, ds := range datasets {
		if ds.FidesKey != dataset {
			continue
		}

		for _, c := range ds.Collections {
			if c.Name != collection {
				continue
			}

			for _, f := range c.Fields {
				if f.Name == field {
					require.Equal(t, expected, f.DataCategories, "%s.%s.%s", dataset, collection, field)
					return
				}
			}
		}
	}

	require.Failf(t, "field not found", "%s.%s.%s", dataset, collection, field)
}
