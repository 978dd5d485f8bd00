package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/consts"
	. "github.com/pseudomuto/steward/pkg/manifest"
	"github.com/pseudomuto/steward/pkg/model"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		datasets, err := Load(filepath.Join("testdata", "sample.yml"))
		require.NoError(t, err)
		require.Len(t, datasets, 1)

		ds := datasets[0]
		require.Equal(t, "users_db", ds.FidesKey)
		require.Equal(t, []string{"user"}, ds.DataCategories)
		require.Equal(t, consts.DefaultOrganizationKey, ds.OrganizationFidesKey)
		require.Equal(t, consts.DefaultDataQualifier, ds.DataQualifier)
		require.Len(t, ds.Collections, 1)
		require.Len(t, ds.Collections[0].Fields, 2)
		require.Equal(t, []string{"system.operations"}, ds.Collections[0].Fields[0].DataCategories)
		require.Empty(t, ds.Collections[0].Fields[1].DataCategories)
	})

	t.Run("directory", func(t *testing.T) {
		datasets, err := Load(filepath.Join("testdata", "multi"))
		require.NoError(t, err)
		require.Len(t, datasets, 2)
		require.Equal(t, "billing", datasets[0].FidesKey)
		require.Equal(t, "crm", datasets[1].FidesKey)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope.yml"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to access manifest")
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		require.Contains(t, err.Error(), "no manifest files found")
	})

	formatErrors := map[string]string{
		"missing section": "data_category:\n  - fides_key: user\n",
		"empty file":      "",
		"not a mapping":   "- one\n- two\n",
		"bad yaml":        "dataset: [\n",
		"wrong shape":     "dataset:\n  - fides_key: [1, 2]\n",
		"policy failure":  "dataset:\n  - fides_key: users db\n    collections: []\n",
	}

	for name, content := range formatErrors {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dataset.yml")
			require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))

			_, err := Load(path)
			require.Error(t, err)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "expected FormatError, got %v", err)
			require.Equal(t, path, formatErr.Path)
		})
	}
}

func TestWrite(t *testing.T) {
	datasets := []model.Dataset{
		{
			FidesKey:             "public",
			OrganizationFidesKey: consts.DefaultOrganizationKey,
			Name:                 "public",
			Description:          "Public schema",
			DataQualifier:        consts.DefaultDataQualifier,
			Collections: []model.Collection{
				{
					Name:        "public.users",
					Description: "Users table",
					Fields: []model.Field{
						{Name: "id", Description: "Identifier", DataCategories: []string{}},
						{Name: "email", Description: "Email", DataCategories: []string{"user.contact.email"}},
					},
				},
			},
		},
	}

	t.Run("writes a loadable manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "dataset.yml")
		require.NoError(t, Write(path, datasets))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(content), "dataset:\n"))
		require.Contains(t, string(content), "data_categories: []")

		loaded, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, datasets, loaded)
	})

	t.Run("replaces existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.yml")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 1000)), consts.ModeFile))

		require.NoError(t, Write(path, datasets))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotContains(t, string(content), "stale")

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1, "temporary files should be cleaned up")
	})

	t.Run("empty list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.yml")
		require.NoError(t, Write(path, nil))

		loaded, err := Load(path)
		require.NoError(t, err)
		require.Empty(t, loaded)
	})
}

func TestDecode(t *testing.T) {
	datasets, err := Decode(strings.NewReader("dataset:\n  - fides_key: a\n    collections: []\n"), "inline")
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	_, err = Decode(strings.NewReader("dataset: {"), "inline")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid manifest inline")
}
