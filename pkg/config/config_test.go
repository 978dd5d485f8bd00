package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/pseudomuto/steward/pkg/config"
	"github.com/pseudomuto/steward/pkg/consts"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/steward.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Bad duration
		config, err = LoadConfig(strings.NewReader("request_timeout: soon"))
		require.Error(t, err)
		require.Nil(t, config)
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.Equal(t, consts.DefaultServerURL, config.ServerURL)
		require.Equal(t, consts.DefaultRequestTimeout, config.RequestTimeout)
		require.Equal(t, consts.DefaultResourceType, config.Annotate.ResourceType)
		require.True(t, config.Annotate.ShouldValidate())
		require.Empty(t, config.Generate.IgnoreSchemas)
		require.False(t, config.Generate.PerDatabase)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "steward.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")
	})
}

func TestDefault(t *testing.T) {
	config := Default()
	require.Equal(t, consts.DefaultServerURL, config.ServerURL)
	require.Equal(t, consts.DefaultRequestTimeout, config.RequestTimeout)
	require.Equal(t, consts.DefaultResourceType, config.Annotate.ResourceType)
	require.True(t, config.Annotate.ShouldValidate())
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, "http://fides.internal:8080", config.ServerURL)
	require.Equal(t, 5*time.Second, config.RequestTimeout)
	require.Equal(t, "data_use", config.Annotate.ResourceType)
	require.False(t, config.Annotate.ShouldValidate())
	require.Equal(t, "taxonomy.yaml", config.Annotate.CategoriesFile)
	require.Equal(t, []string{"scratch", "staging"}, config.Generate.IgnoreSchemas)
	require.True(t, config.Generate.PerDatabase)
}
