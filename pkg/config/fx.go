package config

import (
	"os"

	"github.com/pseudomuto/steward/pkg/consts"
	"go.uber.org/fx"
)

// EnvConfigFile names the environment variable overriding the config file path.
const EnvConfigFile = "STEWARD_CONFIG"

var Module = fx.Module("config", fx.Provide(
	// Loads steward.yaml (or $STEWARD_CONFIG) when present. A missing file is
	// not an error; every setting has a default.
	func() (*Config, error) {
		path := os.Getenv(EnvConfigFile)
		if path == "" {
			path = consts.DefaultConfigFile
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(path)
	},
))
