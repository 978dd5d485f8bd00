package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// Annotate holds defaults for the interactive annotator.
	Annotate struct {
		// ResourceType is the taxonomy resource whose keys are valid labels
		ResourceType string `yaml:"resource_type,omitempty"`

		// Validate controls whether operator input is checked against the taxonomy.
		// A nil value means "not configured" and resolves to true.
		Validate *bool `yaml:"validate,omitempty"`

		// CategoriesFile points at a local taxonomy file used instead of the server
		CategoriesFile string `yaml:"categories_file,omitempty"`
	}

	// Generate holds defaults for the manifest generator.
	Generate struct {
		// IgnoreSchemas lists schemas that are skipped in addition to the system ones
		IgnoreSchemas []string `yaml:"ignore_schemas,omitempty"`

		// PerDatabase wraps every table in a single dataset named after the database
		PerDatabase bool `yaml:"per_database,omitempty"`
	}

	// Config represents the steward configuration file.
	Config struct {
		// ServerURL is the policy server used to list taxonomy resources
		ServerURL string `yaml:"server_url"`

		// RequestTimeout bounds each request made to the policy server
		RequestTimeout time.Duration `yaml:"request_timeout"`

		Annotate Annotate `yaml:"annotate"`
		Generate Generate `yaml:"generate"`
	}
)

// ShouldValidate reports whether annotation input is validated. Validation is
// on unless the config explicitly turns it off.
func (a Annotate) ShouldValidate() bool {
	return a.Validate == nil || *a.Validate
}

// Default returns a configuration populated with default values. It is used
// when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Empty values are replaced with their defaults:
//   - server_url: consts.DefaultServerURL
//   - request_timeout: consts.DefaultRequestTimeout
//   - annotate.resource_type: consts.DefaultResourceType
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("server_url: http://fides:8080"))
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(cfg.ServerURL)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

func (c *Config) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = consts.DefaultServerURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = consts.DefaultRequestTimeout
	}
	if c.Annotate.ResourceType == "" {
		c.Annotate.ResourceType = consts.DefaultResourceType
	}
}
