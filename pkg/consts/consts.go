package consts

import (
	"os"
	"time"
)

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)

const (
	// DefaultConfigFile is the config file looked up in the working directory
	DefaultConfigFile = "steward.yaml"

	// DefaultServerURL is the address of the policy server listing taxonomy resources
	DefaultServerURL = "http://localhost:8080"

	// DefaultRequestTimeout bounds each call made to the policy server
	DefaultRequestTimeout = 30 * time.Second

	// DefaultResourceType is the taxonomy resource whose keys are valid data categories
	DefaultResourceType = "data_category"

	// DefaultOrganizationKey is the organization assigned to datasets that don't name one
	DefaultOrganizationKey = "default_organization"

	// DefaultDataQualifier is the qualifier assigned to datasets that don't name one
	DefaultDataQualifier = "aggregated.anonymized.unlinked_pseudonymized.pseudonymized.identified"

	// ManifestSection is the top-level key holding datasets in a manifest file
	ManifestSection = "dataset"
)
