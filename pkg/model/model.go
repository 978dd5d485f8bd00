package model

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/consts"
	"github.com/pseudomuto/steward/pkg/fideskey"
)

type (
	// Member is any node of a dataset tree that can carry data categories.
	Member interface {
		// MemberName is the name shown to operators when prompting for the member
		MemberName() string
	}

	// Dataset describes a data source (typically a database or schema) and
	// the collections it owns.
	Dataset struct {
		FidesKey              string            `yaml:"fides_key"`
		OrganizationFidesKey  string            `yaml:"organization_fides_key"`
		Name                  string            `yaml:"name"`
		Description           string            `yaml:"description"`
		Meta                  map[string]string `yaml:"meta,omitempty"`
		DataCategories        []string          `yaml:"data_categories,omitempty"`
		DataQualifier         string            `yaml:"data_qualifier"`
		Retention             string            `yaml:"retention,omitempty"`
		ThirdCountryTransfers []string          `yaml:"third_country_transfers,omitempty"`
		Collections           []Collection      `yaml:"collections"`
	}

	// Collection describes a table (or equivalent) within a Dataset.
	Collection struct {
		Name           string   `yaml:"name"`
		Description    string   `yaml:"description"`
		DataCategories []string `yaml:"data_categories,omitempty"`
		DataQualifier  string   `yaml:"data_qualifier,omitempty"`
		Fields         []Field  `yaml:"fields"`
	}

	// Field describes a column (or equivalent) within a Collection. Fields
	// always serialize their data categories, as an empty list when unset, so
	// the remaining annotation work is visible in the manifest.
	Field struct {
		Name           string   `yaml:"name"`
		Description    string   `yaml:"description"`
		DataCategories []string `yaml:"data_categories"`
		DataQualifier  string   `yaml:"data_qualifier,omitempty"`
		Retention      string   `yaml:"retention,omitempty"`
	}
)

func (d *Dataset) MemberName() string    { return d.Name }
func (c *Collection) MemberName() string { return c.Name }
func (f *Field) MemberName() string      { return f.Name }

// HasCategories reports whether the dataset already carries data categories.
func (d *Dataset) HasCategories() bool { return len(d.DataCategories) > 0 }

// HasCategories reports whether the collection already carries data categories.
func (c *Collection) HasCategories() bool { return len(c.DataCategories) > 0 }

// HasCategories reports whether the field already carries data categories.
func (f *Field) HasCategories() bool { return len(f.DataCategories) > 0 }

// ApplyDefaults fills in the organization and data qualifier when they are
// not set.
func (d *Dataset) ApplyDefaults() {
	if d.OrganizationFidesKey == "" {
		d.OrganizationFidesKey = consts.DefaultOrganizationKey
	}
	if d.DataQualifier == "" {
		d.DataQualifier = consts.DefaultDataQualifier
	}
}

// Validate checks the dataset tree against the policy model: every key-typed
// value must satisfy the key grammar, and every collection and field must be
// named.
func (d *Dataset) Validate() error {
	if err := fideskey.Validate(d.FidesKey); err != nil {
		return errors.Wrap(err, "dataset fides_key")
	}
	if err := validateOptionalKey(d.OrganizationFidesKey); err != nil {
		return errors.Wrapf(err, "dataset %s: organization_fides_key", d.FidesKey)
	}
	if err := validateOptionalKey(d.DataQualifier); err != nil {
		return errors.Wrapf(err, "dataset %s: data_qualifier", d.FidesKey)
	}
	if err := validateKeys(d.DataCategories); err != nil {
		return errors.Wrapf(err, "dataset %s: data_categories", d.FidesKey)
	}

	for i := range d.Collections {
		if err := d.Collections[i].validate(); err != nil {
			return errors.Wrapf(err, "dataset %s", d.FidesKey)
		}
	}

	return nil
}

func (c *Collection) validate() error {
	if c.Name == "" {
		return errors.New("collection name is required")
	}
	if err := validateOptionalKey(c.DataQualifier); err != nil {
		return errors.Wrapf(err, "collection %s: data_qualifier", c.Name)
	}
	if err := validateKeys(c.DataCategories); err != nil {
		return errors.Wrapf(err, "collection %s: data_categories", c.Name)
	}

	for i := range c.Fields {
		if err := c.Fields[i].validate(); err != nil {
			return errors.Wrapf(err, "collection %s", c.Name)
		}
	}

	return nil
}

func (f *Field) validate() error {
	if f.Name == "" {
		return errors.New("field name is required")
	}
	if err := validateOptionalKey(f.DataQualifier); err != nil {
		return errors.Wrapf(err, "field %s: data_qualifier", f.Name)
	}
	if err := validateKeys(f.DataCategories); err != nil {
		return errors.Wrapf(err, "field %s: data_categories", f.Name)
	}

	return nil
}

func validateOptionalKey(key string) error {
	if key == "" {
		return nil
	}
	return fideskey.Validate(key)
}

func validateKeys(keys []string) error {
	for _, key := range keys {
		if err := fideskey.Validate(key); err != nil {
			return err
		}
	}
	return nil
}
