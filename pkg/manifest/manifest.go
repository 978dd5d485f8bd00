package manifest

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/consts"
	"github.com/pseudomuto/steward/pkg/model"
	"gopkg.in/yaml.v3"
)

type (
	// FormatError is returned when a manifest cannot be parsed into datasets.
	FormatError struct {
		Path string
		Err  error
	}

	document struct {
		Datasets []model.Dataset `yaml:"dataset"`
	}
)

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid manifest %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Cause allows errors.Cause to reach the underlying parse error.
func (e *FormatError) Cause() error { return e.Err }

// Load reads datasets from path. When path is a directory every .yml/.yaml
// file below it is read in lexical order and the datasets are concatenated;
// files without a dataset section are skipped. A single file must contain a
// dataset section.
//
// Every dataset is defaulted and validated against the policy model. Any
// problem is reported as a *FormatError.
func Load(path string) ([]model.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access manifest: %s", path)
	}

	if !info.IsDir() {
		return loadFile(path, true)
	}

	files, err := manifestFiles(path)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no manifest files found in directory: %s", path)
	}

	var datasets []model.Dataset
	for _, file := range files {
		found, err := loadFile(file, false)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, found...)
	}

	return datasets, nil
}

// Decode parses a manifest document from r. The source is only used in error
// messages.
func Decode(r io.Reader, source string) ([]model.Dataset, error) {
	datasets, _, err := decode(r, source)
	return datasets, err
}

// Encode writes datasets to w as a manifest document.
func Encode(w io.Writer, datasets []model.Dataset) error {
	if datasets == nil {
		datasets = []model.Dataset{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(document{Datasets: datasets}); err != nil {
		return errors.Wrap(err, "failed to encode manifest")
	}

	return errors.Wrap(enc.Close(), "failed to encode manifest")
}

// Write replaces the file at path with a manifest containing datasets. The
// content is written to a temporary file in the same directory and renamed
// into place, so a failed write never leaves a truncated manifest behind.
func Write(path string, datasets []model.Dataset) error {
	var buf bytes.Buffer
	if err := Encode(&buf, datasets); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create directory: %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file in: %s", dir)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "failed to write manifest: %s", path)
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to write manifest: %s", path)
	}

	if err := os.Chmod(tmp.Name(), consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to set permissions on manifest: %s", path)
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "failed to replace manifest: %s", path)
}

func loadFile(path string, required bool) ([]model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open manifest: %s", path)
	}
	defer func() { _ = f.Close() }()

	datasets, found, err := decode(f, path)
	if err != nil {
		return nil, err
	}

	if !found && required {
		return nil, &FormatError{Path: path, Err: errors.Errorf("missing %q section", consts.ManifestSection)}
	}

	return datasets, nil
}

func decode(r io.Reader, source string) ([]model.Dataset, bool, error) {
	var sections map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&sections); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, false, nil
		}
		return nil, false, &FormatError{Path: source, Err: err}
	}

	node, ok := sections[consts.ManifestSection]
	if !ok {
		return nil, false, nil
	}

	var datasets []model.Dataset
	if err := node.Decode(&datasets); err != nil {
		return nil, true, &FormatError{Path: source, Err: err}
	}

	for i := range datasets {
		datasets[i].ApplyDefaults()
		if err := datasets[i].Validate(); err != nil {
			return nil, true, &FormatError{Path: source, Err: err}
		}
	}

	return datasets, true, nil
}

func manifestFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".yml", ".yaml":
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	sort.Strings(files)
	return files, nil
}
