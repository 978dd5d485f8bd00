package category

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Lister returns every known key for a taxonomy resource type, such as
	// "data_category". The result is treated as the source of truth for
	// validation.
	Lister interface {
		ListKeys(ctx context.Context, resourceType string) ([]string, error)
	}

	// HTTPLister lists resources from the policy server's REST API.
	HTTPLister struct {
		ServerURL string
		Client    *http.Client
	}

	// FileLister lists resources from a local taxonomy file. The file's
	// top-level keys are resource types, each holding a list of resources:
	//
	//	data_category:
	//	  - fides_key: user
	//	  - fides_key: user.contact
	FileLister struct {
		Path string
	}

	resource struct {
		FidesKey string `json:"fides_key" yaml:"fides_key"`
	}
)

// maxErrorBody caps how much of a failed response is echoed in the error.
const maxErrorBody = 512

// NewHTTPLister returns a lister for the server at serverURL whose requests are
// bounded by timeout.
func NewHTTPLister(serverURL string, timeout time.Duration) *HTTPLister {
	return &HTTPLister{
		ServerURL: serverURL,
		Client:    &http.Client{Timeout: timeout},
	}
}

// ListKeys fetches GET <server>/<resourceType>/ and returns the fides_key of
// every resource in the response.
func (l *HTTPLister) ListKeys(ctx context.Context, resourceType string) ([]string, error) {
	endpoint, err := url.JoinPath(l.ServerURL, resourceType, "/")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server url: %s", l.ServerURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s resources", resourceType)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Errorf(
			"failed to list %s resources: %s: %s",
			resourceType,
			resp.Status,
			strings.TrimSpace(string(body)),
		)
	}

	var resources []resource
	if err := json.NewDecoder(resp.Body).Decode(&resources); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s resources", resourceType)
	}

	return keys(resources), nil
}

// ListKeys reads the taxonomy file and returns the keys listed under
// resourceType.
func (l *FileLister) ListKeys(_ context.Context, resourceType string) ([]string, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open taxonomy file: %s", l.Path)
	}
	defer func() { _ = f.Close() }()

	var sections map[string][]resource
	if err := yaml.NewDecoder(f).Decode(&sections); err != nil {
		return nil, errors.Wrapf(err, "failed to parse taxonomy file: %s", l.Path)
	}

	resources, ok := sections[resourceType]
	if !ok {
		return nil, errors.Errorf("taxonomy file %s has no %q section", l.Path, resourceType)
	}

	return keys(resources), nil
}

func keys(resources []resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		if r.FidesKey != "" {
			out = append(out, r.FidesKey)
		}
	}
	return out
}
