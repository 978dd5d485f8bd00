package category

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/steward/pkg/fideskey"
)

// ValidationError reports a batch of categories that was rejected. The batch
// is rejected as a whole; Reason describes the first offending entry.
type ValidationError struct {
	Categories []string
	Reason     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] is not a valid data category: %v", strings.Join(e.Categories, ", "), e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// Validate checks every candidate against the key grammar and the set of valid
// keys. It returns a *ValidationError naming the whole batch when any single
// candidate fails.
func Validate(candidates, valid []string) error {
	for _, candidate := range candidates {
		if err := fideskey.Validate(candidate); err != nil {
			return &ValidationError{Categories: candidates, Reason: err}
		}

		if !slices.Contains(valid, candidate) {
			return &ValidationError{
				Categories: candidates,
				Reason:     errors.Errorf("unknown category %q", candidate),
			}
		}
	}

	return nil
}
