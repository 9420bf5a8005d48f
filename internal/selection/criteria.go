// Package selection filters a restaurant snapshot and picks one entry at random.
//
// Every function here is pure: it works on the slice it is handed, keeps no state
// between calls and performs no I/O. Callers fetch the snapshot from a store and
// re-fetch when they need fresher data.
package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/queroir/api/internal/restaurant/domain"
)

// ErrInvalidCriteria is returned when raw filter input cannot be turned into Criteria.
var ErrInvalidCriteria = errors.New("invalid selection criteria")

// Criteria lists the active predicates. A nil pointer or empty SearchText disables that predicate.
type Criteria struct {
	SearchText  string
	CuisineType *string
	TagName     *string
	Status      *domain.Status
}

// RawCriteria is filter input as it arrives from a query string or CLI flags.
// Empty strings mean "not set".
type RawCriteria struct {
	SearchText  string
	CuisineType string
	TagName     string
	Status      string
}

// ParseCriteria builds Criteria, rejecting an unknown status instead of ignoring it.
// Values are taken verbatim: only the empty string disables a predicate.
func ParseCriteria(raw RawCriteria) (Criteria, error) {
	c := Criteria{SearchText: raw.SearchText}
	if raw.CuisineType != "" {
		v := raw.CuisineType
		c.CuisineType = &v
	}
	if raw.TagName != "" {
		v := raw.TagName
		c.TagName = &v
	}
	if raw.Status != "" {
		status, err := domain.ParseStatus(raw.Status)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
		}
		c.Status = &status
	}
	return c, nil
}

// WithStatus returns a copy of c restricted to status.
func (c Criteria) WithStatus(status domain.Status) Criteria {
	c.Status = &status
	return c
}

// WithTag returns a copy of c restricted to restaurants carrying the tag.
func (c Criteria) WithTag(name string) Criteria {
	c.TagName = &name
	return c
}

// Active reports whether any predicate is enabled.
func (c Criteria) Active() bool {
	return c.SearchText != "" || c.CuisineType != nil || c.TagName != nil || c.Status != nil
}

// Matches applies all active predicates with logical AND.
func (c Criteria) Matches(r domain.Restaurant) bool {
	if c.SearchText != "" {
		needle := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Address), needle) {
			return false
		}
	}
	if c.CuisineType != nil && r.CuisineType != *c.CuisineType {
		return false
	}
	if c.TagName != nil && !r.Tags.Has(*c.TagName) {
		return false
	}
	if c.Status != nil && r.Status != *c.Status {
		return false
	}
	return true
}
