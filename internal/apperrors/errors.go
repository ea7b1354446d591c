// Package apperrors holds the domain errors shared by the services and the
// HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// RouteNotFoundError is returned whenever an operation references a route id
// that does not resolve to a stored route.
type RouteNotFoundError struct {
	ID int64
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("Route with ID %d not found", e.ID)
}

// RouteNotFound builds a RouteNotFoundError for id.
func RouteNotFound(id int64) error {
	return &RouteNotFoundError{ID: id}
}

// IsRouteNotFound reports whether err wraps a RouteNotFoundError.
func IsRouteNotFound(err error) bool {
	var nf *RouteNotFoundError
	return errors.As(err, &nf)
}

// ValidationError collects one message per offending request field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
