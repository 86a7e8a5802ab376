// Package apperr defines the error taxonomy surfaced by the registry
// operations. Every failure a client can cause maps to one of two
// categories, each carrying the HTTP status the API layer should emit.
package apperr

import (
	"errors"
	"net/http"
)

// Category identifies the class of a service error.
type Category string

const (
	CategoryNotFound Category = "not_found"
	CategoryConflict Category = "conflict"
)

// Error is a client-facing failure. Both categories are terminal and
// non-retryable: they describe a request that does not match current
// server state, not a transient fault.
type Error struct {
	Category   Category
	HTTPStatus int
	Detail     string
}

func (e *Error) Error() string {
	return e.Detail
}

// NotFound builds an error for a reference to an unknown activity.
func NotFound(detail string) *Error {
	return &Error{Category: CategoryNotFound, HTTPStatus: http.StatusNotFound, Detail: detail}
}

// Conflict builds an error for a request rejected by current registry
// state (capacity reached, duplicate signup, non-member unregister).
func Conflict(detail string) *Error {
	return &Error{Category: CategoryConflict, HTTPStatus: http.StatusBadRequest, Detail: detail}
}

// FromError extracts the HTTP status and detail for err. Errors outside
// the taxonomy map to 500; registry operations never produce those, but
// the handler contract covers them anyway.
func FromError(err error) (int, string) {
	var se *Error
	if errors.As(err, &se) {
		return se.HTTPStatus, se.Detail
	}
	return http.StatusInternalServerError, err.Error()
}
