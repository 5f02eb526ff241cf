// Package faults defines the error taxonomy shared by every lifecycle
// operation. Module services wrap these sentinels with operation-specific
// messages; the HTTP layer maps the kind to a status code.
package faults

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates a referenced identifier does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates the operation is not legal in the entity's
	// current lifecycle state (already ended, wrong ownership).
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict indicates a uniqueness invariant would be violated.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates malformed input, rejected before any mutation.
	ErrValidation = errors.New("validation failed")
)

// HTTPStatus maps a fault kind to its HTTP status code. Unrecognized errors
// are infrastructure failures and map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// IsDomain reports whether err belongs to the taxonomy, i.e. it is a normal
// business outcome rather than an infrastructure failure.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation)
}
