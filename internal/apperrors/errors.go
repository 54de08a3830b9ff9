// Package apperrors defines the sentinel errors of the recipe domain.
// Callers classify failures with errors.Is and map them to HTTP statuses.
package apperrors

import "errors"

var (
	// ErrNotFound is returned when a referenced entity or relation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when adding a favorite, cart entry or
	// subscription that is already present. Repeated adds are errors, not no-ops.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConstraintViolation is returned when the storage-level uniqueness
	// constraint fires even though the application-level check passed (two
	// concurrent adds of the same pair). Outwardly equivalent to ErrAlreadyExists.
	ErrConstraintViolation = errors.New("uniqueness constraint violated")

	// ErrSelfFollow is returned when a user tries to subscribe to themselves.
	ErrSelfFollow = errors.New("cannot subscribe to yourself")

	// Recipe write validation failures.
	ErrEmptyTagSet         = errors.New("at least one tag is required")
	ErrUnknownTag          = errors.New("unknown tag")
	ErrEmptyIngredientSet  = errors.New("at least one ingredient is required")
	ErrDuplicateIngredient = errors.New("ingredient listed more than once")
)
