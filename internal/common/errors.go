package common

import "errors"

var (
	// Local validation errors, raised before any network call.
	ErrAuthRequired  = errors.New("authentication required")
	ErrIDRequired    = errors.New("id is required")
	ErrFieldRequired = errors.New("required field is empty")
	ErrInvalidLevel  = errors.New("skill level must be between 1 and 5")

	// Remote-side conditions.
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)
