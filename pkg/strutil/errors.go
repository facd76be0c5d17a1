package strutil

import "errors"

var (
	// ErrInvalidPartLength is returned when a part length is zero or negative.
	ErrInvalidPartLength = errors.New("part length must be greater than zero")

	// ErrNilInput is returned when a required string is missing.
	ErrNilInput = errors.New("input string is nil")
)
