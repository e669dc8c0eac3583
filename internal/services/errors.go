package services

import "errors"

var (
	// ErrInvalidArgument marks input that fails validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks an unknown id.
	ErrNotFound = errors.New("not found")
)
