package shared

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Storage errors
	ErrDatabase = errors.New("database error")
	ErrNotFound = errors.New("record not found")

	// Input validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingArgument = errors.New("missing required argument")
	ErrInvalidArgument = errors.New("invalid argument")
)
