package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates a search was requested without a query.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrUnsupportedFormat indicates an unknown output format.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrOutputFileRequired indicates a binary format was requested without an output file.
	ErrOutputFileRequired = errors.New("an output file (-o) is required for this format")

	// ErrUnknownConfigKey indicates a configuration key that is not recognised.
	ErrUnknownConfigKey = errors.New("unknown config key")
)
