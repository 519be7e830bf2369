package documents

import "errors"

var (
	// ErrInvalidInput indicates a missing or malformed request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")
)
