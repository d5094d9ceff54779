package notes

import "errors"

// Domain-specific errors for the notes package.
var (
	ErrMissingTitle   = errors.New("note title is required")
	ErrMissingContent = errors.New("note content is required")
)
