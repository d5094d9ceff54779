package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrUpstream     = errors.New("completion service unavailable")
)
