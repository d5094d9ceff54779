package model

// Scope carries the caller identity through usecases and tools.
type Scope struct {
	UserID string
}
