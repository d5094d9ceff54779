// Package notes is the note persistence domain.
package notes

import (
	"context"

	"github.com/binguliki/IntelliLearn/internal/model"
)

// Repository is the keyed note collection store. Append must be atomic
// under concurrent writers for the same user: two concurrent saves may
// interleave but never lose a note.
type Repository interface {
	// Append adds one note to the user's collection and returns it with
	// its assigned ID.
	Append(ctx context.Context, userID string, note model.Note) (model.Note, error)

	// Fetch returns the user's notes in insertion order. A user with no
	// notes yields an empty slice, not an error.
	Fetch(ctx context.Context, userID string) ([]model.Note, error)
}
