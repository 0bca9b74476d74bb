package notes

import (
	"context"

	"github.com/avasiliev/notekeep/internal/server/models"
)

// Repository persists notes. Every read and write is scoped to the owning
// user: a note id belonging to someone else behaves as if it did not exist.
type Repository interface {
	// Create inserts a new note and returns it with the generated id and
	// timestamp filled in. Empty title and content are valid.
	Create(ctx context.Context, note *models.Note) (*models.Note, error)

	// ListByOwner returns the owner's notes newest-first. No notes is an
	// empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)

	// Get returns the note with the given id if it belongs to ownerID,
	// otherwise common.ErrNotFound.
	Get(ctx context.Context, ownerID, id string) (*models.Note, error)

	// Update applies a partial update to the owner's note. Nil fields keep
	// their stored values. Updating an absent or foreign note yields
	// common.ErrNotFound.
	Update(ctx context.Context, ownerID, id string, upd models.NoteUpdate) error

	// Delete removes the owner's note. Deleting an absent note is not an
	// error.
	Delete(ctx context.Context, ownerID, id string) error

	// Search returns the owner's notes whose title and content contain the
	// given substrings case-insensitively, newest-first. An empty filter
	// matches everything; zero matches is an empty slice.
	Search(ctx context.Context, ownerID, title, content string) ([]*models.Note, error)
}
