package services

import (
	"context"
	"database/sql"

	"github.com/avasiliev/notekeep/internal/common"
	"github.com/avasiliev/notekeep/internal/server/models"
	"github.com/avasiliev/notekeep/internal/server/repositories/repomanager"
)

// NoteService provides note operations scoped to the authenticated owner.
// Every call takes the caller's user id; a note belonging to someone else
// behaves as if it did not exist.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService on top of the note repository.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create stores a new note for ownerID. Empty title and content are valid.
func (s *NoteService) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.Create(ctx, &models.Note{UserID: ownerID, Title: title, Content: content})
}

// List returns the owner's notes newest-first. No notes is an empty slice.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.ListByOwner(ctx, ownerID)
}

// Get returns a single note of the owner, or common.ErrNotFound.
func (s *NoteService) Get(ctx context.Context, ownerID, id string) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	return repo.Get(ctx, ownerID, id)
}

// Update applies a partial update to the owner's note.
func (s *NoteService) Update(ctx context.Context, ownerID, id string, upd models.NoteUpdate) error {
	repo := s.repomanager.Notes(s.db)
	return repo.Update(ctx, ownerID, id, upd)
}

// Delete removes the owner's note. Deleting an absent note succeeds.
func (s *NoteService) Delete(ctx context.Context, ownerID, id string) error {
	repo := s.repomanager.Notes(s.db)
	return repo.Delete(ctx, ownerID, id)
}

// Search filters the owner's notes by case-insensitive substring match on
// title and/or content, newest-first. Zero matches yields
// common.ErrNoMatches, unlike List where no notes is a plain empty result.
func (s *NoteService) Search(ctx context.Context, ownerID, title, content string) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	found, err := repo.Search(ctx, ownerID, title, content)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, common.ErrNoMatches
	}
	return found, nil
}
