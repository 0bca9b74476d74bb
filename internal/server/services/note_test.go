package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avasiliev/notekeep/internal/common"
	"github.com/avasiliev/notekeep/internal/server/models"
)

type fakeNotesRepo struct {
	createErr error

	listOut []*models.Note
	listErr error

	getOut *models.Note
	getErr error

	updateErr error
	deleteErr error

	searchOut []*models.Note
	searchErr error

	lastSearchTitle   string
	lastSearchContent string
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	n.ID = "n-1"
	n.CreatedAt = time.Now()
	return n, nil
}

func (f *fakeNotesRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) Get(ctx context.Context, ownerID, id string) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, ownerID, id string, upd models.NoteUpdate) error {
	return f.updateErr
}

func (f *fakeNotesRepo) Delete(ctx context.Context, ownerID, id string) error {
	return f.deleteErr
}

func (f *fakeNotesRepo) Search(ctx context.Context, ownerID, title, content string) ([]*models.Note, error) {
	f.lastSearchTitle = title
	f.lastSearchContent = content
	return f.searchOut, f.searchErr
}

func newNoteService(n *fakeNotesRepo) *NoteService {
	return NewNoteService(nil, &fakeRepoManager{n: n})
}

func TestNoteCreate_EmptyFieldsAreValid(t *testing.T) {
	s := newNoteService(&fakeNotesRepo{})

	note, err := s.Create(context.Background(), "u-1", "", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if note.ID == "" || note.UserID != "u-1" {
		t.Fatalf("unexpected note: %+v", note)
	}
}

func TestNoteList_EmptyIsSuccess(t *testing.T) {
	s := newNoteService(&fakeNotesRepo{listOut: []*models.Note{}})

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no notes, got %+v", got)
	}
}

func TestNoteSearch_ZeroMatchesIsNoMatches(t *testing.T) {
	s := newNoteService(&fakeNotesRepo{searchOut: []*models.Note{}})

	_, err := s.Search(context.Background(), "u-1", "python", "")
	if !errors.Is(err, common.ErrNoMatches) {
		t.Fatalf("expected common.ErrNoMatches, got %v", err)
	}
}

func TestNoteSearch_PassesFiltersThrough(t *testing.T) {
	repo := &fakeNotesRepo{searchOut: []*models.Note{{ID: "n-1", UserID: "u-1", Title: "Python Tips"}}}
	s := newNoteService(repo)

	got, err := s.Search(context.Background(), "u-1", "python", "pytest")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Python Tips" {
		t.Fatalf("unexpected notes: %+v", got)
	}
	if repo.lastSearchTitle != "python" || repo.lastSearchContent != "pytest" {
		t.Fatalf("filters not passed through: %q %q", repo.lastSearchTitle, repo.lastSearchContent)
	}
}

func TestNoteGet_NotFoundPassesThrough(t *testing.T) {
	s := newNoteService(&fakeNotesRepo{getErr: common.ErrNotFound})

	_, err := s.Get(context.Background(), "u-1", "n-404")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestNoteDelete_AbsentNoteIsSuccess(t *testing.T) {
	s := newNoteService(&fakeNotesRepo{})

	if err := s.Delete(context.Background(), "u-1", "n-404"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
