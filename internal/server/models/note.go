package models

import "time"

// Note is a personal text note owned by exactly one user. CreatedAt is set
// by the database on insert and never changes.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
}

// NoteUpdate describes a partial update of a note. Nil fields are left
// untouched; only title and content can ever change.
type NoteUpdate struct {
	Title   *string
	Content *string
}
