// Package notes provides the PostgreSQL-backed note store.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avasiliev/notekeep/internal/common"
	"github.com/avasiliev/notekeep/internal/dbx"
	"github.com/avasiliev/notekeep/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`INSERT INTO notes (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.Title, note.Content).Scan(&note.ID, &note.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at FROM notes
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at FROM notes
		 WHERE id = $1 AND user_id = $2
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// Update relies on COALESCE so a nil field keeps the stored value. created_at
// is deliberately never part of the SET list.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, id string, upd models.NoteUpdate) error {
	query :=
		`UPDATE notes
		 SET title = COALESCE($1, title), content = COALESCE($2, content)
		 WHERE id = $3 AND user_id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, upd.Title, upd.Content, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query :=
		`DELETE FROM notes
		 WHERE id = $1 AND user_id = $2
		 `

	// Zero rows affected is fine: delete is idempotent.
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Search(ctx context.Context, ownerID, title, content string) ([]*models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at FROM notes
		 WHERE user_id = $1
		   AND ($2 = '' OR title ILIKE '%' || $2 || '%')
		   AND ($3 = '' OR content ILIKE '%' || $3 || '%')
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID, escapeLike(title), escapeLike(content))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// escapeLike neutralizes LIKE wildcards so user input matches as a literal
// substring.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanNotes(rows *sql.Rows) ([]*models.Note, error) {
	result := []*models.Note{}
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Content, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
