package repomanager

import (
	"context"
	"database/sql"

	"github.com/avasiliev/notekeep/internal/dbx"
	"github.com/avasiliev/notekeep/internal/server/repositories/notes"
	"github.com/avasiliev/notekeep/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook. Services pass their own handle, so the
// same repositories work against a pool or a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
}
