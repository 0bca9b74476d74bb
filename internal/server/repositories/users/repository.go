package users

import (
	"context"

	"github.com/avasiliev/notekeep/internal/server/models"
)

// Repository persists user accounts. There is no update or delete: accounts
// are immutable after registration.
type Repository interface {
	// Create inserts a new user and returns it with the generated id and
	// timestamp filled in. A taken username yields common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUserName returns the user with the given username, or
	// common.ErrNotFound.
	GetByUserName(ctx context.Context, userName string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
