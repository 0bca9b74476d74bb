// Package services contains the server-side business logic. This file
// implements UserService: registration, credential verification and session
// token issuing.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avasiliev/notekeep/internal/common"
	"github.com/avasiliev/notekeep/internal/server/auth"
	"github.com/avasiliev/notekeep/internal/server/config"
	"github.com/avasiliev/notekeep/internal/server/models"
	"github.com/avasiliev/notekeep/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - Register: create accounts with bcrypt-hashed passwords
//   - Login: verify credentials and mint an access token
//   - GetByID: resolve a token identity to an account
//
// It is stateless apart from the immutable signing secret, so it is safe to
// call concurrently.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account. The plaintext password is hashed with
// bcrypt and discarded. A taken username yields common.ErrDuplicateUsername.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token. An
// unknown username and a wrong password both yield
// common.ErrInvalidCredentials, so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// GetByID returns the account a verified token refers to, or
// common.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}
