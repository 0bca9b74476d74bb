// Package http exposes the note-taking API over HTTP. Handlers are
// stateless: they authenticate the caller, delegate to the services and map
// outcomes to status codes and {msg} payloads.
package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avasiliev/notekeep/internal/logging"
	"github.com/avasiliev/notekeep/internal/server/models"
)

// UserService is the slice of the user service the transport needs.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// NoteService is the slice of the note service the transport needs. Every
// operation is scoped to the authenticated owner.
type NoteService interface {
	Create(ctx context.Context, ownerID, title, content string) (*models.Note, error)
	List(ctx context.Context, ownerID string) ([]*models.Note, error)
	Get(ctx context.Context, ownerID, id string) (*models.Note, error)
	Update(ctx context.Context, ownerID, id string, upd models.NoteUpdate) error
	Delete(ctx context.Context, ownerID, id string) error
	Search(ctx context.Context, ownerID, title, content string) ([]*models.Note, error)
}

// Server serves the HTTP API.
type Server struct {
	app       *fiber.App
	address   string
	logger    logging.Logger
	users     UserService
	notes     NoteService
	jwtSecret []byte
}

// NewServer wires the routes and returns a Server ready to Run.
func NewServer(address string, l logging.Logger, us UserService, ns NoteService, secretKey string) *Server {
	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		notes:     ns,
		jwtSecret: []byte(secretKey),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Post("/register", s.handleRegister)
	api.Post("/login", s.handleLogin)

	notes := api.Group("/notes", s.requireAuth)
	notes.Get("/", s.handleListNotes)
	notes.Post("/", s.handleCreateNote)
	// The search route must be registered before the :id routes, or fiber
	// would capture "search" as a note id.
	notes.Get("/search", s.handleSearchNotes)
	notes.Get("/:id", s.handleGetNote)
	notes.Put("/:id", s.handleUpdateNote)
	notes.Delete("/:id", s.handleDeleteNote)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
