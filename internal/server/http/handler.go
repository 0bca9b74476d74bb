package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/avasiliev/notekeep/internal/common"
	"github.com/avasiliev/notekeep/internal/server/models"
)

// createdAtLayout is the wire format for note timestamps, no zone marker.
const createdAtLayout = "2006-01-02 15:04:05"

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Note bodies use pointers so an absent field can be told apart from an
// empty string: empty title/content are valid note values.
type noteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type noteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func toNoteResponse(n *models.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(createdAtLayout),
	}
}

func toNoteResponses(notes []*models.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password are required")
	}

	if _, err := s.users.Register(c.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Username already exists"})
		}
		return s.internalError(c, err)
	}

	s.logger.Info(c.Context(), "user registered", "username", req.Username)
	return c.JSON(fiber.Map{"msg": "User registered successfully"})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password are required")
	}

	token, err := s.users.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Invalid credentials"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{"access_token": token})
}

func (s *Server) handleListNotes(c *fiber.Ctx) error {
	notes, err := s.notes.List(c.Context(), callerID(c))
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(toNoteResponses(notes))
}

func (s *Server) handleCreateNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	// Empty strings are fine, absent fields are not.
	if req.Title == nil || req.Content == nil {
		return badRequest(c, "Title and content are required")
	}

	if _, err := s.notes.Create(c.Context(), callerID(c), *req.Title, *req.Content); err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "Note created!"})
}

func (s *Server) handleGetNote(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return noteNotFound(c)
	}

	note, err := s.notes.Get(c.Context(), callerID(c), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return noteNotFound(c)
		}
		return s.internalError(c, err)
	}

	return c.JSON(toNoteResponse(note))
}

func (s *Server) handleUpdateNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title == nil && req.Content == nil {
		return badRequest(c, "No fields to update")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return noteNotFound(c)
	}

	upd := models.NoteUpdate{Title: req.Title, Content: req.Content}
	if err := s.notes.Update(c.Context(), callerID(c), id, upd); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return noteNotFound(c)
		}
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "Note updated!"})
}

func (s *Server) handleDeleteNote(c *fiber.Ctx) error {
	id := c.Params("id")
	// Delete is idempotent: an id that cannot exist deletes nothing and
	// still succeeds.
	if _, err := uuid.Parse(id); err == nil {
		if err := s.notes.Delete(c.Context(), callerID(c), id); err != nil {
			return s.internalError(c, err)
		}
	}

	return c.JSON(fiber.Map{"msg": "Note deleted!"})
}

func (s *Server) handleSearchNotes(c *fiber.Ctx) error {
	notes, err := s.notes.Search(c.Context(), callerID(c), c.Query("title"), c.Query("content"))
	if err != nil {
		if errors.Is(err, common.ErrNoMatches) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "No matching notes found"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(toNoteResponses(notes))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": msg})
}

func noteNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Note not found"})
}

func (s *Server) internalError(c *fiber.Ctx, err error) error {
	s.logger.Error(c.Context(), "request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Internal server error"})
}
