package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/avasiliev/notekeep/internal/common"
	"github.com/avasiliev/notekeep/internal/server/auth"
)

// userIDKey is the request-locals key holding the authenticated user id.
const userIDKey = "userID"

// requireAuth verifies the bearer token and resolves it to an existing
// account before any note handler runs. The resolved user id ends up in the
// request locals.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return unauthorized(c)
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return unauthorized(c)
	}

	// A valid signature is not enough: the account must still exist.
	if _, err := s.users.GetByID(c.Context(), userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return unauthorized(c)
		}
		return s.internalError(c, err)
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Missing or invalid token"})
}
