package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/devhive-labs/portfolio-service/internal/api/dto"
	"github.com/devhive-labs/portfolio-service/internal/auth"
)

// AuthHandler exposes token introspection.
type AuthHandler struct{}

// NewAuthHandler constructs handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Verify handles GET /api/auth/verify behind the auth middleware; reaching
// this handler means the bearer token checked out.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return c.JSON(dto.VerifyResponse{Valid: true, UserID: principal.User.ID})
}
