package handlers

import (
	"fmt"

	"employeehub/internal/log"
	"employeehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// POST /jwt
func (h *AuthHandler) Issue(c *fiber.Ctx) error {
	claims := map[string]any{}
	if err := c.BodyParser(&claims); err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	token, err := h.Auth.IssueToken(claims)
	if err != nil {
		return err
	}
	email, _ := claims["email"].(string)
	log.Audit(c, "auth.token.issue", map[string]any{"email": email})
	return c.JSON(fiber.Map{"token": token})
}
