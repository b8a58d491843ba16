package handlers

import (
	"errors"
	"net/url"

	"employeehub/internal/auth"
	applog "employeehub/internal/log"
	"employeehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

const identityLocal = "identity"

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
}

// Identity returns the caller attached by Authenticate.
func Identity(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(identityLocal).(auth.Identity)
	return id, ok
}

// Authenticate requires a valid bearer token. It never touches storage.
func Authenticate(a *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := a.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			reason := "invalid"
			switch {
			case c.Get(fiber.HeaderAuthorization) == "":
				reason = "missing"
			case errors.Is(err, auth.ErrExpired):
				reason = "expired"
			}
			c.Status(fiber.StatusUnauthorized)
			applog.Security(c, "auth.token.reject", map[string]any{"reason": reason})
			return unauthorized(c)
		}
		c.Locals(identityLocal, id)
		c.Locals(applog.IdentityKey, id.Email)
		return c.Next()
	}
}

// Authorize re-reads the caller's role from storage on every request and
// requires it to equal role. Mount it after Authenticate.
func Authorize(users *services.UserService, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := Identity(c)
		if !ok {
			return unauthorized(c)
		}
		has, err := users.HasRole(id.Email, role)
		if err != nil {
			return err
		}
		if !has {
			c.Status(fiber.StatusForbidden)
			applog.Security(c, "access.denied.role", map[string]any{"need": role})
			return forbidden(c)
		}
		return c.Next()
	}
}

// SelfOnly requires the path parameter to equal the caller's email.
func SelfOnly(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := Identity(c)
		if !ok {
			return unauthorized(c)
		}
		if pathParam(c, param) != id.Email {
			c.Status(fiber.StatusForbidden)
			applog.Security(c, "access.denied.self", map[string]any{"param": param})
			return forbidden(c)
		}
		return c.Next()
	}
}

func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
