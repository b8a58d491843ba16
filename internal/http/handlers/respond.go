package handlers

import (
	"errors"
	"fmt"

	applog "employeehub/internal/log"
	"employeehub/internal/services"
	"employeehub/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// bind decodes the request body into dst and checks its validate tags.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	return nil
}

// ErrorHandler answers client mistakes with a message and everything else
// with a bare 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMalformedID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "malformed id"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
}
