package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "employeehub/internal/log"
	"employeehub/internal/services"
)

// EmployeeHandler serves users whose role is employee.
type EmployeeHandler struct {
	Users *services.UserService
}

type verifyRequest struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	emps, err := h.Users.Employees()
	if err != nil {
		return err
	}
	return c.JSON(emps)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.Employee(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// Verify sets only the verification flag.
func (h *EmployeeHandler) Verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.Users.SetVerified(c.Params("id"), *req.IsVerified)
	if err != nil {
		return err
	}
	applog.Audit(c, "employees.verify", map[string]any{"user_id": c.Params("id"), "verified": *req.IsVerified})
	return c.JSON(res)
}
