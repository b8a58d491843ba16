package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"employeehub/internal/domain"
	applog "employeehub/internal/log"
	"employeehub/internal/metrics"
	"employeehub/internal/services"
	"employeehub/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

type registerRequest struct {
	Name          string           `json:"name"`
	Email         string           `json:"email" validate:"required,email"`
	Role          string           `json:"role" validate:"role"`
	Designation   string           `json:"designation"`
	Salary        *decimal.Decimal `json:"salary"`
	BankAccountNo string           `json:"bankAccountNo"`
	Photo         string           `json:"photo"`
}

type accessRequest struct {
	Role       *string `json:"role" validate:"omitempty,role"`
	IsVerified *bool   `json:"isVerified"`
}

// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GET /users/:id answers null when nothing matches.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// POST /users
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	role, _ := validate.Role(req.Role)
	u := domain.User{
		Name:          req.Name,
		Email:         req.Email,
		Role:          role,
		Designation:   req.Designation,
		BankAccountNo: req.BankAccountNo,
		Photo:         req.Photo,
	}
	if req.Salary != nil {
		u.Salary = *req.Salary
	}
	reg, err := h.Users.Register(u)
	if err != nil {
		return err
	}
	if reg.Existing {
		metrics.ObserveRegistration("duplicate")
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}
	metrics.ObserveRegistration("created")
	applog.Audit(c, "users.register", map[string]any{"email": u.Email, "user_id": *reg.Result.InsertedID})
	return c.JSON(reg.Result)
}

// PATCH /users/:id sets role and/or verification.
func (h *UserHandler) Patch(c *fiber.Ctx) error {
	var req accessRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Role != nil {
		role, _ := validate.Role(*req.Role)
		req.Role = &role
	}
	res, err := h.Users.SetAccess(c.Params("id"), req.Role, req.IsVerified)
	if err != nil {
		return err
	}
	applog.Audit(c, "users.access.update", map[string]any{"user_id": c.Params("id"), "matched": res.MatchedCount})
	return c.JSON(res)
}

// PATCH /users/fire/:id
func (h *UserHandler) Fire(c *fiber.Ctx) error {
	res, err := h.Users.Fire(c.Params("id"))
	if err != nil {
		return err
	}
	applog.Audit(c, "users.fire", map[string]any{"user_id": c.Params("id"), "matched": res.MatchedCount})
	return c.JSON(res)
}

// RoleProbe answers {"<role>": bool} for GET /users/<role>/:email.
func (h *UserHandler) RoleProbe(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		has, err := h.Users.HasRole(pathParam(c, "email"), role)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{role: has})
	}
}
