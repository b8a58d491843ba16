package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"employeehub/internal/services"
)

type TaskHandler struct {
	Tasks *services.TaskService
}

// POST /tasks stores the body as-is for the calling employee.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	id, ok := Identity(c)
	if !ok {
		return unauthorized(c)
	}
	doc := map[string]any{}
	if err := c.BodyParser(&doc); err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	res, err := h.Tasks.Create(id.Email, doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.Tasks.List()
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}
