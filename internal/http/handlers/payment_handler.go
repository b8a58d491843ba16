package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"employeehub/internal/domain"
	applog "employeehub/internal/log"
	"employeehub/internal/metrics"
	"employeehub/internal/services"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

type intentRequest struct {
	Salary *decimal.Decimal `json:"salary" validate:"required"`
	Email  string           `json:"email" validate:"omitempty,email"`
	Month  string           `json:"month"`
	Year   string           `json:"year"`
}

type paymentRequest struct {
	Email         string           `json:"email" validate:"required,email"`
	Name          string           `json:"name"`
	Salary        *decimal.Decimal `json:"salary" validate:"required"`
	Month         string           `json:"month" validate:"required"`
	Year          string           `json:"year" validate:"required"`
	TransactionID string           `json:"transactionId"`
}

// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req intentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	intent, err := h.Payments.CreateIntent(c.UserContext(), services.IntentRequest{
		Salary: *req.Salary, Email: req.Email, Month: req.Month, Year: req.Year,
	})
	if err != nil {
		metrics.ObserveIntent("failed")
		return err
	}
	metrics.ObserveIntent("created")
	applog.Audit(c, "payments.intent.create", map[string]any{"intent_id": intent.ID, "month": req.Month, "year": req.Year})
	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret, "paymentIntent": intent.Raw})
}

// POST /payments
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var req paymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.Payments.Record(domain.Payment{
		Email: req.Email, Name: req.Name, Salary: *req.Salary,
		Month: req.Month, Year: req.Year, TransactionID: req.TransactionID,
	})
	if err != nil {
		return err
	}
	applog.Audit(c, "payments.record", map[string]any{"email": req.Email, "month": req.Month, "year": req.Year})
	return c.JSON(res)
}

// GET /payments
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.Payments.List()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /payments/:email
func (h *PaymentHandler) ByEmail(c *fiber.Ctx) error {
	out, err := h.Payments.ByEmail(pathParam(c, "email"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /payments/check/:month/:year looks only at the caller's own payments.
func (h *PaymentHandler) Check(c *fiber.Ctx) error {
	id, ok := Identity(c)
	if !ok {
		return unauthorized(c)
	}
	made, err := h.Payments.PaymentMade(id.Email, pathParam(c, "month"), pathParam(c, "year"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"paymentMade": made})
}
