package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"employeehub/internal/domain"
	"employeehub/internal/payments"
)

type PaymentStore interface {
	All() ([]domain.Payment, error)
	ByEmail(email string) ([]domain.Payment, error)
	ByPeriod(email, month, year string) ([]domain.Payment, error)
	Insert(p *domain.Payment) (string, error)
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (domain.Intent, error)
}

type PaymentService struct {
	Payments PaymentStore
	Bridge   IntentCreator
	Currency string
}

func NewPaymentService(p PaymentStore, bridge IntentCreator, currency string) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{Payments: p, Bridge: bridge, Currency: currency}
}

// IntentRequest describes one salary disbursement about to be charged.
type IntentRequest struct {
	Salary decimal.Decimal
	Email  string
	Month  string
	Year   string
}

func (s *PaymentService) CreateIntent(ctx context.Context, req IntentRequest) (domain.Intent, error) {
	if req.Salary.IsNegative() {
		return domain.Intent{}, fmt.Errorf("%w: salary must not be negative", ErrInvalidInput)
	}
	meta := map[string]string{}
	for k, v := range map[string]string{"email": req.Email, "month": req.Month, "year": req.Year} {
		if v != "" {
			meta[k] = v
		}
	}
	return s.Bridge.CreateIntent(ctx, payments.MinorUnits(req.Salary), s.Currency, meta)
}

// Record stores p without checking for an existing payment in the period.
func (s *PaymentService) Record(p domain.Payment) (domain.InsertResult, error) {
	id, err := s.Payments.Insert(&p)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return inserted(id), nil
}

func (s *PaymentService) List() ([]domain.Payment, error) { return s.Payments.All() }

func (s *PaymentService) ByEmail(email string) ([]domain.Payment, error) {
	return s.Payments.ByEmail(email)
}

// PaymentMade reports whether email was paid for exactly month and year.
func (s *PaymentService) PaymentMade(email, month, year string) (bool, error) {
	if email == "" {
		return false, nil
	}
	found, err := s.Payments.ByPeriod(email, month, year)
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}
