// Package payments talks to the external payment-intent API.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"employeehub/internal/domain"
)

const DefaultBaseURL = "https://api.stripe.com"

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a decimal amount to minor units, truncating any
// fraction of a minor unit: 19.999 becomes 1999.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).IntPart()
}

type Bridge struct {
	client *resty.Client
}

// NewBridge returns a client authenticating with secretKey against baseURL.
// Requests are never retried and carry no idempotency key.
func NewBridge(baseURL, secretKey string, timeout time.Duration) *Bridge {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(secretKey, "").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	return &Bridge{client: c}
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (b *Bridge) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (domain.Intent, error) {
	form := map[string]string{
		"amount":                  strconv.FormatInt(amount, 10),
		"currency":                currency,
		"payment_method_types[0]": "card",
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		form["metadata["+k+"]"] = metadata[k]
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/v1/payment_intents")
	if err != nil {
		return domain.Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	if resp.IsError() {
		var ae apiError
		_ = json.Unmarshal(resp.Body(), &ae)
		msg := ae.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return domain.Intent{}, fmt.Errorf("create payment intent: processor answered %d: %s", resp.StatusCode(), msg)
	}

	raw := map[string]any{}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return domain.Intent{}, fmt.Errorf("decode payment intent: %w", err)
	}
	id, _ := raw["id"].(string)
	secret, _ := raw["client_secret"].(string)
	return domain.Intent{ID: id, ClientSecret: secret, Raw: raw}, nil
}
