package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// salaries go out as JSON numbers, the way clients send them
	decimal.MarshalJSONWithoutQuotes = true
}

// Task is a free-form document. Only the id, owner email and timestamp
// are lifted out of it into columns.
type Task struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	Doc       string `db:"doc"`
	CreatedAt string `db:"created_at"`
}

// MarshalJSON returns the stored document with `_id` merged in.
func (t Task) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}
	if len(t.Doc) > 0 {
		if err := json.Unmarshal([]byte(t.Doc), &fields); err != nil {
			return nil, err
		}
	}
	fields["_id"] = t.ID
	return json.Marshal(fields)
}

type Payment struct {
	ID            string          `db:"id" json:"_id"`
	Email         string          `db:"email" json:"email"`
	Name          string          `db:"name" json:"name"`
	Salary        decimal.Decimal `db:"salary" json:"salary"`
	Month         string          `db:"month" json:"month"`
	Year          string          `db:"year" json:"year"`
	TransactionID string          `db:"transaction_id" json:"transactionId"`
	PaidAt        string          `db:"paid_at" json:"paidAt"`
}

// Intent is the processor's answer to a create-intent call.
type Intent struct {
	ID           string
	ClientSecret string
	Raw          map[string]any
}

// InsertResult and UpdateResult are the write acknowledgements sent back to clients.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}
