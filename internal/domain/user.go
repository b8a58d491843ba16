package domain

import "github.com/shopspring/decimal"

// Role values stored on a user. An empty role means unset.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type User struct {
	ID            string          `db:"id" json:"_id"`
	Name          string          `db:"name" json:"name"`
	Email         string          `db:"email" json:"email"`
	Role          string          `db:"role" json:"role"`
	IsVerified    bool            `db:"is_verified" json:"isVerified"`
	IsFired       bool            `db:"is_fired" json:"isFired"`
	Designation   string          `db:"designation" json:"designation"`
	Salary        decimal.Decimal `db:"salary" json:"salary"`
	BankAccountNo string          `db:"bank_account_no" json:"bankAccountNo"`
	Photo         string          `db:"photo" json:"photo"`
	CreatedAt     string          `db:"created_at" json:"createdAt"`
}
