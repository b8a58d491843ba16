package repos

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employeehub/internal/domain"
)

const paymentColumns = `id,email,name,salary,month,year,transaction_id,COALESCE(paid_at,'') AS paid_at`

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) All() ([]domain.Payment, error) {
	return r.find(sq.Eq{})
}

func (r *PaymentRepo) ByEmail(email string) ([]domain.Payment, error) {
	return r.find(sq.Eq{"email": email})
}

// ByPeriod returns the payments recorded for email in the exact month and year.
func (r *PaymentRepo) ByPeriod(email, month, year string) ([]domain.Payment, error) {
	return r.find(sq.Eq{"email": email, "month": month, "year": year})
}

func (r *PaymentRepo) find(where sq.Eq) ([]domain.Payment, error) {
	b := sq.Select(paymentColumns).From("payments").OrderBy("paid_at", "id")
	if len(where) > 0 {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	out := []domain.Payment{}
	if err := r.db.Select(&out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores p under a fresh id. No uniqueness is enforced on the period.
func (r *PaymentRepo) Insert(p *domain.Payment) (string, error) {
	p.ID = uuid.NewString()
	_, err := r.db.NamedExec(`
		INSERT INTO payments(id,email,name,salary,month,year,transaction_id)
		VALUES(:id,:email,:name,:salary,:month,:year,:transaction_id)`, p)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}
