package repos

import (
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employeehub/internal/domain"
)

const userColumns = `id,name,email,role,is_verified,is_fired,designation,salary,bank_account_no,photo,COALESCE(created_at,'') AS created_at`

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) All() ([]domain.User, error) {
	out := []domain.User{}
	err := r.DB.Select(&out, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	return out, err
}

func (r *UserRepo) ByRole(role string) ([]domain.User, error) {
	out := []domain.User{}
	err := r.DB.Select(&out, `SELECT `+userColumns+` FROM users WHERE role=? ORDER BY created_at, id`, role)
	return out, err
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	if err := r.DB.Get(&u, `SELECT `+userColumns+` FROM users WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByIDAndRole(id, role string) (*domain.User, error) {
	var u domain.User
	if err := r.DB.Get(&u, `SELECT `+userColumns+` FROM users WHERE id=? AND role=?`, id, role); err != nil {
		return nil, err
	}
	return &u, nil
}

// ByEmail returns the first user holding the email, matching exactly.
func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userColumns+` FROM users WHERE email=? ORDER BY created_at, id LIMIT 1`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert stores u under a fresh id and returns that id.
func (r *UserRepo) Insert(u *domain.User) (string, error) {
	u.ID = uuid.NewString()
	_, err := r.DB.NamedExec(`
		INSERT INTO users(id,name,email,role,is_verified,is_fired,designation,salary,bank_account_no,photo)
		VALUES(:id,:name,:email,:role,:is_verified,:is_fired,:designation,:salary,:bank_account_no,:photo)`, u)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

var userUpdatable = map[string]bool{
	"name": true, "email": true, "role": true, "is_verified": true, "is_fired": true,
	"designation": true, "salary": true, "bank_account_no": true, "photo": true,
}

// UpdateFields sets only the given columns on the user with id.
func (r *UserRepo) UpdateFields(id string, fields map[string]any) (domain.UpdateResult, error) {
	return updateFields(r.DB, "users", userUpdatable, id, fields)
}

func updateFields(db *sqlx.DB, table string, allowed map[string]bool, id string, fields map[string]any) (domain.UpdateResult, error) {
	for col := range fields {
		if !allowed[col] {
			return domain.UpdateResult{}, fmt.Errorf("%s: column %q is not updatable", table, col)
		}
	}
	var matched int64
	if err := db.Get(&matched, `SELECT COUNT(*) FROM `+table+` WHERE id=?`, id); err != nil {
		return domain.UpdateResult{}, err
	}
	if matched == 0 || len(fields) == 0 {
		return domain.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
	}

	// only rows where some column actually changes count as modified
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	differs := sq.Or{}
	for _, col := range cols {
		differs = append(differs, sq.Expr(col+" IS NOT ?", fields[col]))
	}
	query, args, err := sq.Update(table).SetMap(fields).Where(sq.And{sq.Eq{"id": id}, differs}).ToSql()
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := db.Exec(query, args...)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	modified, err := res.RowsAffected()
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}
