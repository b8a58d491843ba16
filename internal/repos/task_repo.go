package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employeehub/internal/domain"
)

type TaskRepo struct{ db *sqlx.DB }

func NewTaskRepo(db *sqlx.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) All() ([]domain.Task, error) {
	out := []domain.Task{}
	err := r.db.Select(&out, `SELECT id,email,doc,COALESCE(created_at,'') AS created_at FROM tasks ORDER BY created_at, id`)
	return out, err
}

// Insert stores the raw JSON document for email and returns the new id.
func (r *TaskRepo) Insert(email, doc string) (string, error) {
	id := uuid.NewString()
	if _, err := r.db.Exec(`INSERT INTO tasks(id,email,doc) VALUES(?,?,?)`, id, email, doc); err != nil {
		return "", err
	}
	return id, nil
}
