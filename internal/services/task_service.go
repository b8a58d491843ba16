package services

import (
	"encoding/json"
	"fmt"

	"employeehub/internal/domain"
)

type TaskStore interface {
	All() ([]domain.Task, error)
	Insert(email, doc string) (string, error)
}

type TaskService struct {
	Tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService { return &TaskService{Tasks: tasks} }

func (s *TaskService) List() ([]domain.Task, error) { return s.Tasks.All() }

// Create stores doc as given. When doc names no email the author's is used.
func (s *TaskService) Create(author string, doc map[string]any) (domain.InsertResult, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	delete(doc, "_id")
	email, _ := doc["email"].(string)
	if email == "" {
		email = author
		doc["email"] = author
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	id, err := s.Tasks.Insert(email, string(b))
	if err != nil {
		return domain.InsertResult{}, err
	}
	return inserted(id), nil
}
