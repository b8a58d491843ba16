package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"employeehub/internal/domain"
)

var (
	ErrMalformedID  = errors.New("malformed id")
	ErrInvalidInput = errors.New("invalid input")
)

// ParseID validates the external form of an entity id.
func ParseID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", ErrMalformedID
	}
	return id.String(), nil
}

func notFound(err error) bool { return errors.Is(err, sql.ErrNoRows) }

func inserted(id string) domain.InsertResult {
	return domain.InsertResult{Acknowledged: true, InsertedID: &id}
}
