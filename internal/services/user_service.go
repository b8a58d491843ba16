package services

import (
	"fmt"

	"employeehub/internal/domain"
)

type UserStore interface {
	All() ([]domain.User, error)
	ByRole(role string) ([]domain.User, error)
	ByID(id string) (*domain.User, error)
	ByIDAndRole(id, role string) (*domain.User, error)
	ByEmail(email string) (*domain.User, error)
	Insert(u *domain.User) (string, error)
	UpdateFields(id string, fields map[string]any) (domain.UpdateResult, error)
}

// UserService owns user lookups, registration and the role/fire mutations.
type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService { return &UserService{Users: users} }

// Registration is the outcome of Register. Existing is set when the email
// was already taken and nothing was written.
type Registration struct {
	Result   domain.InsertResult
	Existing bool
}

func (s *UserService) List() ([]domain.User, error) { return s.Users.All() }

func (s *UserService) Employees() ([]domain.User, error) {
	return s.Users.ByRole(domain.RoleEmployee)
}

// Get returns nil without error when no user has the id.
func (s *UserService) Get(rawID string) (*domain.User, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.ByID(id)
	if notFound(err) {
		return nil, nil
	}
	return u, err
}

func (s *UserService) Employee(rawID string) (*domain.User, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.ByIDAndRole(id, domain.RoleEmployee)
	if notFound(err) {
		return nil, nil
	}
	return u, err
}

// ByEmail never resolves the empty email, which is what fired users carry.
func (s *UserService) ByEmail(email string) (*domain.User, error) {
	if email == "" {
		return nil, nil
	}
	u, err := s.Users.ByEmail(email)
	if notFound(err) {
		return nil, nil
	}
	return u, err
}

// RoleOf reports the stored role for email and whether such a user exists.
func (s *UserService) RoleOf(email string) (string, bool, error) {
	u, err := s.ByEmail(email)
	if err != nil || u == nil {
		return "", false, err
	}
	return u.Role, true, nil
}

func (s *UserService) HasRole(email, role string) (bool, error) {
	got, ok, err := s.RoleOf(email)
	if err != nil {
		return false, err
	}
	return ok && got == role, nil
}

// Register inserts u unless a user with the same email exists. The check and
// the insert are separate statements, so concurrent registrations of one
// email can both succeed.
func (s *UserService) Register(u domain.User) (Registration, error) {
	if u.Email == "" {
		return Registration{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	existing, err := s.ByEmail(u.Email)
	if err != nil {
		return Registration{}, err
	}
	if existing != nil {
		return Registration{Result: domain.InsertResult{}, Existing: true}, nil
	}
	u.IsFired = false
	id, err := s.Users.Insert(&u)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Result: inserted(id)}, nil
}

// SetAccess updates role and/or verification; nil arguments leave the
// stored value untouched.
func (s *UserService) SetAccess(rawID string, role *string, verified *bool) (domain.UpdateResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	fields := map[string]any{}
	if role != nil {
		fields["role"] = *role
	}
	if verified != nil {
		fields["is_verified"] = *verified
	}
	return s.Users.UpdateFields(id, fields)
}

func (s *UserService) SetVerified(rawID string, verified bool) (domain.UpdateResult, error) {
	return s.SetAccess(rawID, nil, &verified)
}

// Fire soft-deletes the user: the row stays, the email is cleared.
func (s *UserService) Fire(rawID string) (domain.UpdateResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return s.Users.UpdateFields(id, map[string]any{"email": "", "is_fired": true})
}
