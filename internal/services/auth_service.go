package services

import (
	"errors"
	"strings"

	"employeehub/internal/auth"
)

var ErrUnauthorized = errors.New("unauthorized access")

type AuthService struct {
	Tokens *auth.Issuer
}

func NewAuthService(tokens *auth.Issuer) *AuthService { return &AuthService{Tokens: tokens} }

// IssueToken signs whatever claims the caller supplied.
func (s *AuthService) IssueToken(claims map[string]any) (string, error) {
	return s.Tokens.Issue(claims)
}

// Authenticate resolves an Authorization header value of the form
// "Bearer <token>". Any failure, including expiry, is ErrUnauthorized.
func (s *AuthService) Authenticate(header string) (auth.Identity, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return auth.Identity{}, ErrUnauthorized
	}
	id, err := s.Tokens.Verify(strings.TrimSpace(token))
	if err != nil {
		return auth.Identity{}, errors.Join(ErrUnauthorized, err)
	}
	return id, nil
}
