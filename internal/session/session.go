package session

import (
	"fmt"
	"time"

	"auction-storefront/internal/auctionerrors"
)

// Session is the single token context passed to every data-access call
type Session struct {
	store Store
	now   func() time.Time
}

// New wraps a Store
func New(store Store) *Session {
	return &Session{store: store, now: time.Now}
}

// Token returns the current bearer token or an empty string
func (s *Session) Token() (string, error) {
	token, err := s.store.Get()
	if err != nil {
		return "", fmt.Errorf("session: get token: %w", err)
	}
	return token, nil
}

// SetToken stores the token issued at login
func (s *Session) SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("session: %w: empty token", auctionerrors.ErrInvalidToken)
	}
	return s.store.Set(token)
}

// Clear destroys the session
func (s *Session) Clear() error {
	return s.store.Clear()
}

// Claims decodes the stored token
func (s *Session) Claims() (*Claims, error) {
	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("session: %w: no token stored", auctionerrors.ErrUnauthorized)
	}
	return DecodeClaims(token)
}

// IsAuthenticated reports whether a decodable, unexpired token is held.
// Tokens without an exp claim are accepted; the backend has the final word.
func (s *Session) IsAuthenticated() bool {
	claims, err := s.Claims()
	if err != nil {
		return false
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(s.now()) {
		return false
	}
	return true
}

// HasRole reports whether the stored token claims the role
func (s *Session) HasRole(role string) bool {
	if !s.IsAuthenticated() {
		return false
	}
	claims, err := s.Claims()
	if err != nil {
		return false
	}
	return claims.Has(role)
}

// IsAdmin reports whether the stored token claims ROLE_ADMIN
func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}
