package market

import (
	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"auction-storefront/internal/session"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// RoleUser is granted to every imported account
const RoleUser = "ROLE_USER"

// Login checks the password and issues a session token
func (s *MarketService) Login(email, password string) (models.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.LoginResponse{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("service: %w", err)
	}
	return models.LoginResponse{
		Token:              token,
		NeedsPasswordReset: user.NeedsPasswordReset,
		User:               &models.UserSummary{ID: fmt.Sprint(user.ID), Email: user.Email},
	}, nil
}

// Logout revokes the token for the rest of the process lifetime
func (s *MarketService) Logout(token string) error {
	if _, err := s.tokens.Verify(token); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	s.repo.RevokeToken(token)
	return nil
}

// Authenticate verifies a bearer token and rejects revoked ones
func (s *MarketService) Authenticate(token string) (*session.Claims, error) {
	if s.repo.IsTokenRevoked(token) {
		return nil, fmt.Errorf("service: %w: token revoked", auctionerrors.ErrUnauthorized)
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return claims, nil
}

// CreateUser stores an account with a bcrypt-hashed password
func (s *MarketService) CreateUser(email, password, role string, needsReset bool) (models.AppUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.AppUser{}, fmt.Errorf("service: hash password: %w", err)
	}
	user, err := s.repo.CreateUser(models.AppUser{
		Email:              email,
		PasswordHash:       string(hash),
		Role:               role,
		NeedsPasswordReset: needsReset,
	})
	if err != nil {
		return models.AppUser{}, fmt.Errorf("service: %w", err)
	}
	return user, nil
}

// generatePassword returns a random one-time password for imported users
func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
