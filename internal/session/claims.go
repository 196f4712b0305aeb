package session

import (
	"encoding/json"
	"fmt"
	"slices"

	"auction-storefront/internal/auctionerrors"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the authority the backend grants administrators
const RoleAdmin = "ROLE_ADMIN"

// Roles accepts the role claim either as a single string or as a list
type Roles []string

func (r *Roles) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*r = nil
		} else {
			*r = Roles{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("role claim: %w", err)
	}
	*r = list
	return nil
}

// Claims holds the token payload fields the storefront gates on
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  Roles  `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Has reports whether the role is granted
func (c *Claims) Has(role string) bool {
	return slices.Contains(c.Role, role)
}

// Identity returns the email claim, or the subject when no email claim is set
func (c *Claims) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// DecodeClaims reads the payload without verifying the signature. The result
// only gates what the UI offers; the backend enforces authorization.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("session: %w: %v", auctionerrors.ErrInvalidToken, err)
	}
	return claims, nil
}
