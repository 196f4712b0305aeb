package models

import "time"

// ProductType is read-only reference data attached to every auction
type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Auction represents a listed product accepting bids until it is closed
type Auction struct {
	ID             int64        `json:"id"`
	ProductType    *ProductType `json:"productType"`
	Model          string       `json:"model"`
	Serial         string       `json:"serial"`
	Description    string       `json:"description"`
	Closed         bool         `json:"closed"`
	ImageObjectKey *string      `json:"imageObjectKey"`
	ImageURL       *string      `json:"imageUrl,omitempty"`
	StartingPrice  float64      `json:"startingPrice"`
	CreatedAt      *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time   `json:"updatedAt,omitempty"`
}

// TypeName returns the product type name or an empty string when unset
func (a Auction) TypeName() string {
	if a.ProductType == nil {
		return ""
	}
	return a.ProductType.Name
}

// HasImage reports whether the backend holds an image for the auction
func (a Auction) HasImage() bool {
	return a.ImageObjectKey != nil && *a.ImageObjectKey != ""
}

// Bid represents a single price offer against an auction
type Bid struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	AppUserID    int64   `json:"appUserId"`
	AppUserEmail string  `json:"appUserEmail"`
	Price        float64 `json:"price"`
}

// PlaceBidRequest is the body of POST /bids
type PlaceBidRequest struct {
	ProductID int64   `json:"productId"`
	Price     float64 `json:"price"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the user block returned alongside a login token
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	Token              string       `json:"token"`
	NeedsPasswordReset bool         `json:"needsPasswordReset"`
	User               *UserSummary `json:"user,omitempty"`
}

// ImportResult summarises a product CSV import
type ImportResult struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

// UserImportResult summarises a user CSV import
type UserImportResult struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

// ImageURL is returned by GET /products/{id}/image-url
type ImageURL struct {
	ProductID      string `json:"productId"`
	ImageObjectKey string `json:"imageObjectKey"`
	ImageURL       string `json:"imageUrl"`
}

// ErrorBody is the JSON error envelope written by the backend
type ErrorBody struct {
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// AppUser is a marketplace account as stored by the sandbox backend
type AppUser struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	PasswordHash       string `json:"-"`
	Role               string `json:"role"`
	NeedsPasswordReset bool   `json:"needsPasswordReset"`
}
