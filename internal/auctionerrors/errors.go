package auctionerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport and response errors
var (
	ErrTransport    = errors.New("transport failure")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

// Local validation errors, raised before any request is issued
var (
	ErrInvalidBidAmount = errors.New("bid amount must be a positive number")
	ErrMissingFile      = errors.New("CSV file is required")
	ErrFileTooLarge     = errors.New("file exceeds maximum upload size")
	ErrInvalidToken     = errors.New("invalid session token")
)

// Workflow errors
var (
	ErrAuctionClosed    = errors.New("auction is closed")
	ErrSubmitInProgress = errors.New("bid submission already in progress")
	ErrNotLoaded        = errors.New("auction not loaded")
)

// Sandbox backend errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidBid         = errors.New("invalid bid")
	ErrBidTooLow          = errors.New("price must be at least the starting price")
	ErrNoBids             = errors.New("no bids found for product")
	ErrNoImage            = errors.New("product does not have an image")
	ErrUserExists         = errors.New("email already exists")
	ErrInvalidCSV         = errors.New("invalid CSV")
)

// APIError is returned for every non-2xx response
type APIError struct {
	Status  int
	Message string
}

// NewAPIError builds an APIError, falling back to a generic status message
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps the status code onto a sentinel so callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return nil
	}
}

// Message extracts a display message from any error, preferring the backend text
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
