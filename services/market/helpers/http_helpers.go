package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/session"
	"auction-storefront/utils"

	"github.com/gin-gonic/gin"
)

// gin context keys set by the auth middleware
const (
	ClaimsKey = "claims"
	TokenKey  = "token"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, Detail(err, "invalid bid details")
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, Detail(err, "bid amount too low")
	case errors.Is(err, auctionerrors.ErrInvalidCSV):
		return http.StatusBadRequest, Detail(err, "invalid CSV file")
	case errors.Is(err, auctionerrors.ErrNoImage):
		return http.StatusNotFound, "product does not have an image"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for product"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, auctionerrors.ErrUserExists):
		return http.StatusConflict, "email already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Detail returns the user-facing part of a service error, the text after the
// last " - " separator, or fallback when there is none
func Detail(err error, fallback string) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, " - "); idx >= 0 && idx+3 < len(msg) {
		return msg[idx+3:]
	}
	return fallback
}

// RespondError maps err and writes it, logging at warn level
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["status"] = status
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
		return
	}
	utils.Warn(handlerName+": request rejected", ctx)
}

// ClaimsFrom returns the claims stored by the auth middleware
func ClaimsFrom(c *gin.Context) (*session.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*session.Claims)
	return claims, ok && claims != nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
