package server

import (
	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/session"
	"auction-storefront/services/market/helpers"
	"auction-storefront/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Authenticator verifies bearer tokens
type Authenticator interface {
	Authenticate(token string) (*session.Claims, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetHeader("X-Request-ID"),
	})
}

// RequireAuth rejects requests without a valid bearer token and stores the claims
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "authentication required")
			return
		}

		claims, err := auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			utils.Warn("RequireAuth: token rejected", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			return
		}

		c.Set(helpers.ClaimsKey, claims)
		c.Set(helpers.TokenKey, strings.TrimSpace(token))
		c.Next()
	}
}

// RequireRole must run after RequireAuth
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := helpers.ClaimsFrom(c)
		if !ok || !claims.Has(role) {
			utils.JSONError(c, http.StatusForbidden, auctionerrors.ErrForbidden, "access denied")
			return
		}
		c.Next()
	}
}
