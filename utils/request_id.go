package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a random UUID for the X-Request-ID header, correlating
// client and sandbox log lines
func NewRequestID() string {
	return uuid.NewString()
}
