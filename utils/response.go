package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the payload as the bare response body, the shape the storefront client decodes
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}
