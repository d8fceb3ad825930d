package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends data as the bare response body. Clients of the auction
// API consume entities and lists directly, without an envelope.
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
