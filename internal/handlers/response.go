package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/clinic-service/internal/service"
)

// Error kinds carried in the "error" field of failure responses
const (
	kindInvalidRequest = "invalid_request"
	kindValidation     = "validation_error"
	kindUnauthorized   = "unauthorized"
	kindPersistence    = "persistence_error"
)

func respondOK(c *gin.Context, message string, extra gin.H) {
	body := gin.H{
		"status":  http.StatusOK,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// respondInvalidRequest answers a body that could not be decoded at all
func respondInvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"error":   kindInvalidRequest,
		"message": "Invalid request body: " + err.Error(),
	})
}

// respondError maps a service error onto the response envelope.
// storeMessage is used when the store failed.
func respondError(c *gin.Context, err error, storeMessage string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		body := gin.H{
			"status":  http.StatusBadRequest,
			"error":   kindValidation,
			"message": ve.Message,
		}
		if len(ve.Fields) > 0 {
			body["fields"] = ve.Fields
		}
		c.JSON(http.StatusBadRequest, body)

	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"error":   kindUnauthorized,
			"message": "Account not found",
		})

	case errors.Is(err, service.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"error":   kindUnauthorized,
			"message": "Incorrect password",
		})

	default:
		// Picked up by middleware.ErrorReporter
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  http.StatusInternalServerError,
			"error":   kindPersistence,
			"message": storeMessage,
			"detail":  err.Error(),
		})
	}
}
