package helper

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"prompt-manager/models"
)

// StatusCode maps a domain error to its fixed HTTP status. Anything outside
// the taxonomy is treated as an internal error.
func StatusCode(err error) int {
	var (
		validationErr   models.ErrorValidation
		unauthorizedErr models.ErrorUnauthorized
		notFoundErr     models.ErrorNotFound
		duplicateErr    models.ErrorDuplicate
		conflictErr     models.ErrorConflict
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &duplicateErr):
		return http.StatusConflict
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the JSON error response for a domain error. Storage-layer
// failures are logged and hidden behind a generic message.
func SendError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// SendBindingError formats gin binding failures, expanding validator errors
// into a per-field map.
func SendBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := map[string]string{}
		for _, fieldErr := range validationErrors {
			fields[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
