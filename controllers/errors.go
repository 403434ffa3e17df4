package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorForbidden:
		return http.StatusForbidden
	default:
		// Validation, InvalidState and Conflict all surface as 400
		return http.StatusBadRequest
	}
}

// respondError maps a service failure onto the wire; anything outside the
// taxonomy is logged and reported as an opaque 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		utils.JSONError(c, statusForKind(svcErr.Kind), svcErr.Message)
		return
	}

	logger.Error("unexpected error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	utils.JSONError(c, http.StatusInternalServerError, "Server error")
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}

// respondBindingError reports malformed request bodies with a field-level
// errors array alongside the uniform message.
func respondBindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make([]gin.H, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, gin.H{"field": fe.Field(), "message": bindingMessage(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": out})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request body",
		"errors":  []string{err.Error()},
	})
}
