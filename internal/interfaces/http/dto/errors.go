package dto

import (
	"errors"
	"net/http"
	"strings"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

// statusByCode maps domain error codes to HTTP statuses
var statusByCode = map[string]int{
	"VALIDATION_FAILED":  http.StatusBadRequest,
	"INVALID_INPUT":      http.StatusBadRequest,
	"INVALID_STATE":      http.StatusBadRequest,
	"NOT_CONFIGURED":     http.StatusBadRequest,
	"UNSUPPORTED_UPLOAD": http.StatusBadRequest,
	"EXTERNAL_SERVICE":   http.StatusBadRequest,
	"NOT_FOUND":          http.StatusNotFound,
	"ALREADY_EXISTS":     http.StatusConflict,
	"UNAUTHORIZED":       http.StatusUnauthorized,
}

// MapError converts any error to an HTTP status and a caller-facing message
func MapError(err error) (int, string) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := statusByCode[domainErr.Code]; ok {
			return status, domainErr.Message
		}
		return http.StatusBadRequest, domainErr.Message
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, validationMessage(validationErrs)
	}

	return http.StatusInternalServerError, "An unexpected error occurred"
}

// validationMessage renders binding failures as one readable sentence
func validationMessage(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fieldErr.Field()+" is required")
		default:
			messages = append(messages, fieldErr.Field()+" is invalid")
		}
	}
	return strings.Join(messages, "; ")
}
