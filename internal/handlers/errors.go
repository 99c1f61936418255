package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
)

// statusFromError maps service errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// bindErrorMessage flattens a binding failure into one readable message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		}
		return "Invalid request body: " + strings.Join(parts, ", ")
	}
	return "Invalid request body: " + err.Error()
}
