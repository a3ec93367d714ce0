package model

import (
	"errors"
	"net/http"

	"cms-backend/internal/shared/apperror"
)

var ErrPostNotFound = errors.New("post not found")

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case apperror.IsValidation(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case apperror.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
