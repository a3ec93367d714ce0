package model

import (
	"errors"
	"net/http"

	"cms-backend/internal/shared/apperror"
)

var (
	ErrAuthorNotFound = errors.New("author not found")

	// ErrDuplicateName is returned by the repository when the unique
	// constraint on authors.name rejects a write
	ErrDuplicateName = errors.New("author with this name already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case apperror.IsValidation(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case apperror.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
