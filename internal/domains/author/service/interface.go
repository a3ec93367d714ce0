package service

import (
	"context"

	"cms-backend/internal/domains/author/model"
)

// ServiceInterface defines business operations for authors
type ServiceInterface interface {
	// Create validates every field, checks the name is not taken and inserts.
	// Errors: *apperror.ValidationError
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetByID errors: model.ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List applies default pagination (limit 20, max 100)
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// Update re-validates each present field and re-checks uniqueness when the name changes.
	// Errors: *apperror.ValidationError, model.ErrAuthorNotFound
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete errors: model.ErrAuthorNotFound
	Delete(ctx context.Context, id int64) error
}
