package service

import (
	"context"

	"cms-backend/internal/domains/post/model"
)

// ServiceInterface defines business operations for posts
type ServiceInterface interface {
	// Create validates all four field rules before anything is written.
	// Errors: *apperror.ValidationError
	Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)

	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error)

	// Update re-validates every present field; one failure aborts the whole update.
	Update(ctx context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error)

	Delete(ctx context.Context, id int64) error
}
