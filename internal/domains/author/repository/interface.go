package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"cms-backend/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors
type RepositoryInterface interface {
	// Create inserts a new author; id and created_at are generated by the store.
	// Errors: model.ErrDuplicateName when the unique constraint rejects the name
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns model.ErrAuthorNotFound if the author does not exist
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// FindByName returns (nil, nil) when no author uses the name
	FindByName(ctx context.Context, name string) (*model.Author, error)

	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// Update writes all fields and stamps updated_at
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	Delete(ctx context.Context, id int64) error

	// WithTx returns the same repository bound to a transaction
	WithTx(tx pgx.Tx) RepositoryInterface
}
