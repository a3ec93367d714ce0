package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"cms-backend/internal/domains/post/model"
)

// RepositoryInterface defines data access for posts
type RepositoryInterface interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error)
	Update(ctx context.Context, p *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id int64) error

	// WithTx returns the same repository bound to a transaction
	WithTx(tx pgx.Tx) RepositoryInterface
}
