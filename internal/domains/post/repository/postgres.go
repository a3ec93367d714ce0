package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cms-backend/internal/domains/post/model"
	"cms-backend/internal/shared/apperror"
	"cms-backend/pkg/database"
)

const postColumns = "id, title, content, summary, category, created_at, updated_at"

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &postgresRepository{db: tx}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var (
		p        model.Post
		category string
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Summary,
		&category,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = model.Category(category)
	return &p, nil
}

func notFound() error {
	return fmt.Errorf("%w: %w", model.ErrPostNotFound, apperror.ErrNotFound)
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	query := `
        INSERT INTO posts (title, content, summary, category)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + postColumns

	created, err := scanPost(r.db.QueryRow(ctx, query, p.Title, p.Content, p.Summary, string(p.Category)))
	if err != nil {
		// The check constraints mirror the model rules, so a violation here means a rule drifted
		if database.IsCheckViolation(err) {
			return nil, fmt.Errorf("post rejected by storage constraint: %w", err)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `SELECT ` + postColumns + ` FROM posts` + where +
		fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	query := `
        UPDATE posts
        SET title = $1, content = $2, summary = $3, category = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING ` + postColumns

	updated, err := scanPost(r.db.QueryRow(ctx, query, p.Title, p.Content, p.Summary, string(p.Category), p.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound()
	}
	return nil
}
