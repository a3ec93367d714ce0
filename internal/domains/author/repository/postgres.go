package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"cms-backend/internal/domains/author/model"
	"cms-backend/internal/shared/apperror"
	"cms-backend/pkg/database"
)

const (
	// authorsNameKey is the unique constraint created by the authors migration
	authorsNameKey = "authors_name_key"

	authorColumns = "id, name, phone_number, created_at, updated_at"
)

type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates a new author repository on a pool or transaction
func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &postgresRepository{db: tx}
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.PhoneNumber,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, phone_number)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.db.QueryRow(ctx, query, a.Name, a.PhoneNumber))
	if err != nil {
		if database.IsUniqueViolation(err, authorsNameKey) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %w", model.ErrAuthorNotFound, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE name = $1`

	a, err := scanAuthor(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find author by name: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		where.WriteString(fmt.Sprintf(` AND name ILIKE $%d ESCAPE '\'`, len(args)))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM authors`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	query := `SELECT ` + authorColumns + ` FROM authors` + where.String() +
		fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, total, nil
}

// likeEscaper makes the search a literal substring match
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, phone_number = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.db.QueryRow(ctx, query, a.Name, a.PhoneNumber, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %w", model.ErrAuthorNotFound, apperror.ErrNotFound)
		}
		if database.IsUniqueViolation(err, authorsNameKey) {
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %w", model.ErrAuthorNotFound, apperror.ErrNotFound)
	}
	return nil
}
