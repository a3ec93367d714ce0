package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"cms-backend/internal/domains/author/model"
	"cms-backend/internal/domains/author/repository"
	"cms-backend/pkg/database"
)

type authorService struct {
	db   database.TxBeginner
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance.
// db starts the transactions that hold the name check and the write together.
func NewAuthorService(db database.TxBeginner, repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		db:   db,
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Msg("author create rejected")
		return nil, err
	}

	a, err := req.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*model.Author, error) {
		repo := s.repo.WithTx(tx)

		if err := ensureNameAvailable(ctx, repo, a.Name, 0); err != nil {
			return nil, err
		}

		created, err := repo.Create(ctx, a)
		if err != nil {
			return nil, mapDuplicate(err)
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msg("author created")
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Int64("author_id", id).Msg("author update rejected")
		return nil, err
	}

	updated, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*model.Author, error) {
		repo := s.repo.WithTx(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if req.IsEmpty() {
			return current, nil
		}

		oldName := current.Name
		if err := req.ApplyTo(current); err != nil {
			return nil, err
		}

		if current.Name != oldName {
			if err := ensureNameAvailable(ctx, repo, current.Name, current.ID); err != nil {
				return nil, err
			}
		}

		updated, err := repo.Update(ctx, current)
		if err != nil {
			return nil, mapDuplicate(err)
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", updated.ID).Msg("author updated")
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrAuthorNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("author deleted")
	return nil
}

// ensureNameAvailable fails when an author other than selfID already uses name
func ensureNameAvailable(ctx context.Context, repo repository.RepositoryInterface, name string, selfID int64) error {
	existing, err := repo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return model.NameTakenError()
	}
	return nil
}

// mapDuplicate turns a unique constraint rejection from a concurrent writer
// into the same validation error the lookup produces
func mapDuplicate(err error) error {
	if errors.Is(err, model.ErrDuplicateName) {
		return model.NameTakenError()
	}
	return err
}
