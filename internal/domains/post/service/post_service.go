package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"cms-backend/internal/domains/post/model"
	"cms-backend/internal/domains/post/repository"
	"cms-backend/pkg/database"
)

type postService struct {
	db   database.TxBeginner
	repo repository.RepositoryInterface
}

func NewPostService(db database.TxBeginner, repo repository.RepositoryInterface) ServiceInterface {
	return &postService{
		db:   db,
		repo: repo,
	}
}

func (s *postService) Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Msg("post create rejected")
		return nil, err
	}

	p, err := req.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", created.ID).Str("category", string(created.Category)).Msg("post created")
	return created, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *postService) Update(ctx context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error) {
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Int64("post_id", id).Msg("post update rejected")
		return nil, err
	}

	updated, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*model.Post, error) {
		repo := s.repo.WithTx(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if req.IsEmpty() {
			return current, nil
		}

		if err := req.ApplyTo(current); err != nil {
			return nil, err
		}

		return repo.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", updated.ID).Msg("post updated")
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrPostNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
