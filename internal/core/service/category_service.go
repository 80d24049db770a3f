package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// CategoryService implements ports.CategoryService on top of a repository.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	created, err := s.repo.Create(ctx, &domain.Category{Name: in.Name, Slug: in.Slug})
	if err != nil {
		s.logger.Error().Err(err).Str("slug", in.Slug).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Int("id", created.ID).Str("slug", created.Slug).Msg("category created")
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id int, in ports.CategoryInput) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Slug = in.Slug

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", id).Msg("category updated")
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", id).Msg("category deleted")
	return existing, nil
}
