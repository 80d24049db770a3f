package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// ProductService implements ports.ProductService on top of a repository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	created, err := s.repo.Create(ctx, &domain.Product{
		Name:       in.Name,
		ImageURL:   in.ImageURL,
		Price:      in.Price,
		Stock:      in.Stock,
		Slug:       in.Slug,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("slug", in.Slug).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Int("id", created.ID).Str("slug", created.Slug).Msg("product created")
	return created, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the stored product's attributes. The target is resolved
// first so a missing id never results in a write.
func (s *ProductService) Update(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.ImageURL = in.ImageURL
	existing.Price = in.Price
	existing.Stock = in.Stock
	existing.Slug = in.Slug
	existing.CategoryID = in.CategoryID

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", id).Msg("product updated")
	return updated, nil
}

// Delete removes the product and returns its last-known state.
func (s *ProductService) Delete(ctx context.Context, id int) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", id).Msg("product deleted")
	return existing, nil
}
