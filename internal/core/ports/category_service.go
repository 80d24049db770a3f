package ports

import (
	"context"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// CategoryInput carries the already-validated fields for a create or update.
type CategoryInput struct {
	Name string
	Slug string
}

// CategoryService exposes category use cases to the transport layer.
type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Update(ctx context.Context, id int, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int) (*domain.Category, error)
}
