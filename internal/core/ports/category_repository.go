package ports

import (
	"context"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}
