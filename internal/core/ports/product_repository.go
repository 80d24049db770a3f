package ports

import (
	"context"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
// Lookups by an id that does not resolve return domain.NotFoundError.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}
