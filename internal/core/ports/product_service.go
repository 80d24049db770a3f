package ports

import (
	"context"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// ProductInput carries the already-validated fields for a create or update.
type ProductInput struct {
	Name       string
	ImageURL   string
	Price      int
	Stock      int
	Slug       string
	CategoryID int
}

// ProductService exposes product use cases to the transport layer.
// Id-scoped operations return domain.NotFoundError when the id does not
// resolve; Delete returns the removed product's last-known state.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, id int, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) (*domain.Product, error)
}
