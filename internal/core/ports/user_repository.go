package ports

import (
	"context"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Create returns domain.ErrEmailTaken when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
