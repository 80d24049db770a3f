package ports

import (
	"context"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// AuthService implements registration and login.
// Login returns a signed access token; any credential mismatch surfaces
// as domain.ErrInvalidLogin without distinguishing which part was wrong.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
