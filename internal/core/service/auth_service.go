package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// AuthService implements registration and login backed by a user repository.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a customer account. A duplicate email surfaces as a
// validation failure so the client sees the uniqueness rule, not a raw
// storage error.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, &domain.ValidationError{Items: []domain.ValidationItem{
				{Name: "not_unique", Message: "Email must be unique"},
			}}
		}
		return nil, err
	}

	s.logger.Info().Int("id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed access token. An unknown
// email and a wrong password both map to domain.ErrInvalidLogin.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return "", domain.ErrInvalidLogin
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidLogin
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Int("id", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
