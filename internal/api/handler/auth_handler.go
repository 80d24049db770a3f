package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkit/commerce-api/internal/api/metrics"
	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/ports"
)

// AuthHandler handles registration and login. Both routes are public.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /users/register.
//
// @Summary      Register a new customer account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerPayload  true  "Credentials"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string][]map[string]string
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerPayload
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), *req.Email, *req.Password)
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("user").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login handles POST /users/login.
//
// @Summary      Log in and receive an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginPayload  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string][]map[string]string
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginPayload
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidLogin
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
