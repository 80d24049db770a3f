package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// Context keys set by Auth for downstream handlers and gates.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextEmail  = "email"
)

// Auth validates the access token and injects the caller's identity into
// context. The token is read from headerName (an "access_token" header by
// default, configurable); a conventional "Bearer " prefix is tolerated.
//
// A missing, malformed, or expired token all fail identically with
// domain.ErrNotAuthenticated so the caller learns nothing about which.
func Auth(jwtSecret, headerName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(headerName)
			if raw == "" {
				return domain.ErrNotAuthenticated
			}
			if rest, ok := strings.CutPrefix(raw, "Bearer "); ok {
				raw = rest
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrNotAuthenticated
			}

			id, ok := claims["id"].(float64)
			if !ok {
				return domain.ErrNotAuthenticated
			}

			c.Set(ContextUserID, int(id))
			c.Set(ContextRole, claims["role"])
			c.Set(ContextEmail, claims["email"])

			return next(c)
		}
	}
}
