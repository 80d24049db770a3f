package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkit/commerce-api/internal/core/domain"
)

// RBAC enforces role-based access control over the identity resolved by
// Auth. A role mismatch answers 403; 401 is reserved for the missing or
// invalid token case, so the bare ErrNotAuthorized is wrapped with an
// explicit status override.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				return &domain.StatusError{Status: http.StatusForbidden, Err: domain.ErrNotAuthorized}
			}
			return next(c)
		}
	}
}
