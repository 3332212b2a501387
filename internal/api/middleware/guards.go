package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/auth-system/internal/api/metrics"
	"github.com/memberhub/auth-system/internal/core/access"
	"github.com/memberhub/auth-system/internal/core/domain"
)

// RequireAuth rejects anonymous requests with ErrUnauthenticated, which the
// central error handler renders as 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := access.RequireAuthenticated(CurrentSession(c)); err != nil {
				metrics.DenialsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access. Authentication is checked before
// any role decision, so an anonymous request yields 401, never 403.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := access.RequireRole(CurrentSession(c), allowedRoles...); err != nil {
				reason := "forbidden"
				if errors.Is(err, domain.ErrUnauthenticated) {
					reason = "unauthenticated"
				}
				metrics.DenialsTotal.WithLabelValues(reason).Inc()
				return err
			}
			return next(c)
		}
	}
}
