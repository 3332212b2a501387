package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/auth-system/internal/api/middleware"
	"github.com/memberhub/auth-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// performs a fast-fail check before any service call: routes using it are
// always mounted behind RequireAuth, so an anonymous request here means the
// middleware chain was miswired — reject with 401 rather than panic later.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session := middleware.CurrentSession(c)
	if !session.Authenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
