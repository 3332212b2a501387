package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/auth-system/internal/core/domain"
	"github.com/memberhub/auth-system/internal/core/ports"
)

// CookieName is the session cookie presented by browsers.
const CookieName = "session_id"

// sessionKey is the echo context key the resolved session lives under.
const sessionKey = "session"

// Session resolves the session cookie against the store and injects the
// resulting *domain.Session into the request context. Requests without a
// cookie, or with a cookie the store no longer knows, proceed as anonymous;
// the guards decide whether anonymity is acceptable.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "session lookup failed")
			}
			if session.IsExpired() {
				// Store TTL races its own clock near expiry; treat as anonymous.
				return next(c)
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// CurrentSession returns the session injected by the Session middleware,
// or nil when the request is anonymous.
func CurrentSession(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionKey).(*domain.Session)
	return session
}
