package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/auth-system/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, session *domain.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func TestSession_InjectsKnownSession(t *testing.T) {
	e := echo.New()
	store := newStubSessionStore()
	_ = store.Put(context.Background(), &domain.Session{ID: "sid-1", UserID: "42", Username: "alice", Role: domain.RoleUser})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(store)(func(c echo.Context) error {
		called = true
		session := CurrentSession(c)
		if session == nil || session.UserID != "42" {
			t.Fatalf("session not injected: %+v", session)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestSession_NoCookieIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newStubSessionStore())(func(c echo.Context) error {
		if CurrentSession(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSession_UnknownCookieIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "expired-or-bogus"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newStubSessionStore())(func(c echo.Context) error {
		if CurrentSession(c) != nil {
			t.Fatalf("expected anonymous request for unknown session")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	// Anonymous request is rejected before the handler runs.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RequireAuth()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	// Authenticated request passes through.
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(sessionKey, &domain.Session{UserID: "1", Role: domain.RoleUser})

	called := false
	handler = RequireAuth()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_OrderingAndOutcomes(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// Anonymous: 401 semantics, never 403.
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if err := RequireRole(domain.RoleAdmin)(next)(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}

	// Authenticated but wrong role: forbidden.
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(sessionKey, &domain.Session{UserID: "1", Role: domain.RoleUser})
	if err := RequireRole(domain.RoleAdmin)(next)(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("wrong role: expected ErrForbidden, got %v", err)
	}

	// Matching role passes.
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(sessionKey, &domain.Session{UserID: "1", Role: domain.RoleAdmin})
	if err := RequireRole(domain.RoleAdmin)(next)(c); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
}
