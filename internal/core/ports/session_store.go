package ports

import (
	"context"

	"github.com/memberhub/auth-system/internal/core/domain"
)

// SessionStore persists per-client sessions. The store owns expiry: Get on
// an expired or unknown ID returns domain.ErrSessionNotFound.
type SessionStore interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete discards the session; deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error
}
