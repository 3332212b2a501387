package ports

import (
	"context"

	"github.com/memberhub/auth-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	SeedAdmin(ctx context.Context) error
}
