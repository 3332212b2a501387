package ports

import (
	"context"

	"github.com/memberhub/auth-system/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Usernames handed to implementations are already normalized.
type UserRepository interface {
	// FindByUsername returns the user with the exact stored username, or
	// domain.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create inserts a new user. The check-then-insert must be atomic at
	// the storage layer: two concurrent creates for the same username must
	// yield exactly one success and one domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// ListAll returns every user ordered ascending by username.
	ListAll(ctx context.Context) ([]*domain.User, error)
}
