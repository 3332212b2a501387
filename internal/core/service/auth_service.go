package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/memberhub/auth-system/internal/core/domain"
	"github.com/memberhub/auth-system/internal/core/ports"
)

const (
	// Bootstrap credentials for the one-time admin seed. The password is a
	// known-weak default and must be rotated before production use.
	bootstrapUsername = "admin"
	bootstrapPassword = "admin123"
)

// AuthService implements registration, login, and session lifecycle.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	hasher     ports.PasswordHasher
	sessionTTL time.Duration
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, hasher ports.PasswordHasher, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, hasher: hasher, sessionTTL: sessionTTL}
}

// Register creates an account. The username is normalized before any check,
// the role is coerced onto the closed {user, admin} set, and the password is
// hashed before the record ever reaches the repository.
//
// Note: an explicit client-supplied "admin" role is honored here. That
// mirrors the registration policy this service replaces; hardened
// deployments should force RoleUser and promote through a privileged path.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.CoerceRole(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and issues a session. A missing user and a
// wrong password collapse into the same ErrInvalidCredentials outcome, and
// the hasher still runs in the missing-user case so the two paths cost the
// same.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a verify against a throwaway blob to keep the timing
			// profile of unknown usernames close to wrong passwords.
			s.hasher.Verify(password, "")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("mint session id: %w", err)
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        id,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role, // snapshot; never re-derived for this session
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// Logout discards the session unconditionally. Unknown or already-cleared
// IDs are not errors.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// ListUsers returns every account ordered by username, for the admin view.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListAll(ctx)
}

// SeedAdmin creates the bootstrap admin account if no user named "admin"
// exists yet. Idempotent; a concurrent seed losing the insert race is
// treated as already seeded.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	_, err := s.users.FindByUsername(ctx, bootstrapUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if _, err := s.Register(ctx, bootstrapUsername, bootstrapPassword, string(domain.RoleAdmin)); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}
	return nil
}

// newSessionID returns a 256-bit random token, hex-encoded. Session IDs
// are bearer secrets, so they come from crypto/rand rather than any
// sortable ID scheme.
func newSessionID() (string, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
