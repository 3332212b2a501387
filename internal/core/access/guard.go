// Package access holds the authorization guards. Both checks are pure
// reads of a Session value: no repository access, no side effects, and
// authentication is always decided before any role question.
package access

import (
	"github.com/memberhub/auth-system/internal/core/domain"
)

// RequireAuthenticated passes iff the session carries a user identity.
func RequireAuthenticated(session *domain.Session) error {
	if !session.Authenticated() {
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireRole passes iff the session is authenticated and its snapshotted
// role is in the allowed set. An anonymous session fails with
// ErrUnauthenticated, never ErrForbidden.
func RequireRole(session *domain.Session, allowedRoles ...domain.Role) error {
	if err := RequireAuthenticated(session); err != nil {
		return err
	}

	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	if _, ok := allowed[session.Role]; !ok {
		return domain.ErrForbidden
	}
	return nil
}
