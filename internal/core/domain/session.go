package domain

import "time"

// Session is the ephemeral per-client authentication context. Role is a
// snapshot taken at login time; authorization decisions read the snapshot
// and never re-query the user record within the same session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries an identity.
// A nil session means anonymous.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

// IsExpired reports whether the session has passed its expiry instant.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
